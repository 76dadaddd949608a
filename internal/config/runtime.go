package config

import (
	"fmt"
	"strings"

	"github.com/temirov/pcopy/internal/ignore"
	"github.com/temirov/pcopy/internal/tokenizer"
	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

const (
	unsupportedEngineMessageFormat  = "unsupported pattern engine %q (expected %s or %s)"
	invalidMaxFileSizeMessageFormat = "max_file_size must be positive, got %d"
)

// Runtime is the set of capabilities resolved once at startup and handed to
// the matcher, collector, tokenizer and clipboard sink.
type Runtime struct {
	IncludeTree        bool
	CopyToClipboard    bool
	ClipboardAvailable bool
	PatternEngine      string
	IgnoreFileName     string
	ExtraPatterns      []string
	MaxFileSize        int64
	CountTokens        bool
	TokenModel         string
}

// DefaultRuntime returns the behavior used when nothing is configured.
func DefaultRuntime() Runtime {
	return Runtime{
		IncludeTree:     false,
		CopyToClipboard: true,
		PatternEngine:   types.PatternEngineGitignore,
		IgnoreFileName:  utils.IgnoreFileName,
		MaxFileSize:     utils.MaxFileSizeBytes,
		CountTokens:     false,
		TokenModel:      tokenizer.DefaultModel,
	}
}

// Resolve applies the configured values on top of DefaultRuntime and validates them.
func (config ApplicationConfiguration) Resolve() (Runtime, error) {
	runtime := DefaultRuntime()
	if config.Tree != nil {
		runtime.IncludeTree = *config.Tree
	}
	if config.Clipboard != nil {
		runtime.CopyToClipboard = *config.Clipboard
	}
	if engine := strings.TrimSpace(config.PatternEngine); engine != "" {
		runtime.PatternEngine = strings.ToLower(engine)
	}
	if config.Tokens.Enabled != nil {
		runtime.CountTokens = *config.Tokens.Enabled
	}
	if model := strings.TrimSpace(config.Tokens.Model); model != "" {
		runtime.TokenModel = model
	}
	if ignoreFile := strings.TrimSpace(config.Paths.IgnoreFile); ignoreFile != "" {
		runtime.IgnoreFileName = ignoreFile
	}
	runtime.ExtraPatterns = append([]string{}, config.Paths.Exclude...)
	if config.Paths.MaxFileSize != nil {
		runtime.MaxFileSize = *config.Paths.MaxFileSize
	}
	if err := runtime.Validate(); err != nil {
		return Runtime{}, err
	}
	return runtime, nil
}

// Validate reports values no component can work with.
func (runtime Runtime) Validate() error {
	switch runtime.PatternEngine {
	case types.PatternEngineGitignore, types.PatternEngineSimple:
	default:
		return fmt.Errorf(unsupportedEngineMessageFormat, runtime.PatternEngine, types.PatternEngineGitignore, types.PatternEngineSimple)
	}
	if runtime.MaxFileSize <= 0 {
		return fmt.Errorf(invalidMaxFileSizeMessageFormat, runtime.MaxFileSize)
	}
	return nil
}

// MatcherOptions returns the pattern matcher options for this runtime.
func (runtime Runtime) MatcherOptions() ignore.Options {
	return ignore.Options{Engine: runtime.PatternEngine, IgnoreFileName: runtime.IgnoreFileName}
}
