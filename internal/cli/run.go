package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/pcopy/internal/commands"
	"github.com/temirov/pcopy/internal/config"
	"github.com/temirov/pcopy/internal/ignore"
	"github.com/temirov/pcopy/internal/output"
	"github.com/temirov/pcopy/internal/services/clipboard"
	"github.com/temirov/pcopy/internal/textdecode"
	"github.com/temirov/pcopy/internal/tokenizer"
	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

const (
	treeKeyword = "tree"
	defaultPath = "."

	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorInputPathFormat attaches the offending path to an input sentinel.
	errorInputPathFormat = "%w: %s"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"

	warningIgnoreFileFormat     = "Warning: could not read %s, using default rules: %v"
	warningClipboardFormat      = "Warning: %v"
	warningTokenizerFormat      = "Warning: token estimate unavailable: %v"
	warningTokenCountFormat     = "Warning: failed to count tokens: %v"
	warningTokensSkippedMessage = "Warning: token estimate skipped for non-text document"
)

// parsePositionalArguments separates the tree keyword from the target path.
// The keyword is case-insensitive; the last other argument is the path.
func parsePositionalArguments(arguments []string) (bool, string) {
	includeTree := false
	targetPath := defaultPath
	for _, argument := range arguments {
		if strings.EqualFold(argument, treeKeyword) {
			includeTree = true
			continue
		}
		targetPath = argument
	}
	return includeTree, targetPath
}

// resolveTargetDirectory converts the input to an absolute directory path.
func resolveTargetDirectory(inputPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(inputPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	info, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorInputPathFormat, types.ErrInputNotFound, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorInputPathFormat, types.ErrInputNotDirectory, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, DisplayPath: inputPath}, nil
}

// resolveRuntime merges configuration files, flags and positional arguments.
func resolveRuntime(command *cobra.Command, options rootOptions, positionalTree bool, dependencies Dependencies) (config.Runtime, error) {
	applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: dependencies.WorkingDirectory,
		ExplicitFilePath: options.configPath,
		GlobalFilePath:   dependencies.GlobalConfigPath,
	})
	if loadError != nil {
		return config.Runtime{}, loadError
	}
	runtime, resolveError := applicationConfiguration.Resolve()
	if resolveError != nil {
		return config.Runtime{}, resolveError
	}

	flagSet := command.Flags()
	if flagSet.Changed(treeFlagName) {
		runtime.IncludeTree = options.includeTree
	}
	if positionalTree {
		runtime.IncludeTree = true
	}
	if flagSet.Changed(clipboardFlagName) {
		runtime.CopyToClipboard = options.copyToClipboard
	}
	if flagSet.Changed(tokensFlagName) {
		runtime.CountTokens = options.countTokens
	}
	if flagSet.Changed(modelFlagName) {
		runtime.TokenModel = options.tokenModel
	}
	if flagSet.Changed(engineFlagName) {
		runtime.PatternEngine = strings.ToLower(strings.TrimSpace(options.patternEngine))
	}
	runtime.ClipboardAvailable = dependencies.ClipboardAvailable()

	if validationError := runtime.Validate(); validationError != nil {
		return config.Runtime{}, validationError
	}
	return runtime, nil
}

// buildMatcher loads the ignore file at root. An unreadable ignore file is
// reported and the default rules are used instead.
func buildMatcher(root string, runtime config.Runtime, dependencies Dependencies) (*ignore.Matcher, error) {
	patterns, loadError := config.LoadRootIgnorePatterns(root, runtime.IgnoreFileName, runtime.ExtraPatterns)
	if loadError != nil {
		dependencies.Logger.Warn(fmt.Sprintf(warningIgnoreFileFormat, runtime.IgnoreFileName, loadError))
		patterns = runtime.ExtraPatterns
	}
	return ignore.NewMatcher(ignore.DefaultRuleSet().With(patterns...), runtime.MatcherOptions())
}

// runCopy executes the whole pipeline for one invocation.
func runCopy(command *cobra.Command, options rootOptions, arguments []string, dependencies Dependencies) (types.RunSummary, error) {
	positionalTree, inputPath := parsePositionalArguments(arguments)
	target, targetError := resolveTargetDirectory(inputPath)
	if targetError != nil {
		return types.RunSummary{}, targetError
	}

	runtime, runtimeError := resolveRuntime(command, options, positionalTree, dependencies)
	if runtimeError != nil {
		return types.RunSummary{}, runtimeError
	}

	console := output.NewConsole(dependencies.Stdout, dependencies.Styled)
	console.Header(utils.GetApplicationVersion())
	console.TargetDirectory(target.AbsolutePath)

	matcher, matcherError := buildMatcher(target.AbsolutePath, runtime, dependencies)
	if matcherError != nil {
		return types.RunSummary{}, matcherError
	}

	collection, collectError := commands.Collect(target.AbsolutePath, matcher, commands.CollectOptions{
		MaxFileSize:    runtime.MaxFileSize,
		OutputFileName: utils.OutputFileName,
		Logger:         dependencies.Logger,
	})
	if collectError != nil {
		return types.RunSummary{}, collectError
	}

	summary := types.RunSummary{
		Root:          target.AbsolutePath,
		IncludedFiles: len(collection.Files),
		ExcludedFiles: collection.Excluded.Total(),
		TreeIncluded:  runtime.IncludeTree,
	}
	if len(collection.Files) == 0 {
		console.NoTextFiles()
		return summary, nil
	}

	console.FilesDetected(summary.IncludedFiles, summary.ExcludedFiles)
	if runtime.IncludeTree {
		console.TreeIncluded()
	}
	console.Writing(utils.OutputFileName)

	reader := textdecode.NewReader(dependencies.Logger)
	document := commands.Assemble(target.AbsolutePath, collection.Files, runtime.IncludeTree, matcher, reader, dependencies.Logger)
	documentText := document.String()
	summary.DocumentBytes = len(documentText)

	outputPath, writeError := output.WriteDocument(target.AbsolutePath, utils.OutputFileName, document)
	if writeError != nil {
		return summary, writeError
	}
	summary.OutputPath = outputPath

	summary.Copied = copyDocument(documentText, runtime, dependencies)
	if summary.Copied {
		console.Copied(summary.DocumentBytes)
	}

	if runtime.CountTokens {
		if tokens, model, counted := estimateTokens(document, runtime, dependencies); counted {
			summary.Tokens = tokens
			summary.TokenModel = model
			console.Tokens(tokens, model)
		}
	}

	console.Done(outputPath)
	return summary, nil
}

// copyDocument hands the document to the clipboard sink. Every failure is a warning.
func copyDocument(documentText string, runtime config.Runtime, dependencies Dependencies) bool {
	if !runtime.CopyToClipboard {
		return false
	}
	if !runtime.ClipboardAvailable {
		dependencies.Logger.Warn(fmt.Sprintf(warningClipboardFormat, clipboard.ErrClipboardUnavailable))
		return false
	}
	copier := dependencies.Copier
	if copier == nil {
		copier = clipboard.NewService(true)
	}
	if copyError := copier.Copy(documentText); copyError != nil {
		if !errors.Is(copyError, clipboard.ErrCopyDisabled) {
			dependencies.Logger.Warn(fmt.Sprintf(warningClipboardFormat, copyError))
		}
		return false
	}
	return true
}

// estimateTokens counts the tokens of the document. Failures are warnings.
func estimateTokens(document types.Document, runtime config.Runtime, dependencies Dependencies) (int, string, bool) {
	counter, model, counterError := dependencies.NewCounter(tokenizer.Config{Model: runtime.TokenModel})
	if counterError != nil {
		dependencies.Logger.Warn(fmt.Sprintf(warningTokenizerFormat, counterError))
		return 0, "", false
	}
	result, countError := tokenizer.CountDocument(counter, document)
	if countError != nil {
		dependencies.Logger.Warn(fmt.Sprintf(warningTokenCountFormat, countError))
		return 0, "", false
	}
	if !result.Counted {
		dependencies.Logger.Warn(warningTokensSkippedMessage)
		return 0, "", false
	}
	return result.Tokens, model, true
}
