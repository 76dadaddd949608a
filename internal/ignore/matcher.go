package ignore

import (
	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

// Options configures a Matcher.
type Options struct {
	// Engine names the pattern engine, types.PatternEngineGitignore or types.PatternEngineSimple.
	Engine string
	// IgnoreFileName is the leaf name exempted from the dotfile rule.
	IgnoreFileName string
}

// Matcher answers whether a root-relative path is excluded.
type Matcher struct {
	patterns PatternEngine
	dotfiles DotfileRule
}

// NewMatcher compiles ruleSet with the engine selected in options.
func NewMatcher(ruleSet RuleSet, options Options) (*Matcher, error) {
	engine, engineError := NewPatternEngine(options.Engine, ruleSet)
	if engineError != nil {
		return nil, engineError
	}
	ignoreFileName := options.IgnoreFileName
	if ignoreFileName == "" {
		ignoreFileName = utils.IgnoreFileName
	}
	return &Matcher{
		patterns: engine,
		dotfiles: DotfileRule{AllowedName: ignoreFileName},
	}, nil
}

// IsExcluded reports whether relativePath is excluded by the pattern rules or
// by the dotfile rule, which is evaluated after them.
func (matcher *Matcher) IsExcluded(relativePath string, isDirectory bool) bool {
	if matcher == nil {
		return false
	}
	if relativePath == "" || relativePath == "." {
		return false
	}
	if matcher.patterns.Match(relativePath, isDirectory) {
		return true
	}
	return matcher.dotfiles.Excludes(relativePath)
}

// MatchesPattern reports whether the pattern rules alone exclude relativePath.
func (matcher *Matcher) MatchesPattern(relativePath string, isDirectory bool) bool {
	if matcher == nil {
		return false
	}
	return matcher.patterns.Match(relativePath, isDirectory)
}

// EngineName returns the name of the active pattern engine.
func (matcher *Matcher) EngineName() string {
	if matcher == nil {
		return types.PatternEngineGitignore
	}
	return matcher.patterns.Name()
}
