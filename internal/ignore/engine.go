package ignore

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

const (
	errorUnknownEngineFormat = "unknown pattern engine %q (expected %s or %s)"
)

// PatternEngine evaluates the pattern rules of a RuleSet.
type PatternEngine interface {
	Name() string
	Match(relativePath string, isDirectory bool) bool
}

// NewPatternEngine compiles ruleSet with the named engine.
func NewPatternEngine(engineName string, ruleSet RuleSet) (PatternEngine, error) {
	switch strings.ToLower(strings.TrimSpace(engineName)) {
	case "", types.PatternEngineGitignore:
		return newGitignoreEngine(ruleSet), nil
	case types.PatternEngineSimple:
		return newSimpleEngine(ruleSet), nil
	default:
		return nil, fmt.Errorf(errorUnknownEngineFormat, engineName, types.PatternEngineGitignore, types.PatternEngineSimple)
	}
}

// gitignoreEngine applies full gitignore semantics: the last matching pattern
// decides, and a negated pattern re-includes the path.
type gitignoreEngine struct {
	matcher gitignore.Matcher
}

func newGitignoreEngine(ruleSet RuleSet) gitignoreEngine {
	parsedPatterns := make([]gitignore.Pattern, 0, ruleSet.Len())
	for _, pattern := range ruleSet.patterns {
		parsedPatterns = append(parsedPatterns, gitignore.ParsePattern(pattern, nil))
	}
	return gitignoreEngine{matcher: gitignore.NewMatcher(parsedPatterns)}
}

func (engine gitignoreEngine) Name() string {
	return types.PatternEngineGitignore
}

func (engine gitignoreEngine) Match(relativePath string, isDirectory bool) bool {
	segments := utils.SplitPathSegments(relativePath)
	if len(segments) == 0 {
		return false
	}
	return engine.matcher.Match(segments, isDirectory)
}

// simpleEngine is the degraded matcher. Each positive pattern becomes an
// unanchored regular expression and any hit excludes the path. Negated
// patterns are skipped, so re-inclusion is not supported.
type simpleEngine struct {
	expressions []*regexp.Regexp
}

func newSimpleEngine(ruleSet RuleSet) simpleEngine {
	expressions := make([]*regexp.Regexp, 0, ruleSet.Len())
	for _, pattern := range ruleSet.patterns {
		if strings.HasPrefix(pattern, negationPrefix) {
			continue
		}
		expression, compileError := regexp.Compile(LowerPattern(pattern))
		if compileError != nil {
			continue
		}
		expressions = append(expressions, expression)
	}
	return simpleEngine{expressions: expressions}
}

func (engine simpleEngine) Name() string {
	return types.PatternEngineSimple
}

// Match searches the bare relative path. Directories get no trailing slash,
// so a "build/" pattern hides the files below build but not the directory itself.
func (engine simpleEngine) Match(relativePath string, _ bool) bool {
	candidate := utils.NormalizeSlashes(relativePath)
	for _, expression := range engine.expressions {
		if expression.MatchString(candidate) {
			return true
		}
	}
	return false
}

// LowerPattern rewrites a glob into a regular expression: "**" matches any
// sequence, "*" any sequence without a slash and "?" any single character.
// Every other character is matched literally.
func LowerPattern(pattern string) string {
	var builder strings.Builder
	for index := 0; index < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[index:], "**"):
			builder.WriteString(".*")
			index += 2
		case pattern[index] == '*':
			builder.WriteString("[^/]*")
			index++
		case pattern[index] == '?':
			builder.WriteString(".")
			index++
		default:
			runeValue, runeSize := utf8.DecodeRuneInString(pattern[index:])
			builder.WriteString(regexp.QuoteMeta(string(runeValue)))
			index += runeSize
		}
	}
	return builder.String()
}
