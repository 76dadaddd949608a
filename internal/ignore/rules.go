// Package ignore decides which root-relative paths are excluded from a bundle.
//
// A Matcher combines two independent rules. Pattern rules come from an ordered
// RuleSet (the defaults followed by user patterns) evaluated by a pluggable
// engine. The dotfile rule then excludes every path with a component that
// starts with a dot, except the ignore file itself.
package ignore

import (
	"strings"
)

const (
	commentPrefix  = "#"
	negationPrefix = "!"
)

// defaultPatterns are always applied, before any user-supplied pattern.
var defaultPatterns = []string{
	".git/",
	".git/**",
	".idea/",
	".idea/**",
	"__pycache__/",
	"__pycache__/**",
	"node_modules/",
	"node_modules/**",
	".vscode/",
	".vscode/**",
	".vs/",
	".vs/**",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	".DS_Store",
	"Thumbs.db",
}

// RuleSet is an ordered, immutable list of gitignore-style patterns.
type RuleSet struct {
	patterns []string
}

// DefaultPatterns returns a copy of the built-in pattern list.
func DefaultPatterns() []string {
	return append([]string(nil), defaultPatterns...)
}

// DefaultRuleSet returns a rule set holding only the built-in patterns.
func DefaultRuleSet() RuleSet {
	return RuleSet{patterns: DefaultPatterns()}
}

// NewRuleSet builds a rule set from the provided lines. Blank lines and
// comment lines are dropped; surrounding whitespace is trimmed.
func NewRuleSet(lines ...string) RuleSet {
	patterns := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return RuleSet{patterns: patterns}
}

// With returns a new rule set with lines appended after the existing patterns.
func (ruleSet RuleSet) With(lines ...string) RuleSet {
	appended := NewRuleSet(lines...)
	combined := make([]string, 0, len(ruleSet.patterns)+len(appended.patterns))
	combined = append(combined, ruleSet.patterns...)
	combined = append(combined, appended.patterns...)
	return RuleSet{patterns: combined}
}

// Patterns returns a copy of the patterns in declaration order.
func (ruleSet RuleSet) Patterns() []string {
	return append([]string(nil), ruleSet.patterns...)
}

// Len reports the number of patterns.
func (ruleSet RuleSet) Len() int {
	return len(ruleSet.patterns)
}

// HasNegation reports whether any pattern re-includes paths.
func (ruleSet RuleSet) HasNegation() bool {
	for _, pattern := range ruleSet.patterns {
		if strings.HasPrefix(pattern, negationPrefix) {
			return true
		}
	}
	return false
}
