package ignore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pcopy/internal/ignore"
	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

type exclusionCase struct {
	name         string
	relativePath string
	isDirectory  bool
	expected     bool
}

func newMatcher(t *testing.T, engine string, userPatterns ...string) *ignore.Matcher {
	t.Helper()
	matcher, err := ignore.NewMatcher(ignore.DefaultRuleSet().With(userPatterns...), ignore.Options{Engine: engine})
	require.NoError(t, err)
	return matcher
}

func runExclusionCases(t *testing.T, matcher *ignore.Matcher, testCases []exclusionCase) {
	t.Helper()
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, matcher.IsExcluded(testCase.relativePath, testCase.isDirectory))
		})
	}
}

func TestGitignoreEngineDefaults(t *testing.T) {
	matcher := newMatcher(t, types.PatternEngineGitignore)
	require.Equal(t, types.PatternEngineGitignore, matcher.EngineName())

	runExclusionCases(t, matcher, []exclusionCase{
		{name: "git directory", relativePath: ".git", isDirectory: true, expected: true},
		{name: "git object", relativePath: ".git/objects/ab/cdef", expected: true},
		{name: "node modules file", relativePath: "node_modules/left-pad/index.js", expected: true},
		{name: "nested node modules", relativePath: "web/node_modules/react/index.js", expected: true},
		{name: "node modules directory", relativePath: "node_modules", isDirectory: true, expected: true},
		{name: "pycache", relativePath: "pkg/__pycache__/mod.cpython-311.pyc", expected: true},
		{name: "compiled python", relativePath: "pkg/mod.pyc", expected: true},
		{name: "thumbs db", relativePath: "images/Thumbs.db", expected: true},
		{name: "source file", relativePath: "src/main.go", expected: false},
		{name: "source directory", relativePath: "src", isDirectory: true, expected: false},
		{name: "root", relativePath: ".", isDirectory: true, expected: false},
	})
}

func TestGitignoreEngineUserPatterns(t *testing.T) {
	matcher := newMatcher(t, types.PatternEngineGitignore, "# comment", "", "*.log", "build/", "docs/*.md", "!docs/keep.md")

	runExclusionCases(t, matcher, []exclusionCase{
		{name: "suffix pattern", relativePath: "app.log", expected: true},
		{name: "suffix pattern nested", relativePath: "var/app.log", expected: true},
		{name: "longer suffix survives", relativePath: "app.log.txt", expected: false},
		{name: "directory pattern on directory", relativePath: "build", isDirectory: true, expected: true},
		{name: "directory pattern on descendant", relativePath: "build/out.txt", expected: true},
		{name: "directory pattern ignores same-named file", relativePath: "build", isDirectory: false, expected: false},
		{name: "anchored glob", relativePath: "docs/guide.md", expected: true},
		{name: "negation re-includes", relativePath: "docs/keep.md", expected: false},
		{name: "anchored glob does not reach deeper", relativePath: "docs/deep/guide.md", expected: false},
	})
}

func TestSimpleEngineDegradedBehavior(t *testing.T) {
	matcher := newMatcher(t, types.PatternEngineSimple, "*.log", "docs/*.md", "!docs/keep.md", "build/")
	require.Equal(t, types.PatternEngineSimple, matcher.EngineName())

	runExclusionCases(t, matcher, []exclusionCase{
		{name: "git object", relativePath: ".git/HEAD", expected: true},
		{name: "node modules file", relativePath: "node_modules/x/index.js", expected: true},
		{name: "node modules directory is searched without a slash", relativePath: "node_modules", isDirectory: true, expected: false},
		{name: "directory pattern keeps the directory itself", relativePath: "build", isDirectory: true, expected: false},
		{name: "suffix pattern", relativePath: "app.log", expected: true},
		{name: "unanchored search also hits longer names", relativePath: "app.log.txt", expected: true},
		{name: "negation is not supported", relativePath: "docs/keep.md", expected: true},
		{name: "directory pattern on descendant", relativePath: "build/out.txt", expected: true},
		{name: "unrelated file", relativePath: "src/main.go", expected: false},
	})
}

func TestLowerPattern(t *testing.T) {
	testCases := map[string]string{
		"*.log":         `[^/]*\.log`,
		"src/**/gen.go": `src/.*/gen\.go`,
		"file?.txt":     `file.\.txt`,
		"node_modules/": `node_modules/`,
		"a+b(c)":        `a\+b\(c\)`,
	}
	for pattern, expected := range testCases {
		require.Equal(t, expected, ignore.LowerPattern(pattern), pattern)
	}
}

func TestUnknownEngine(t *testing.T) {
	_, err := ignore.NewMatcher(ignore.DefaultRuleSet(), ignore.Options{Engine: "regex"})
	require.Error(t, err)
}

func TestDotfileRule(t *testing.T) {
	rule := ignore.DotfileRule{AllowedName: utils.IgnoreFileName}

	require.True(t, rule.Excludes(".env"))
	require.True(t, rule.Excludes("a/.hidden/x.txt"))
	require.True(t, rule.Excludes(".github"))
	require.False(t, rule.Excludes(utils.IgnoreFileName))
	require.False(t, rule.Excludes("config/"+utils.IgnoreFileName))
	require.False(t, rule.Excludes("src/main.go"))
	require.False(t, rule.Excludes("."))
}

func TestDotfileRuleAppliesAfterPatterns(t *testing.T) {
	matcher := newMatcher(t, types.PatternEngineGitignore, "!.env")

	require.True(t, matcher.IsExcluded(".env", false))
	require.False(t, matcher.MatchesPattern(".env", false))
	require.False(t, matcher.IsExcluded(utils.IgnoreFileName, false))
}

func TestRuleSet(t *testing.T) {
	ruleSet := ignore.NewRuleSet("  *.tmp  ", "# note", "", "!keep.tmp")
	require.Equal(t, []string{"*.tmp", "!keep.tmp"}, ruleSet.Patterns())
	require.True(t, ruleSet.HasNegation())

	combined := ignore.DefaultRuleSet().With("*.tmp")
	require.Equal(t, len(ignore.DefaultPatterns())+1, combined.Len())
	require.Equal(t, "*.tmp", combined.Patterns()[combined.Len()-1])
	require.False(t, ignore.DefaultRuleSet().HasNegation())
}
