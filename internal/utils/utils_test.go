package utils_test

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/pcopy/internal/utils"
)

// textFileName defines the name of the text file used in tests.
const textFileName = "sample.txt"

// binaryBase64Content holds the base64 representation of a small binary payload.
const binaryBase64Content = "AAE="

// writeFixture creates a file below root, failing the test on error.
func writeFixture(testingInstance *testing.T, root string, name string, content []byte) string {
	testingInstance.Helper()
	fixturePath := filepath.Join(root, name)
	if writeError := os.WriteFile(fixturePath, content, 0600); writeError != nil {
		testingInstance.Fatalf("writing %s: %v", name, writeError)
	}
	return fixturePath
}

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"a", "b", "a"},
			expected: []string{"a", "b"},
		},
		{
			testName: "keeps unique",
			patterns: []string{"a", "b"},
			expected: []string{"a", "b"},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

// TestRelativePathOrSelf verifies relative path calculations.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	nestedDirectory := filepath.Join(temporaryRoot, "nested")
	if makeError := os.MkdirAll(nestedDirectory, 0o755); makeError != nil {
		testingInstance.Fatalf("failed to create directory: %v", makeError)
	}
	subPath := writeFixture(testingInstance, nestedDirectory, textFileName, []byte("content"))
	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{
			testName: "root path returns dot",
			fullPath: temporaryRoot,
			root:     temporaryRoot,
			expected: ".",
		},
		{
			testName: "nested path uses forward slashes",
			fullPath: subPath,
			root:     temporaryRoot,
			expected: "nested/" + textFileName,
		},
	}
	for index, testCase := range testCases {
		actual := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %s, got %s", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestComparePathSegments verifies segment-wise ordering.
func TestComparePathSegments(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		left     string
		right    string
		negative bool
	}{
		{testName: "plain names", left: "a.txt", right: "b.txt", negative: true},
		{testName: "parent directory before dashed sibling", left: "a/x.txt", right: "a-b/x.txt", negative: true},
		{testName: "shorter prefix first", left: "a", right: "a/b", negative: true},
		{testName: "reverse order", left: "z/a.txt", right: "b.txt", negative: false},
	}
	for index, testCase := range testCases {
		actual := utils.ComparePathSegments(testCase.left, testCase.right) < 0
		if actual != testCase.negative {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.negative, actual)
		}
	}
}

// TestFileSuffix verifies extension extraction for dotfiles and ordinary names.
func TestFileSuffix(testingInstance *testing.T) {
	testCases := map[string]string{
		"main.go":        ".go",
		"archive.tar.gz": ".gz",
		".env":           "",
		".gitignore":     "",
		"Makefile":       "",
		"trailing.":      "",
		".config.yaml":   ".yaml",
	}
	for name, expected := range testCases {
		if actual := utils.FileSuffix(name); actual != expected {
			testingInstance.Errorf("%s: expected %q, got %q", name, expected, actual)
		}
	}
}

// TestIsTextContent verifies content sniffing.
func TestIsTextContent(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		data     []byte
		expected bool
	}{
		{testName: "utf8 text", data: []byte("hello\tworld\r\n"), expected: true},
		{testName: "empty slice", data: []byte{}, expected: true},
		{testName: "null byte", data: []byte("abc\x00def"), expected: false},
		{testName: "mostly control characters", data: []byte{0x01, 0x02, 0x03, 'a'}, expected: false},
		{testName: "control ratio at threshold", data: append(bytes.Repeat([]byte{'a'}, 7), 0x01, 0x02, 0x03), expected: true},
		{testName: "invalid utf8 without controls", data: []byte{0xff, 0xfe, 'a'}, expected: true},
	}
	for index, testCase := range testCases {
		actual := utils.IsTextContent(testCase.data)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestIsTextFile verifies extension lookups and the sniffing fallback.
func TestIsTextFile(testingInstance *testing.T) {
	temporaryRoot := testingInstance.TempDir()
	binaryBytes, decodeError := base64.StdEncoding.DecodeString(binaryBase64Content)
	if decodeError != nil {
		testingInstance.Fatalf("decoding base64: %v", decodeError)
	}
	testCases := []struct {
		testName string
		fileName string
		content  []byte
		expected bool
	}{
		{testName: "denylisted extension with text content", fileName: "notes.log", content: []byte("plain"), expected: false},
		{testName: "denylist wins over allowlist", fileName: "go.lock", content: []byte("plain"), expected: false},
		{testName: "allowlisted extension with binary content", fileName: "data.json", content: binaryBytes, expected: true},
		{testName: "no extension printable", fileName: "Makefile", content: []byte("all:\n\tgo build\n"), expected: true},
		{testName: "dotfile has no extension", fileName: ".envrc", content: []byte("export A=1\n"), expected: true},
		{testName: "unknown extension text", fileName: "query.hcl", content: []byte("a = 1\n"), expected: true},
		{testName: "unknown extension empty", fileName: "empty.xyz", content: []byte{}, expected: true},
		{testName: "unknown extension null byte", fileName: "blob.xyz", content: binaryBytes, expected: false},
		{testName: "null byte past the sniffed prefix", fileName: "late.xyz", content: append(bytes.Repeat([]byte{'a'}, 4096), 0x00), expected: true},
		{testName: "uppercase denylisted extension", fileName: "PHOTO.PNG", content: []byte("plain"), expected: false},
	}
	for index, testCase := range testCases {
		fixturePath := writeFixture(testingInstance, temporaryRoot, testCase.fileName, testCase.content)
		actual := utils.IsTextFile(fixturePath)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d (%s): expected %t, got %t", index, testCase.testName, testCase.expected, actual)
		}
	}
}

// TestIsTextFileMissing verifies that unreadable files are never text.
func TestIsTextFileMissing(testingInstance *testing.T) {
	missingPath := filepath.Join(testingInstance.TempDir(), "missing.xyz")
	if utils.IsTextFile(missingPath) {
		testingInstance.Fatalf("expected missing file to be classified as non-text")
	}
}
