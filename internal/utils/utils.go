// Package utils contains general helper functions used across the pcopy tool.
package utils

import (
	"path/filepath"
	"strings"
)

// Well-known names used across the project.
const (
	// IgnoreFileName is the name of the project's ignore file at the target root.
	IgnoreFileName = ".pcopyignore"
	// OutputFileName is the name of the assembled document written to the target root.
	OutputFileName = "PROMPT.txt"
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".pcopy.yaml"
	// GlobalConfigFileName is the name of the configuration file inside the global configuration directory.
	GlobalConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the XDG config home holding the global configuration.
	GlobalConfigDirectoryName = "pcopy"
	// MaxFileSizeBytes is the default upper bound for collected files (5 MiB).
	MaxFileSizeBytes int64 = 5 * 1024 * 1024
)

const pathSegmentSeparator = "/"

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativePathOrSelf calculates the forward-slash relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// NormalizeSlashes converts both separator styles to forward slashes.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", pathSegmentSeparator)
}

// SplitPathSegments splits a forward-slash path into its non-empty segments.
func SplitPathSegments(path string) []string {
	rawSegments := strings.Split(NormalizeSlashes(path), pathSegmentSeparator)
	segments := make([]string, 0, len(rawSegments))
	for _, segment := range rawSegments {
		if segment == "" || segment == "." {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// ComparePathSegments orders two forward-slash paths segment by segment.
// It returns a negative number when left sorts first, zero when equal and a positive number otherwise.
func ComparePathSegments(left, right string) int {
	leftSegments := SplitPathSegments(left)
	rightSegments := SplitPathSegments(right)
	for index := 0; index < len(leftSegments) && index < len(rightSegments); index++ {
		if comparison := strings.Compare(leftSegments[index], rightSegments[index]); comparison != 0 {
			return comparison
		}
	}
	return len(leftSegments) - len(rightSegments)
}
