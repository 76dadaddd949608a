// Package config loads ignore files and application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/pcopy/internal/utils"
)

const commentPrefix = "#"

// LoadIgnoreFilePatterns reads the ignore file at ignoreFilePath and returns
// its patterns in order. A missing file yields no patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadRootIgnorePatterns reads the ignore file named ignoreFileName at the
// root of absoluteDirectoryPath and appends the extra patterns supplied by
// configuration. Order is preserved because later patterns override earlier ones.
func LoadRootIgnorePatterns(absoluteDirectoryPath string, ignoreFileName string, extraPatterns []string) ([]string, error) {
	if ignoreFileName == "" {
		ignoreFileName = utils.IgnoreFileName
	}
	ignoreFilePath := filepath.Join(absoluteDirectoryPath, ignoreFileName)
	filePatterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", ignoreFileName, absoluteDirectoryPath, loadError)
	}

	combinedPatterns := append([]string{}, filePatterns...)
	for _, pattern := range extraPatterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		combinedPatterns = append(combinedPatterns, trimmedPattern)
	}
	return combinedPatterns, nil
}
