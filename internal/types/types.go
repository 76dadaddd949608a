// Package types defines every cross‑package data structure used by the pcopy CLI.
package types

import (
	"errors"
	"strings"
)

const (
	ClassificationText   = "text"
	ClassificationBinary = "binary"

	ExclusionNone    = ""
	ExclusionSize    = "size"
	ExclusionPattern = "pattern"
	ExclusionBinary  = "binary"

	PatternEngineGitignore = "gitignore"
	PatternEngineSimple    = "simple"
)

var (
	// ErrInputNotFound reports a target path that does not exist.
	ErrInputNotFound = errors.New("directory not found")
	// ErrInputNotDirectory reports a target path that is not a directory.
	ErrInputNotDirectory = errors.New("not a directory")
	// ErrWriteDocument reports a document that could not be persisted.
	ErrWriteDocument = errors.New("could not write document")
)

// ValidatedPath is an absolute input directory that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	DisplayPath  string
}

// FileRecord describes one regular file met during traversal.
type FileRecord struct {
	AbsolutePath   string
	RelativePath   string
	Size           int64
	Classification string
	Included       bool
	Exclusion      string
}

// ExclusionTally counts excluded files by the first check they failed.
type ExclusionTally struct {
	Size    int
	Pattern int
	Binary  int
}

// Total returns the number of excluded files across every reason.
func (tally ExclusionTally) Total() int {
	return tally.Size + tally.Pattern + tally.Binary
}

// SizeOrPattern returns the number of files excluded by the size limit or an ignore pattern.
func (tally ExclusionTally) SizeOrPattern() int {
	return tally.Size + tally.Pattern
}

// CollectionResult is the outcome of walking a directory root.
type CollectionResult struct {
	Files    []FileRecord
	Excluded ExclusionTally
}

// IncludedSet returns the absolute paths of the included files.
func (result CollectionResult) IncludedSet() map[string]struct{} {
	included := make(map[string]struct{}, len(result.Files))
	for _, record := range result.Files {
		included[record.AbsolutePath] = struct{}{}
	}
	return included
}

// Document is the assembled output, kept as ordered lines until it is rendered.
type Document struct {
	Lines []string
}

// String joins the document lines with newlines.
func (document Document) String() string {
	return strings.Join(document.Lines, "\n")
}

// RunSummary captures what a run produced for console reporting.
type RunSummary struct {
	Root          string
	IncludedFiles int
	ExcludedFiles int
	TreeIncluded  bool
	OutputPath    string
	DocumentBytes int
	Copied        bool
	Tokens        int
	TokenModel    string
}
