// Package commands contains the core pipeline: collecting files below a
// root, rendering the directory tree and assembling the output document.
package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

const (
	// warningAccessPathFormat is used when a path cannot be visited during the walk.
	warningAccessPathFormat = "Warning: error accessing path %s: %v"
	// warningStatPathFormat is used when file information cannot be retrieved.
	warningStatPathFormat = "Warning: unable to stat %s: %v"

	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorWalkRootFormat is used when the root itself cannot be walked.
	errorWalkRootFormat = "walking %s: %w"
)

// Excluder decides whether a root-relative, forward-slash path is excluded.
type Excluder interface {
	IsExcluded(relativePath string, isDirectory bool) bool
}

// CollectOptions tunes Collect. Zero values select the defaults.
type CollectOptions struct {
	// MaxFileSize is the largest size in bytes a file may have to be included.
	MaxFileSize int64
	// OutputFileName is skipped wherever it appears so reruns never include
	// a previous document.
	OutputFileName string
	// IsText classifies a file; utils.IsTextFile when nil.
	IsText func(path string) bool
	Logger *zap.Logger
}

func (options CollectOptions) withDefaults() CollectOptions {
	if options.MaxFileSize <= 0 {
		options.MaxFileSize = utils.MaxFileSizeBytes
	}
	if options.OutputFileName == "" {
		options.OutputFileName = utils.OutputFileName
	}
	if options.IsText == nil {
		options.IsText = utils.IsTextFile
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return options
}

// Collect walks root and returns the included text files sorted by path
// segments, together with a tally of excluded files by reason. A file is
// judged by size, then by the excluder, then by the text classifier; the first
// failing check decides the reason. Problems with single entries are logged
// and never abort the walk.
func Collect(root string, matcher Excluder, options CollectOptions) (types.CollectionResult, error) {
	options = options.withDefaults()

	absoluteRoot, absolutePathError := filepath.Abs(root)
	if absolutePathError != nil {
		return types.CollectionResult{}, fmt.Errorf(errorAbsolutePathFormat, root, absolutePathError)
	}
	cleanedRoot := filepath.Clean(absoluteRoot)

	walkRoot := cleanedRoot
	if rootInfo, lstatError := os.Lstat(cleanedRoot); lstatError == nil && rootInfo.Mode()&fs.ModeSymlink != 0 {
		// A trailing separator makes WalkDir follow a symlinked root.
		walkRoot = cleanedRoot + string(filepath.Separator)
	}

	var result types.CollectionResult
	walkError := filepath.WalkDir(walkRoot, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			if walkedPath == walkRoot {
				return accessError
			}
			options.Logger.Warn(fmt.Sprintf(warningAccessPathFormat, walkedPath, accessError))
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}
		if !isRegularFile(walkedPath, directoryEntry) {
			return nil
		}
		if directoryEntry.Name() == options.OutputFileName {
			return nil
		}

		record := types.FileRecord{
			AbsolutePath: walkedPath,
			RelativePath: utils.RelativePathOrSelf(walkedPath, cleanedRoot),
		}
		judgeFile(&record, matcher, options)
		switch record.Exclusion {
		case types.ExclusionSize:
			result.Excluded.Size++
		case types.ExclusionPattern:
			result.Excluded.Pattern++
		case types.ExclusionBinary:
			result.Excluded.Binary++
		default:
			result.Files = append(result.Files, record)
		}
		return nil
	})
	if walkError != nil {
		return types.CollectionResult{}, fmt.Errorf(errorWalkRootFormat, cleanedRoot, walkError)
	}

	sort.SliceStable(result.Files, func(left, right int) bool {
		return utils.ComparePathSegments(result.Files[left].RelativePath, result.Files[right].RelativePath) < 0
	})
	return result, nil
}

// judgeFile fills in the size, classification and inclusion decision of record.
func judgeFile(record *types.FileRecord, matcher Excluder, options CollectOptions) {
	fileInfo, statError := os.Stat(record.AbsolutePath)
	if statError != nil {
		options.Logger.Warn(fmt.Sprintf(warningStatPathFormat, record.AbsolutePath, statError))
		record.Exclusion = types.ExclusionSize
		return
	}
	record.Size = fileInfo.Size()
	if record.Size > options.MaxFileSize {
		record.Exclusion = types.ExclusionSize
		return
	}
	if matcher != nil && matcher.IsExcluded(record.RelativePath, false) {
		record.Exclusion = types.ExclusionPattern
		return
	}
	if !options.IsText(record.AbsolutePath) {
		record.Classification = types.ClassificationBinary
		record.Exclusion = types.ExclusionBinary
		return
	}
	record.Classification = types.ClassificationText
	record.Included = true
}

// isRegularFile reports whether the entry is a regular file, following
// symbolic links. Broken links and links to directories are not files.
func isRegularFile(path string, directoryEntry fs.DirEntry) bool {
	if directoryEntry.Type().IsRegular() {
		return true
	}
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	targetInfo, statError := os.Stat(path)
	if statError != nil {
		return false
	}
	return targetInfo.Mode().IsRegular()
}
