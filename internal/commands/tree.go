package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/pcopy/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeContinuation    = "│   "
	treeBlankIndent     = "    "
	treeDirectorySuffix = "/"
)

// treeEntry is one pending line of the rendered tree.
type treeEntry struct {
	name         string
	absolutePath string
	relativePath string
	prefix       string
	isLast       bool
	isDirectory  bool
	descend      bool
}

// RenderTree draws the directory tree below root. Directories are shown when
// the matcher does not exclude them, even if they end up empty; files are
// shown only when their absolute path is in included. Directories that cannot
// be read are left empty and symlinked directories are never entered.
func RenderTree(root string, matcher Excluder, included map[string]struct{}) string {
	absoluteRoot, absolutePathError := filepath.Abs(root)
	if absolutePathError != nil {
		absoluteRoot = root
	}
	cleanedRoot := filepath.Clean(absoluteRoot)

	lines := []string{filepath.Base(cleanedRoot) + treeDirectorySuffix}
	stack := pushChildren(nil, listTreeEntries(cleanedRoot, cleanedRoot, "", matcher, included))

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector := treeBranchConnector
		if entry.isLast {
			connector = treeLastConnector
		}
		if !entry.isDirectory {
			lines = append(lines, entry.prefix+connector+entry.name)
			continue
		}
		lines = append(lines, entry.prefix+connector+entry.name+treeDirectorySuffix)
		if !entry.descend {
			continue
		}
		childPrefix := entry.prefix + treeContinuation
		if entry.isLast {
			childPrefix = entry.prefix + treeBlankIndent
		}
		stack = pushChildren(stack, listTreeEntries(entry.absolutePath, cleanedRoot, childPrefix, matcher, included))
	}

	return strings.Join(lines, "\n")
}

// pushChildren pushes entries in reverse so the first one is popped first.
func pushChildren(stack []treeEntry, entries []treeEntry) []treeEntry {
	for index := len(entries) - 1; index >= 0; index-- {
		stack = append(stack, entries[index])
	}
	return stack
}

// listTreeEntries returns the visible children of directoryPath, directories
// first and each group ordered by name.
func listTreeEntries(directoryPath string, root string, prefix string, matcher Excluder, included map[string]struct{}) []treeEntry {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil
	}

	var directories []treeEntry
	var files []treeEntry
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(directoryPath, directoryEntry.Name())
		entry := treeEntry{
			name:         directoryEntry.Name(),
			absolutePath: childPath,
			relativePath: utils.RelativePathOrSelf(childPath, root),
			prefix:       prefix,
		}
		isDirectory, isSymlink := resolveEntryKind(childPath, directoryEntry)
		if isDirectory {
			if matcher != nil && matcher.IsExcluded(entry.relativePath, true) {
				continue
			}
			entry.isDirectory = true
			entry.descend = !isSymlink
			directories = append(directories, entry)
			continue
		}
		if _, isIncluded := included[childPath]; isIncluded {
			files = append(files, entry)
		}
	}

	entries := append(directories, files...)
	if len(entries) > 0 {
		entries[len(entries)-1].isLast = true
	}
	return entries
}

// resolveEntryKind reports whether the entry is a directory, following
// symbolic links, and whether it is a symbolic link.
func resolveEntryKind(path string, directoryEntry fs.DirEntry) (bool, bool) {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return directoryEntry.IsDir(), false
	}
	targetInfo, statError := os.Stat(path)
	if statError != nil {
		return false, true
	}
	return targetInfo.IsDir(), true
}
