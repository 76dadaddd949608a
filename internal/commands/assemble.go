package commands

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/pcopy/internal/types"
)

const (
	bannerWidth = 66

	fileTreeLabel     = "📁 FILE TREE"
	fileContentsLabel = "📄 FILE CONTENTS"

	filenameLineFormat = "Filename: %s"
	contentLabel       = "Content:"
	openingBrace       = "{"
	closingBrace       = "}"

	// warningProcessFileFormat is used when a file block cannot be produced.
	warningProcessFileFormat = "Warning: could not process %s: %v"
)

var (
	majorBanner = strings.Repeat("=", bannerWidth)
	minorBanner = strings.Repeat("-", bannerWidth)
)

// ContentReader returns the decoded text of a file.
type ContentReader interface {
	ReadFile(path string) (string, error)
}

// Assemble builds the output document: the optional tree section followed by
// one block per included file, in the order given. A file that cannot be read
// is logged and left out entirely.
func Assemble(root string, included []types.FileRecord, includeTree bool, matcher Excluder, reader ContentReader, logger *zap.Logger) types.Document {
	if logger == nil {
		logger = zap.NewNop()
	}

	var lines []string
	if includeTree {
		includedSet := types.CollectionResult{Files: included}.IncludedSet()
		lines = append(lines, majorBanner, fileTreeLabel, majorBanner, "")
		lines = append(lines, RenderTree(root, matcher, includedSet))
		lines = append(lines, "")
	}

	lines = append(lines, majorBanner, fileContentsLabel, majorBanner, "")

	for _, record := range included {
		content, readError := reader.ReadFile(record.AbsolutePath)
		if readError != nil {
			logger.Warn(fmt.Sprintf(warningProcessFileFormat, record.AbsolutePath, readError))
			continue
		}
		lines = append(lines,
			fmt.Sprintf(filenameLineFormat, record.RelativePath),
			contentLabel,
			openingBrace,
			content,
			closingBrace,
			"",
			minorBanner,
			"",
		)
	}

	return types.Document{Lines: lines}
}
