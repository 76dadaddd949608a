// Package output persists the assembled document and reports progress on the console.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/pcopy/internal/types"
	"github.com/temirov/pcopy/internal/utils"
)

const (
	documentFileMode = 0o644

	// errorWriteDocumentFormat wraps types.ErrWriteDocument with the failing path and cause.
	errorWriteDocumentFormat = "%w: %s: %v"
)

// WriteDocument writes document as UTF-8 to name inside root and returns the
// written path. Failures wrap types.ErrWriteDocument.
func WriteDocument(root string, name string, document types.Document) (string, error) {
	if name == "" {
		name = utils.OutputFileName
	}
	absoluteRoot, absolutePathError := filepath.Abs(root)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorWriteDocumentFormat, types.ErrWriteDocument, root, absolutePathError)
	}
	outputPath := filepath.Join(absoluteRoot, name)
	if writeError := os.WriteFile(outputPath, []byte(document.String()), documentFileMode); writeError != nil {
		return "", fmt.Errorf(errorWriteDocumentFormat, types.ErrWriteDocument, outputPath, writeError)
	}
	return outputPath, nil
}
