package textdecode

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const warningReadFormat = "Warning: could not read %s: %v"

// Reader reads files from disk and decodes them.
type Reader struct {
	logger *zap.Logger
}

// NewReader builds a Reader that reports warnings through logger.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{logger: logger}
}

// ReadFile returns the decoded content of path or the I/O error that prevented reading it.
func (reader *Reader) ReadFile(path string) (string, error) {
	// #nosec G304
	raw, readError := os.ReadFile(path)
	if readError != nil {
		return "", readError
	}
	text, encodingName := DecodeNamed(raw)
	reader.logger.Debug("decoded file", zap.String("path", path), zap.String("encoding", encodingName))
	return text, nil
}

// ReadText returns the decoded content of path, or an empty string after
// logging a warning when the file cannot be read.
func (reader *Reader) ReadText(path string) string {
	text, readError := reader.ReadFile(path)
	if readError != nil {
		reader.logger.Warn(fmt.Sprintf(warningReadFormat, path, readError))
		return ""
	}
	return text
}
