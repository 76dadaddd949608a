package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// sniffLength defines the maximum number of bytes read when detecting binary content.
	sniffLength = 4096
	// controlCharacterThreshold is the largest tolerated share of control bytes in text.
	controlCharacterThreshold = 0.3
)

// IsTextContent reports whether the provided byte slice looks like text.
// Empty input is text; any NUL byte or too many control characters make it binary.
func IsTextContent(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	controlCount := 0
	for _, byteValue := range data {
		if byteValue == 0 {
			return false
		}
		if byteValue < 0x20 && byteValue != '\t' && byteValue != '\n' && byteValue != '\r' {
			controlCount++
		}
	}
	return float64(controlCount)/float64(len(data)) <= controlCharacterThreshold
}

// IsTextFile decides whether the file at path should be treated as text.
// The extension lists answer first; unknown extensions fall back to sniffing
// the first sniffLength bytes. Unreadable files are never text.
func IsTextFile(path string) bool {
	extension := strings.ToLower(FileSuffix(filepath.Base(path)))
	if IsBinaryExtension(extension) {
		return false
	}
	if extension == "" || IsTextExtension(extension) {
		return true
	}

	fileHandle, openError := os.Open(path)
	if openError != nil {
		return false
	}
	defer fileHandle.Close()

	buffer := make([]byte, sniffLength)
	bytesRead, readError := io.ReadFull(fileHandle, buffer)
	if readError != nil && readError != io.EOF && readError != io.ErrUnexpectedEOF {
		return false
	}
	return IsTextContent(buffer[:bytesRead])
}

// FileSuffix returns the final extension of name including its dot. A name
// whose only dot is the leading one (".env") or that ends with a dot has no suffix.
func FileSuffix(name string) string {
	dotIndex := strings.LastIndex(name, ".")
	if dotIndex <= 0 || dotIndex == len(name)-1 {
		return ""
	}
	return name[dotIndex:]
}
