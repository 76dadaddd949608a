package utils

import (
	"fmt"
)

// FormatFileSize converts a byte length into a human-readable string such as "12 KB".
func FormatFileSize(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	value := float64(bytes)
	for _, unit := range units {
		if value < 1024 {
			return fmt.Sprintf("%.0f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.0f TB", value)
}
