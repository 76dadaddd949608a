package ignore

import (
	"strings"

	"github.com/temirov/pcopy/internal/utils"
)

const hiddenPrefix = "."

// DotfileRule excludes any path that has a component starting with a dot.
// A path whose leaf name equals AllowedName is never excluded by this rule.
type DotfileRule struct {
	AllowedName string
}

// Excludes reports whether the rule rejects relativePath.
func (rule DotfileRule) Excludes(relativePath string) bool {
	segments := utils.SplitPathSegments(relativePath)
	if len(segments) == 0 {
		return false
	}
	hidden := false
	for _, segment := range segments {
		if strings.HasPrefix(segment, hiddenPrefix) {
			hidden = true
			break
		}
	}
	if !hidden {
		return false
	}
	return segments[len(segments)-1] != rule.AllowedName
}
