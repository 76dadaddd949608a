package utils

import (
	"runtime/debug"
	"strings"
)

const (
	defaultVersion     = "v1.0.0"
	developmentVersion = "(devel)"
	versionPrefix      = "v"
)

// applicationVersion is overridden at build time with
// -ldflags "-X github.com/temirov/pcopy/internal/utils.applicationVersion=v1.2.3".
var applicationVersion = ""

// GetApplicationVersion returns the version stamped at link time, then the
// module version recorded in the build info, then the default release version.
func GetApplicationVersion() string {
	if trimmed := strings.TrimSpace(applicationVersion); trimmed != "" {
		return ensureVersionPrefix(trimmed)
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != developmentVersion {
		return ensureVersionPrefix(buildInfo.Main.Version)
	}
	return defaultVersion
}

func ensureVersionPrefix(version string) string {
	if strings.HasPrefix(version, versionPrefix) {
		return version
	}
	return versionPrefix + version
}
