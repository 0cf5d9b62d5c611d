// Package version carries the build version stamped in with -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time:
//
//	-ldflags "-X github.com/portalkit/portalkit/internal/shared/version.Current=1.2.3"
var (
	Current = "dev"
	Commit  = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String reports the running version, normalized when it is a release.
func String() string {
	if IsRelease(Current) {
		return Normalize(Current)
	}
	return Current
}

// IsRelease reports whether v is a valid semantic version.
func IsRelease(v string) bool {
	if v == "" || v == "dev" {
		return false
	}
	return semver.IsValid(Normalize(v))
}
