// Package version reports the build version of pr.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// DevVersion is reported when the build version is missing or malformed.
const DevVersion = "0.0.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/dahc/coreutils/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Set via -ldflags.
var version = ""

// GetVersion returns the build version normalized to semver, or DevVersion.
func GetVersion() string {
	return normalize(version)
}

func normalize(raw string) string {
	if raw == "" {
		return DevVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return DevVersion
	}
	return v.String()
}
