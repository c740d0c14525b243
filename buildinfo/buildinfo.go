// Package buildinfo validates and reports the compiler's own semantic
// version, the piece of the `version`/`version --short` command
// surface that belongs to the core rather than the surrounding CLI
// shell.
package buildinfo

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the compiler's release version. It is expected to be set
// at link time via -ldflags; the default "v0.0.0-dev" marks a
// development build.
var Version = "v0.0.0-dev"

// Valid reports whether Version is a well-formed semantic version per
// golang.org/x/mod/semver's canonical form (a leading "v" is
// required).
func Valid() bool {
	return semver.IsValid(Version)
}

// Short returns Version's "vMAJOR.MINOR" form, or Version itself if it
// is not a valid semantic version.
func Short() string {
	if !Valid() {
		return Version
	}
	return semver.MajorMinor(Version)
}

// String renders the version for the `version` command: the full
// version, or an explicit "(invalid version)" marker if Version was
// not set to a well-formed value.
func String() string {
	if !Valid() {
		return fmt.Sprintf("%s (invalid version)", Version)
	}
	return Version
}
