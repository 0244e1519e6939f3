// Package version provides centralized version information for jsontoggle.
// The CLI, the TUI, and the release tooling all report the same version
// string from this single location.
// All versions follow semantic versioning (semver) conventions.

package version

// Version holds the current jsontoggle version.
// Format: major.minor.patch[-prerelease][+build]
const Version = "0.1.0-dev"
