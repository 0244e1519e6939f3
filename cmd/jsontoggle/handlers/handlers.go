// Package handlers provides command handler functions for jsontoggle.
//
// This package contains the command execution logic for jsontoggle commands,
// organized by concern:
//
// - toggle.go: Document handlers (start, toggle, ls)
// - release.go: Release pipeline handler
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Flag-bound configuration read from the config package
// - Clean separation between CLI wiring and the internal packages doing
//   the actual work
package handlers
