// Package config provides configuration management for the jsontoggle CLI.
package config

import (
	internalconfig "github.com/mintyPT/jsontoggle/internal/config"
	"github.com/mintyPT/jsontoggle/internal/version"
)

// Version returns the current CLI version from the centralized version package
var Version = version.Version

// Global holds the global CLI configuration
var Global struct {
	LogLevel string // Log level for CLI operations
	Verbose  bool   // Show verbose output (forces DEBUG level)
}

// Start holds the start command configuration
var Start struct {
	Demo       bool   // Create and open a demo document
	TogglesDir string // Directory storing toggled-out node values
}

// Toggle holds the toggle command configuration
var Toggle struct {
	TogglesDir string // Directory storing toggled-out node values
}

// Release holds the release command configuration
var Release struct {
	Manifest    string // Path to the TOML manifest
	SkipPublish bool   // Build but never invoke the publish tool
	DryRun      bool   // Report what would happen without mutating anything
	IndexURL    string // Package index base URL for the pre-publish check
	Timeout     int    // Package index request timeout in seconds
}

// DefaultTogglesDir is re-exported so flag setup and handlers share the
// same storage default.
const DefaultTogglesDir = internalconfig.DefaultTogglesDir
