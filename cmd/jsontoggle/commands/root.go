// Package commands provides the complete command tree implementation for
// jsontoggle.
//
// This package defines the command structure for the jsontoggle CLI tool:
//
//   - start: Launch the interactive terminal UI for toggling JSON nodes
//   - toggle: Toggle a single node non-interactively
//   - ls: List currently toggled-out paths of a document
//   - release: Run the automated package release cycle
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and logging.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "jsontoggle",
	Short: "Toggle JSON nodes in and out of documents, with release automation",
	Long: `jsontoggle turns parts of a JSON document on and off without losing them.

Toggled-out nodes are stored next to the document and can be restored with a
second toggle, which makes it easy to experiment with configuration files,
feature flags, and fixtures. The release command automates the package
release cycle: bump the patch version in the manifest, clean build
artifacts, then build and publish.`,
	SilenceUsage: true,
	Example: `  # Open the interactive UI on a document
  jsontoggle start config.json

  # Try it on a generated demo document
  jsontoggle start --demo

  # Toggle one node without the UI
  jsontoggle toggle config.json settings.notifications.email

  # List toggled-out paths
  jsontoggle ls config.json

  # Release a new patch version
  jsontoggle release

  # See what a release would do first
  jsontoggle release --dry-run`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(startCmd)
	RootCmd.AddCommand(toggleCmd)
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(releaseCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, verbosePtr *bool, defaultLogLevel string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
}
