// Package commands provides toggle command definitions for jsontoggle.
//
// This file implements the document-facing commands: the interactive start
// command plus the non-interactive toggle and ls commands for scripting.
package commands

import (
	"github.com/spf13/cobra"
)

// Start command (interactive terminal UI)
var startCmd = &cobra.Command{
	Use:   "start [file]",
	Short: "Open the interactive UI for toggling JSON nodes",
	Long: `Open a terminal UI showing the JSON document as a navigable tree.

Branches expand and collapse, and any node can be toggled out of the
document and back in. Toggled-out values are stored in the toggles
directory so nothing is lost.`,
	Example: `  # Open a document
  jsontoggle start config.json

  # Create and open a demo document
  jsontoggle start --demo

  # Store toggled-out values somewhere else
  jsontoggle start config.json --toggles-dir .toggles`,
	Args: cobra.MaximumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Toggle command (single node, no UI)
var toggleCmd = &cobra.Command{
	Use:   "toggle <file> <path>",
	Short: "Toggle a single JSON node in or out",
	Long: `Toggle the node at the given dotted path in or out of the document.

If the node is present it is removed and its value stored; if it was
previously toggled out it is restored. Array elements are addressed by
numeric segments (e.g. users.0).`,
	Example: `  # Toggle a feature flag out
  jsontoggle toggle config.json featureFlags.newDashboard

  # Run it again to bring it back
  jsontoggle toggle config.json featureFlags.newDashboard`,
	Args: cobra.ExactArgs(2),
	// RunE will be set by the main package that imports this
}

// List command (active toggles)
var lsCmd = &cobra.Command{
	Use:   "ls <file>",
	Short: "List toggled-out paths of a document",
	Long: `List the paths currently toggled out of the document, one per line.

The list is reconstructed from the toggles directory, so it survives
restarts and works from scripts.`,
	Example: `  # Show what is toggled out
  jsontoggle ls config.json`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetToggleCommands returns the document command references for flag and
// handler setup
func GetToggleCommands() (*cobra.Command, *cobra.Command, *cobra.Command) {
	return startCmd, toggleCmd, lsCmd
}

// SetupToggleFlags configures flags for the document commands
func SetupToggleFlags(startCmd, toggleCmd, lsCmd *cobra.Command,
	demoPtr *bool, startTogglesDirPtr, toggleTogglesDirPtr *string, defaultTogglesDir string) {
	startCmd.Flags().BoolVar(demoPtr, "demo", false,
		"Create a demo document and open it")
	startCmd.Flags().StringVar(startTogglesDirPtr, "toggles-dir", defaultTogglesDir,
		"Directory storing toggled-out node values")
	toggleCmd.Flags().StringVar(toggleTogglesDirPtr, "toggles-dir", defaultTogglesDir,
		"Directory storing toggled-out node values")
	lsCmd.Flags().StringVar(toggleTogglesDirPtr, "toggles-dir", defaultTogglesDir,
		"Directory storing toggled-out node values")
}
