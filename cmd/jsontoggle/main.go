// Package main provides the entry point for the jsontoggle CLI tool.
//
// jsontoggle toggles nodes of a JSON document in and out without losing
// their values, interactively through a terminal UI or from scripts, and
// automates the package release cycle of the surrounding project.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system:
//   - Command Structure: start, toggle, ls, release
//   - Handler Integration: command execution wired to the internal packages
//   - Flag Management: global and command-specific configuration options
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to operations
// 4. Configuration validation before any command runs
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/commands"
	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/config"
	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/handlers"
	internalconfig "github.com/mintyPT/jsontoggle/internal/config"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel,
		&config.Global.Verbose, internalconfig.DefaultLogLevel)

	// Setup document command flags
	startCmd, toggleCmd, lsCmd := commands.GetToggleCommands()
	commands.SetupToggleFlags(startCmd, toggleCmd, lsCmd,
		&config.Start.Demo, &config.Start.TogglesDir, &config.Toggle.TogglesDir,
		config.DefaultTogglesDir)

	// Setup release command flags
	releaseCmd := commands.GetReleaseCommand()
	commands.SetupReleaseFlags(releaseCmd, &config.Release.Manifest,
		&config.Release.SkipPublish, &config.Release.DryRun,
		&config.Release.IndexURL, &config.Release.Timeout,
		internalconfig.DefaultManifestPath, internalconfig.DefaultIndexTimeout)

	// Setup command handlers
	startCmd.RunE = handlers.HandleStart
	toggleCmd.RunE = handlers.HandleToggle
	lsCmd.RunE = handlers.HandleList
	releaseCmd.RunE = handlers.HandleRelease
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
