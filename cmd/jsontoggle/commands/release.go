// Package commands provides the release command definition for jsontoggle.
package commands

import (
	"github.com/spf13/cobra"
)

// Release command (automated package release cycle)
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Bump the patch version, clean, build, and publish",
	Long: `Run the automated release cycle for the package in the current directory.

The release reads the version from the TOML manifest, increments the patch
component, writes it back, removes stale build artifacts, then invokes the
configured build and publish tools. The first failing step aborts the run;
there is no rollback, so a failure after the bump leaves the manifest at
the new version.

Defaults can be overridden by a .jsontoggle.yaml file in the working
directory.`,
	Example: `  # Release a new patch version
  jsontoggle release

  # Bump and build, but do not publish
  jsontoggle release --skip-publish

  # Show what would happen without changing anything
  jsontoggle release --dry-run

  # Verify the bumped version is not already on the index first
  jsontoggle release --index-url https://pypi.org`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetReleaseCommand returns the release command reference for flag and
// handler setup
func GetReleaseCommand() *cobra.Command {
	return releaseCmd
}

// SetupReleaseFlags configures flags for the release command
func SetupReleaseFlags(releaseCmd *cobra.Command, manifestPtr *string,
	skipPublishPtr, dryRunPtr *bool, indexURLPtr *string, timeoutPtr *int,
	defaultManifest string, defaultTimeout int) {
	releaseCmd.Flags().StringVar(manifestPtr, "manifest", defaultManifest,
		"Path to the TOML manifest holding the version")
	releaseCmd.Flags().BoolVar(skipPublishPtr, "skip-publish", false,
		"Build but skip the publish step")
	releaseCmd.Flags().BoolVar(dryRunPtr, "dry-run", false,
		"Report what would happen without mutating anything")
	releaseCmd.Flags().StringVar(indexURLPtr, "index-url", "",
		"Package index base URL for the pre-publish version check")
	releaseCmd.Flags().IntVar(timeoutPtr, "timeout", defaultTimeout,
		"Package index request timeout in seconds")
}
