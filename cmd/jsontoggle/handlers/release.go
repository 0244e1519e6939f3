// Package handlers provides the release command handler for jsontoggle.
package handlers

import (
	"github.com/spf13/cobra"

	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/config"
	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/utils"
	"github.com/mintyPT/jsontoggle/internal/release"
)

// HandleRelease runs the full release pipeline in the current directory.
// Configuration precedence: defaults, then .jsontoggle.yaml, then any
// explicitly set flags.
func HandleRelease(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := config.ValidateReleaseFlags(); err != nil {
		return err
	}

	cfg, err := release.LoadConfig(".")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.ManifestPath = config.Release.Manifest
	}
	if flags.Changed("index-url") {
		cfg.IndexURL = config.Release.IndexURL
	}
	if flags.Changed("timeout") {
		cfg.IndexTimeout = config.Release.Timeout
	}
	cfg.SkipPublish = config.Release.SkipPublish
	cfg.DryRun = config.Release.DryRun

	pipeline := release.New(cfg)
	if _, err := pipeline.Run(cmd.Context()); err != nil {
		return err
	}
	return nil
}
