// Package config provides configuration management for the jsontoggle CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mintyPT/jsontoggle/internal/logging"
	"github.com/mintyPT/jsontoggle/internal/validate"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	return ValidateLogLevel()
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s': %v", Global.LogLevel, err)
		return fmt.Errorf("invalid log level - valid levels are: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// ValidateReleaseFlags validates release command flags before the pipeline
// is built.
func ValidateReleaseFlags() error {
	if err := validate.ValidateRequiredString(Release.Manifest, "manifest"); err != nil {
		logging.Error("Invalid manifest path: %v", err)
		return fmt.Errorf("manifest path cannot be empty")
	}

	if err := validate.ValidatePositiveTimeout(Release.Timeout, "timeout"); err != nil {
		logging.Error("Invalid timeout %d: %v", Release.Timeout, err)
		return fmt.Errorf("timeout must be a positive number of seconds")
	}

	return nil
}

// ValidateTogglePath validates a toggle path argument shared by the toggle
// and ls commands.
func ValidateTogglePath(path string) error {
	if err := validate.TogglePathFormat(path); err != nil {
		logging.Error("Invalid toggle path '%s': %v", path, err)
		return fmt.Errorf("invalid toggle path - expected dotted segments (e.g. settings.theme)")
	}
	return nil
}
