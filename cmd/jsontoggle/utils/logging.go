// Package utils provides utility functions for the jsontoggle CLI.
// This file contains logging setup shared by all command handlers.
package utils

import (
	"os"

	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/config"
	"github.com/mintyPT/jsontoggle/internal/logging"
)

// SetupLogging configures CLI logging behavior based on flags and environment.
// --verbose or DEBUG=true enables debug output; otherwise the configured
// log level applies.
func SetupLogging() {
	if config.Global.Verbose || os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}
	logging.SetLevel(config.Global.LogLevel)
}
