// Package handlers provides document command handlers for jsontoggle.
package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/config"
	"github.com/mintyPT/jsontoggle/cmd/jsontoggle/utils"
	internalconfig "github.com/mintyPT/jsontoggle/internal/config"
	"github.com/mintyPT/jsontoggle/internal/logging"
	"github.com/mintyPT/jsontoggle/internal/toggle"
	"github.com/mintyPT/jsontoggle/internal/tui"
)

// startFile selects the document the UI opens. --demo always targets the
// generated demo document, never a file the user passed, so demo content
// can never overwrite real data.
func startFile(args []string, demo bool) (string, error) {
	if demo {
		if len(args) == 1 && args[0] != internalconfig.DemoFileName {
			return "", fmt.Errorf("--demo always opens %s; drop the flag to open %s",
				internalconfig.DemoFileName, args[0])
		}
		return internalconfig.DemoFileName, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a JSON file to open, or use --demo")
}

// HandleStart opens the interactive terminal UI over a JSON document.
func HandleStart(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	file, err := startFile(args, config.Start.Demo)
	if err != nil {
		return err
	}

	if config.Start.Demo {
		if err := toggle.WriteDemoFile(file); err != nil {
			return err
		}
		logging.Info("Created demo document %s", file)
	}

	mgr, err := toggle.NewManager(file, config.Start.TogglesDir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}

	// The TUI owns the terminal; keep loggers and the stdlib logger from
	// writing over the alternate screen.
	logging.SuppressOutput()
	logging.RedirectStandardLog(nil)
	defer logging.RestoreOutput()

	return tui.Run(mgr, filepath.Base(file))
}

// HandleToggle toggles a single node in or out without the UI.
func HandleToggle(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	file, path := args[0], args[1]
	if err := config.ValidateTogglePath(path); err != nil {
		return err
	}

	mgr, err := toggle.NewManager(file, config.Toggle.TogglesDir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}

	msg, err := mgr.Toggle(path)
	if err != nil {
		return err
	}
	logging.Success("%s", msg)
	return nil
}

// HandleList prints the document paths currently toggled out, one per line.
func HandleList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	file := args[0]
	mgr, err := toggle.NewManager(file, config.Toggle.TogglesDir)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}

	paths, err := mgr.List()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		logging.Info("No toggled-out paths in %s", file)
		return nil
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
