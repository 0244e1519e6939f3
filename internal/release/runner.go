package release

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/mintyPT/jsontoggle/internal/logging"
)

// Runner abstracts subprocess execution so the pipeline can be tested with
// a recording fake. The production implementation shells out via os/exec.
type Runner interface {
	// LookPath reports where the named executable resolves to, or an error
	// when it is not installed.
	LookPath(name string) (string, error)

	// Run executes the command and waits for it to exit. A non-zero exit
	// status is returned as an error.
	Run(ctx context.Context, name string, args ...string) error
}

// execRunner runs commands on the host, routing tool output through the
// structured logging pipeline.
type execRunner struct{}

// NewRunner returns the production Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("required tool %q not found on PATH: %w", name, err)
	}
	return path, nil
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = logging.NewLevelWriter("INFO", name)
	cmd.Stderr = logging.NewLevelWriter("WARN", name)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", name, err)
	}
	return nil
}
