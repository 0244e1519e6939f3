package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mintyPT/jsontoggle/internal/manifest"
)

const testManifest = `[project]
name = "jsontoggle"
version = "0.4.9"
`

// fakeRunner records invocations and can be told to fail specific commands.
type fakeRunner struct {
	invocations []string
	missing     map[string]bool
	failures    map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		missing:  make(map[string]bool),
		failures: make(map[string]error),
	}
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("required tool %q not found on PATH", name)
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.invocations = append(f.invocations, strings.Join(append([]string{name}, args...), " "))
	if err := f.failures[name]; err != nil {
		return err
	}
	return nil
}

// fakeIndex returns canned answers for index lookups.
type fakeIndex struct {
	released bool
	err      error
	queried  []string
}

func (f *fakeIndex) Released(ctx context.Context, name, ver string) (bool, error) {
	f.queried = append(f.queried, name+"=="+ver)
	return f.released, f.err
}

// setupProject creates a project directory with a manifest and stale
// artifacts, chdirs into it, and returns a matching config.
func setupProject(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile("pyproject.toml", []byte(testManifest), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	for _, stale := range []string{"dist", "build", ".mypy_cache", ".ruff_cache", "jsontoggle.egg-info"} {
		if err := os.MkdirAll(filepath.Join(stale, "junk"), 0o755); err != nil {
			t.Fatalf("failed to create stale dir %s: %v", stale, err)
		}
	}

	cfg := DefaultConfig()
	cfg.BuildCommand = []string{"uv", "build"}
	cfg.PublishCommand = []string{"uv", "publish"}
	return cfg
}

// readVersion reads the current manifest version from disk.
func readVersion(t *testing.T, path string) string {
	t.Helper()
	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}
	v, err := m.Get("project.version")
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	return v
}

// TestRunFullCycle tests the 0.4.9 -> 0.4.10 release scenario
func TestRunFullCycle(t *testing.T) {
	cfg := setupProject(t)
	runner := newFakeRunner()

	next, err := New(cfg, WithRunner(runner)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run unexpected error: %v", err)
	}
	if next.String() != "0.4.10" {
		t.Errorf("released version = %s, want 0.4.10", next)
	}
	if got := readVersion(t, "pyproject.toml"); got != "0.4.10" {
		t.Errorf("manifest version after run = %q, want %q", got, "0.4.10")
	}

	// Cleanup paths must be gone, including the derived egg-info dir
	for _, stale := range []string{"dist", "build", ".mypy_cache", ".ruff_cache", "jsontoggle.egg-info"} {
		if _, err := os.Stat(stale); !os.IsNotExist(err) {
			t.Errorf("stale path %s survived the clean step", stale)
		}
	}

	// Build then publish, exactly once each, in that order
	want := []string{"uv build", "uv publish"}
	if len(runner.invocations) != len(want) {
		t.Fatalf("invocations = %v, want %v", runner.invocations, want)
	}
	for i := range want {
		if runner.invocations[i] != want[i] {
			t.Errorf("invocation[%d] = %q, want %q", i, runner.invocations[i], want[i])
		}
	}
}

// TestRunBuildFailure tests that publish never runs after a failed build
func TestRunBuildFailure(t *testing.T) {
	cfg := setupProject(t)
	runner := newFakeRunner()
	runner.failures["uv"] = errors.New("exit status 1")

	_, err := New(cfg, WithRunner(runner)).Run(context.Background())
	if err == nil {
		t.Fatal("Run expected error on build failure, got nil")
	}
	if !strings.Contains(err.Error(), "build failed") {
		t.Errorf("error = %v, want build failure", err)
	}

	if len(runner.invocations) != 1 || runner.invocations[0] != "uv build" {
		t.Errorf("invocations = %v, want only the build attempt", runner.invocations)
	}
}

// TestRunMalformedVersion tests that nothing is mutated or invoked when the
// manifest version does not parse
func TestRunMalformedVersion(t *testing.T) {
	cfg := setupProject(t)
	if err := os.WriteFile("pyproject.toml", []byte("[project]\nname = \"jsontoggle\"\nversion = \"1.2\"\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite manifest: %v", err)
	}
	runner := newFakeRunner()

	_, err := New(cfg, WithRunner(runner)).Run(context.Background())
	if err == nil {
		t.Fatal("Run expected error on malformed version, got nil")
	}

	if got := readVersion(t, "pyproject.toml"); got != "1.2" {
		t.Errorf("manifest was mutated despite parse failure: version = %q", got)
	}
	if len(runner.invocations) != 0 {
		t.Errorf("tools were invoked despite parse failure: %v", runner.invocations)
	}
	if _, statErr := os.Stat("dist"); statErr != nil {
		t.Error("clean ran despite parse failure")
	}
}

// TestRunMissingTool tests the explicit preflight check
func TestRunMissingTool(t *testing.T) {
	cfg := setupProject(t)
	runner := newFakeRunner()
	runner.missing["uv"] = true

	_, err := New(cfg, WithRunner(runner)).Run(context.Background())
	if err == nil {
		t.Fatal("Run expected error when tool is missing, got nil")
	}

	if got := readVersion(t, "pyproject.toml"); got != "0.4.9" {
		t.Errorf("manifest was mutated despite missing tool: version = %q", got)
	}
	if len(runner.invocations) != 0 {
		t.Errorf("tools were invoked despite failed preflight: %v", runner.invocations)
	}
}

// TestRunSkipPublish tests that --skip-publish still builds
func TestRunSkipPublish(t *testing.T) {
	cfg := setupProject(t)
	cfg.SkipPublish = true
	runner := newFakeRunner()

	if _, err := New(cfg, WithRunner(runner)).Run(context.Background()); err != nil {
		t.Fatalf("Run unexpected error: %v", err)
	}
	if len(runner.invocations) != 1 || runner.invocations[0] != "uv build" {
		t.Errorf("invocations = %v, want only the build", runner.invocations)
	}
}

// TestRunDryRun tests that dry runs mutate nothing
func TestRunDryRun(t *testing.T) {
	cfg := setupProject(t)
	cfg.DryRun = true
	runner := newFakeRunner()

	next, err := New(cfg, WithRunner(runner)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run unexpected error: %v", err)
	}
	if next.String() != "0.4.10" {
		t.Errorf("planned version = %s, want 0.4.10", next)
	}

	if got := readVersion(t, "pyproject.toml"); got != "0.4.9" {
		t.Errorf("dry run mutated the manifest: version = %q", got)
	}
	if len(runner.invocations) != 0 {
		t.Errorf("dry run invoked tools: %v", runner.invocations)
	}
	if _, err := os.Stat("dist"); err != nil {
		t.Error("dry run removed artifacts")
	}
}

// TestRunIndexConflict tests the optional already-published guard
func TestRunIndexConflict(t *testing.T) {
	cfg := setupProject(t)
	runner := newFakeRunner()
	index := &fakeIndex{released: true}

	_, err := New(cfg, WithRunner(runner), WithIndexChecker(index)).Run(context.Background())
	if err == nil {
		t.Fatal("Run expected error when version already published, got nil")
	}
	if !strings.Contains(err.Error(), "already on the package index") {
		t.Errorf("error = %v, want index conflict", err)
	}

	if len(index.queried) != 1 || index.queried[0] != "jsontoggle==0.4.10" {
		t.Errorf("index queries = %v, want the bumped version", index.queried)
	}
	if got := readVersion(t, "pyproject.toml"); got != "0.4.9" {
		t.Errorf("manifest was mutated despite index conflict: version = %q", got)
	}
	if len(runner.invocations) != 0 {
		t.Errorf("tools were invoked despite index conflict: %v", runner.invocations)
	}
}

// TestRunTwiceIncrementsTwice tests that bumping is not idempotent
func TestRunTwiceIncrementsTwice(t *testing.T) {
	cfg := setupProject(t)
	runner := newFakeRunner()
	p := New(cfg, WithRunner(runner))

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("first Run unexpected error: %v", err)
	}
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("second Run unexpected error: %v", err)
	}

	if got := readVersion(t, "pyproject.toml"); got != "0.4.11" {
		t.Errorf("version after two runs = %q, want %q", got, "0.4.11")
	}
}

// chdir changes into dir for the duration of the test (t.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}
