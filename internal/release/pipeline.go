package release

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mintyPT/jsontoggle/internal/logging"
	"github.com/mintyPT/jsontoggle/internal/manifest"
	"github.com/mintyPT/jsontoggle/internal/semver"
)

// indexChecker is the part of IndexClient the pipeline depends on,
// extracted so tests can fake index responses.
type indexChecker interface {
	Released(ctx context.Context, name, ver string) (bool, error)
}

// Pipeline executes the release steps in order with fail-fast semantics:
// the first error aborts the run and nothing is retried or rolled back.
type Pipeline struct {
	cfg    Config
	runner Runner
	index  indexChecker
}

// Option customizes Pipeline construction for tests and alternate runtimes.
type Option func(*Pipeline)

// WithRunner overrides the subprocess runner used by the pipeline.
func WithRunner(r Runner) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.runner = r
		}
	}
}

// WithIndexChecker overrides the package index client used by the pipeline.
func WithIndexChecker(ic indexChecker) Option {
	return func(p *Pipeline) {
		if ic != nil {
			p.index = ic
		}
	}
}

// New creates a release pipeline for the given configuration. The package
// index check is only wired when an index URL is configured.
func New(cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		runner: NewRunner(),
	}
	if cfg.IndexURL != "" {
		p.index = NewIndexClient(cfg.IndexURL, cfg.IndexTimeout)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full release cycle and returns the version that was
// (or, for dry runs, would be) released.
//
// Step order: validate config, preflight tool checks, parse and bump the
// manifest version, optional index check, write the manifest back, clean
// stale artifacts, build, publish. A parse failure aborts before any file
// mutation or tool invocation.
func (p *Pipeline) Run(ctx context.Context) (semver.Version, error) {
	var zero semver.Version

	if err := p.cfg.Validate(); err != nil {
		return zero, fmt.Errorf("invalid release configuration: %w", err)
	}
	if err := p.preflight(); err != nil {
		return zero, err
	}

	m, err := manifest.Load(p.cfg.ManifestPath)
	if err != nil {
		return zero, err
	}

	name, err := m.Get(p.cfg.NameKey)
	if err != nil {
		return zero, fmt.Errorf("cannot determine package name: %w", err)
	}

	currentStr, err := m.Get(p.cfg.VersionKey)
	if err != nil {
		return zero, fmt.Errorf("cannot read current version: %w", err)
	}
	current, err := semver.Parse(currentStr)
	if err != nil {
		return zero, fmt.Errorf("manifest version is malformed: %w", err)
	}
	next := current.BumpPatch()

	logging.Info("Manifest %s before bump:", m.Path())
	fmt.Fprint(os.Stdout, m.Contents())
	logging.Info("Bumping %s: %s -> %s", name, current, next)

	if p.cfg.DryRun {
		logging.Info("Dry run: would write %s, clean %s, run %q then %q",
			p.cfg.ManifestPath, strings.Join(p.cleanTargets(name), ", "),
			strings.Join(p.cfg.BuildCommand, " "), strings.Join(p.cfg.PublishCommand, " "))
		return next, nil
	}

	if p.index != nil {
		released, err := p.index.Released(ctx, name, next.String())
		if err != nil {
			return zero, err
		}
		if released {
			return zero, fmt.Errorf("version %s of %s is already on the package index", next, name)
		}
	}

	if err := m.Set(p.cfg.VersionKey, next.String()); err != nil {
		return zero, err
	}
	if err := m.Save(); err != nil {
		return zero, err
	}

	// Print the updated manifest so the operator can verify the bump
	logging.Info("Manifest %s after bump:", m.Path())
	fmt.Fprint(os.Stdout, m.Contents())

	if err := p.clean(name); err != nil {
		return zero, err
	}
	if err := p.runner.Run(ctx, p.cfg.BuildCommand[0], p.cfg.BuildCommand[1:]...); err != nil {
		return zero, fmt.Errorf("build failed: %w", err)
	}

	if p.cfg.SkipPublish {
		logging.Warn("Skipping publish step as requested")
	} else {
		if err := p.runner.Run(ctx, p.cfg.PublishCommand[0], p.cfg.PublishCommand[1:]...); err != nil {
			return zero, fmt.Errorf("publish failed: %w", err)
		}
	}

	logging.Success("Released %s %s", name, next)
	return next, nil
}

// preflight verifies the external tools exist before anything is mutated.
// The historical script installed missing helpers on the fly; here a
// missing tool is an explicit, early failure instead.
func (p *Pipeline) preflight() error {
	if _, err := p.runner.LookPath(p.cfg.BuildCommand[0]); err != nil {
		return err
	}
	if p.cfg.SkipPublish {
		return nil
	}
	if _, err := p.runner.LookPath(p.cfg.PublishCommand[0]); err != nil {
		return err
	}
	return nil
}

// clean removes stale build artifacts. Paths that do not exist are fine.
func (p *Pipeline) clean(name string) error {
	for _, path := range p.cleanTargets(name) {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		logging.Debug("Removed %s", path)
	}
	return nil
}

// cleanTargets is the configured cleanup set plus the package-name-derived
// egg-info directory.
func (p *Pipeline) cleanTargets(name string) []string {
	targets := append([]string(nil), p.cfg.CleanPaths...)
	if name != "" {
		targets = append(targets, eggInfoDir(name))
	}
	return targets
}

// eggInfoDir maps a package name to its generated metadata directory.
// Python normalizes dashes to underscores when writing <name>.egg-info.
func eggInfoDir(name string) string {
	return strings.ReplaceAll(name, "-", "_") + ".egg-info"
}
