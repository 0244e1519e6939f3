// Package release implements the automated package release cycle: bump the
// patch version in the project manifest, purge stale build artifacts, then
// invoke the external build and publish tools.
//
// The shell-script ancestry of this flow relied on ambient state (current
// working directory, pre-installed tools, abort-on-error execution). Here
// everything is explicit: a Config names the manifest, the version key, the
// cleanup paths and the tool commands; every step returns an error; and the
// pipeline stops at the first failure with no retry and no rollback. If
// publish fails after the bump, the manifest stays bumped. That is an
// accepted limitation, not a handled case.
package release

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mintyPT/jsontoggle/internal/config"
	"github.com/mintyPT/jsontoggle/internal/validate"
)

// Config is the explicit configuration object for one release run.
type Config struct {
	// ManifestPath is the TOML manifest holding the version field
	ManifestPath string `yaml:"manifest"`

	// VersionKey is the dotted key of the version field (project.version)
	VersionKey string `yaml:"version_key"`

	// NameKey is the dotted key of the package name, used to derive the
	// <name>.egg-info cleanup path
	NameKey string `yaml:"name_key"`

	// CleanPaths are removed recursively before building; absence is fine
	CleanPaths []string `yaml:"clean_paths"`

	// BuildCommand and PublishCommand are the external tools invoked as
	// subprocesses. First element is the executable.
	BuildCommand   []string `yaml:"build_command"`
	PublishCommand []string `yaml:"publish_command"`

	// IndexURL enables the optional pre-publish check against a package
	// index (e.g. https://pypi.org). Empty disables the check.
	IndexURL string `yaml:"index_url"`

	// IndexTimeout is the package index request timeout in seconds
	IndexTimeout int `yaml:"index_timeout"`

	// SkipPublish builds but never invokes the publish tool
	SkipPublish bool `yaml:"-"`

	// DryRun reports what would happen without mutating anything
	DryRun bool `yaml:"-"`
}

// DefaultConfig returns the release configuration matching the historical
// script behavior.
func DefaultConfig() Config {
	return Config{
		ManifestPath:   config.DefaultManifestPath,
		VersionKey:     config.DefaultVersionKey,
		NameKey:        config.DefaultNameKey,
		CleanPaths:     append([]string(nil), config.DefaultCleanPaths...),
		BuildCommand:   append([]string(nil), config.DefaultBuildCommand...),
		PublishCommand: append([]string(nil), config.DefaultPublishCommand...),
		IndexTimeout:   config.DefaultIndexTimeout,
	}
}

// LoadConfig returns the defaults merged with the optional project file
// (.jsontoggle.yaml) in dir. A missing file is not an error; a malformed
// one is.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, config.ProjectConfigFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration before any step runs.
func (c Config) Validate() error {
	if err := validate.ValidateRequiredString(c.ManifestPath, "manifest path"); err != nil {
		return err
	}
	if err := validate.DottedKeyFormat(c.VersionKey); err != nil {
		return fmt.Errorf("version key: %w", err)
	}
	if err := validate.DottedKeyFormat(c.NameKey); err != nil {
		return fmt.Errorf("name key: %w", err)
	}
	if err := validate.ValidateCommand(c.BuildCommand, "build"); err != nil {
		return err
	}
	if err := validate.ValidateCommand(c.PublishCommand, "publish"); err != nil {
		return err
	}
	if c.IndexURL != "" {
		if err := validate.ValidateField(c.IndexURL, "url"); err != nil {
			return fmt.Errorf("index URL %q is not a valid URL", c.IndexURL)
		}
		if err := validate.ValidatePositiveTimeout(c.IndexTimeout, "index timeout"); err != nil {
			return err
		}
	}
	return nil
}
