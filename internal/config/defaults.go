// Package config provides common default configuration values shared across
// jsontoggle components (CLI, TUI, release pipeline). This centralizes
// configuration management and ensures consistency between flag defaults
// and project file defaults.
package config

const (
	// DefaultManifestPath is the default project manifest edited by the
	// release pipeline. The version field lives inside this TOML document.
	DefaultManifestPath = "pyproject.toml"

	// DefaultVersionKey is the dotted key of the version field inside the
	// manifest
	DefaultVersionKey = "project.version"

	// DefaultNameKey is the dotted key of the package name inside the
	// manifest, used to derive the <name>.egg-info cleanup path
	DefaultNameKey = "project.name"

	// DefaultTogglesDir is the directory where toggled-out JSON values are
	// stored next to the document being edited
	DefaultTogglesDir = "toggles"

	// DefaultLogLevel is the default log level for all components
	// INFO provides good visibility without verbose debug output
	DefaultLogLevel = "INFO"

	// DefaultIndexTimeout is the timeout in seconds for package index
	// lookups during release preflight
	DefaultIndexTimeout = 8

	// ProjectConfigFile is the optional per-project configuration file that
	// overrides release defaults when present in the working directory
	ProjectConfigFile = ".jsontoggle.yaml"

	// DemoFileName is the JSON document created by `start --demo`
	DemoFileName = "demo.json"
)

// DefaultCleanPaths lists the build artifacts removed before each release.
// The package-name-suffixed <name>.egg-info directory is appended at run
// time once the manifest has been read.
var DefaultCleanPaths = []string{
	"dist",
	"build",
	".mypy_cache",
	".ruff_cache",
}

// DefaultBuildCommand is the external tool invoked to build the package
var DefaultBuildCommand = []string{"uv", "build"}

// DefaultPublishCommand is the external tool invoked to upload the built
// artifacts
var DefaultPublishCommand = []string{"uv", "publish"}
