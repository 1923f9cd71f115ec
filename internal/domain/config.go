package domain

// File and default value constants.
const (
	// ConfigFileName is the global config file name under the config dir.
	ConfigFileName = "config.toml"

	// LocalConfigFileName is the per-directory config file name.
	LocalConfigFileName = ".gh-seed.toml"

	// DefaultManifestPath is the manifest read when --file is not given.
	DefaultManifestPath = "issues.yaml"

	// DefaultLabelColor is the hex color used for labels created on the fly.
	DefaultLabelColor = "0366d6"

	// DryRunMilestoneNumber is the placeholder cached for milestones
	// during a dry run, where no real number exists.
	DryRunMilestoneNumber = 1
)

// Config represents the application configuration.
type Config struct {
	Repo       string `toml:"repo"`        // Default target repository (owner/name)
	File       string `toml:"file"`        // Default manifest path
	LabelColor string `toml:"label_color"` // Color for created labels
	LogLevel   string `toml:"log_level"`   // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config with built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		File:       DefaultManifestPath,
		LabelColor: DefaultLabelColor,
		LogLevel:   "info",
	}
}
