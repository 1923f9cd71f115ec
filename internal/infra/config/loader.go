// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/zabooya/gh-seed/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for .gh-seed.toml
	globalConfDir string // Global config directory (e.g., ~/.config/gh-seed)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gh-seed")
}

// Load returns the merged configuration.
// Precedence: defaults <- global <- working directory.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	local, err := l.loadFile(filepath.Join(l.workDir, domain.LocalConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// loadFile loads a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of over onto base.
func mergeConfigs(base, over *domain.Config) *domain.Config {
	merged := *base
	if over.Repo != "" {
		merged.Repo = over.Repo
	}
	if over.File != "" {
		merged.File = over.File
	}
	if over.LabelColor != "" {
		merged.LabelColor = over.LabelColor
	}
	if over.LogLevel != "" {
		merged.LogLevel = over.LogLevel
	}
	return &merged
}
