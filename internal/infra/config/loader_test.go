package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabooya/gh-seed/internal/domain"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Repo)
	assert.Equal(t, domain.DefaultManifestPath, cfg.File)
	assert.Equal(t, domain.DefaultLabelColor, cfg.LabelColor)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoader_GlobalConfig(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
repo = "acme/widgets"
label_color = "ff0000"
`)

	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, "ff0000", cfg.LabelColor)
	// Unset fields keep their defaults.
	assert.Equal(t, domain.DefaultManifestPath, cfg.File)
}

func TestLoader_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `repo = "acme/widgets"`)

	workDir := t.TempDir()
	writeConfig(t, workDir, domain.LocalConfigFileName, `
repo = "acme/gadgets"
file = "backlog.yaml"
`)

	loader := NewLoaderWithGlobalDir(workDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "acme/gadgets", cfg.Repo)
	assert.Equal(t, "backlog.yaml", cfg.File)
}

func TestLoader_InvalidTOML(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, domain.LocalConfigFileName, "repo = [broken")

	loader := NewLoaderWithGlobalDir(workDir, t.TempDir())
	_, err := loader.Load()
	require.Error(t, err)
}
