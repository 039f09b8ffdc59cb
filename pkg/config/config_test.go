// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
cargo_path: /opt/rust/bin/cargo
locked: true
exclude:
  - bat
  - "cargo-*"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/rust/bin/cargo", cfg.CargoPath)
	assert.True(t, cfg.Locked)
	assert.Equal(t, []string{"bat", "cargo-*"}, cfg.Exclude)
	assert.False(t, cfg.Verbose)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "cargo", cfg.CargoPath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locked: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Locked)
	assert.Equal(t, "cargo", cfg.CargoPath)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cargo_path: [broken\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
