// pkg/crates/metadata_test.go
package crates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMetadata = `{
  "installs": {
    "bat 0.18.0 (registry+https://github.com/rust-lang/crates.io-index)": {
      "version_req": "^0.18",
      "bins": ["bat"],
      "features": ["git"],
      "all_features": false,
      "no_default_features": false,
      "profile": "release",
      "target": "x86_64-unknown-linux-gnu",
      "rustc": "rustc 1.52.1 (9bc8c42bb 2021-05-09)"
    },
    "bcut 1.0.2 (git+https://github.com/aswild/bcut#046894c)": {
      "version_req": null,
      "bins": ["bcut"],
      "features": [],
      "all_features": false,
      "no_default_features": false,
      "profile": "release",
      "target": "x86_64-unknown-linux-gnu",
      "rustc": "rustc 1.52.1 (9bc8c42bb 2021-05-09)"
    }
  }
}`

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".crates2.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMetadata(t *testing.T) {
	meta, err := LoadMetadata(writeMetadata(t, sampleMetadata))
	require.NoError(t, err)
	require.Len(t, meta.Installs, 2)

	opts := meta.Installs["bat 0.18.0 (registry+https://github.com/rust-lang/crates.io-index)"]
	assert.Equal(t, "^0.18", opts.VersionReq)
	assert.Equal(t, []string{"bat"}, opts.Bins)
	assert.Equal(t, []string{"git"}, opts.Features)
	assert.False(t, opts.AllFeatures)
	assert.Equal(t, "release", opts.Profile)
	assert.Equal(t, "x86_64-unknown-linux-gnu", opts.Target)

	// null version_req decodes to the empty string
	opts = meta.Installs["bcut 1.0.2 (git+https://github.com/aswild/bcut#046894c)"]
	assert.Empty(t, opts.VersionReq)
	assert.Empty(t, opts.Features)
}

func TestLoadMetadata_Malformed(t *testing.T) {
	_, err := LoadMetadata(writeMetadata(t, `{"installs": [1, 2]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedMetadata)
}

func TestLoadMetadata_MissingFile(t *testing.T) {
	_, err := LoadMetadata(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedMetadata)
}

func TestDefaultMetadataPath_CargoHome(t *testing.T) {
	t.Setenv("CARGO_HOME", "/opt/cargo")
	path, err := DefaultMetadataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/cargo", ".crates2.json"), path)
}

func TestDefaultMetadataPath_HomeFallback(t *testing.T) {
	t.Setenv("CARGO_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	path, err := DefaultMetadataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cargo", ".crates2.json"), path)
}
