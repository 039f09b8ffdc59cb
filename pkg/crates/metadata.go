// pkg/crates/metadata.go
package crates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMetadataPath returns the location of Cargo's .crates2.json:
// $CARGO_HOME/.crates2.json, or $HOME/.cargo/.crates2.json when
// CARGO_HOME is unset.
func DefaultMetadataPath() (string, error) {
	if dir := os.Getenv("CARGO_HOME"); dir != "" {
		return filepath.Join(dir, ".crates2.json"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory, and CARGO_HOME is unset: %w", err)
	}
	return filepath.Join(home, ".cargo", ".crates2.json"), nil
}

// LoadMetadata reads and decodes a .crates2.json file
func LoadMetadata(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var meta Metadata
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", path, ErrMalformedMetadata, err)
	}
	return &meta, nil
}
