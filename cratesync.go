// cratesync.go
package cratesync

import (
	"github.com/crateutil/cratesync/pkg/crates"
)

// Re-export metadata types for convenience
type (
	Metadata          = crates.Metadata
	InstallOptions    = crates.InstallOptions
	PackageIdentifier = crates.PackageIdentifier
	PackageSource     = crates.PackageSource
	SourceKind        = crates.SourceKind
	ParseError        = crates.ParseError
)

// Re-export source kinds
const (
	SourceRegistry = crates.SourceRegistry
	SourceGit      = crates.SourceGit
	SourcePath     = crates.SourcePath
)

// ParseIdentifier parses a package identifier string of the form
// "name version (kind+url)"
func ParseIdentifier(s string) (PackageIdentifier, error) {
	return crates.ParseIdentifier(s)
}

// ParseSource parses the "kind+url" portion of a package identifier
func ParseSource(s string) (PackageSource, error) {
	return crates.ParseSource(s)
}

// BuildInstallArgs parses rawID and renders the cargo install
// invocation for it
func BuildInstallArgs(rawID string, opts InstallOptions, force, locked bool) ([]string, error) {
	return crates.BuildInstallArgs(rawID, opts, force, locked)
}

// LoadMetadata reads and decodes a .crates2.json file
func LoadMetadata(path string) (*Metadata, error) {
	return crates.LoadMetadata(path)
}

// DefaultMetadataPath returns the default location of .crates2.json
func DefaultMetadataPath() (string, error) {
	return crates.DefaultMetadataPath()
}
