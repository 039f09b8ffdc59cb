// pkg/crates/types.go
// Package crates models Cargo's installed-package metadata: the
// .crates2.json document, the identifier strings that key it, and the
// cargo install arguments derived from them.
package crates

// SourceKind identifies where a package's code originated
type SourceKind string

const (
	SourceRegistry SourceKind = "registry"
	SourceGit      SourceKind = "git"
	SourcePath     SourceKind = "path"
)

// PackageSource describes where a package was installed from. Kind
// selects the active fields: URL for registry and git sources (with
// optional Branch/Tag for git), Path for local filesystem sources.
type PackageSource struct {
	Kind   SourceKind
	URL    string // registry index or git remote; fragment and query already stripped
	Branch string // git only, empty if unset
	Tag    string // git only, empty if unset
	Path   string // path only, decoded filesystem path
}

// PackageIdentifier is the parsed form of an identifier string such as
// "bat 0.18.0 (registry+https://github.com/rust-lang/crates.io-index)".
type PackageIdentifier struct {
	Name    string // Package name
	Version string // Installed version, treated as an opaque string
	Source  PackageSource
}

// InstallOptions is the build configuration recorded for one installed
// package in .crates2.json.
type InstallOptions struct {
	VersionReq        string   `json:"version_req"` // semver requirement as originally requested, empty if unpinned
	Bins              []string `json:"bins"`        // binaries produced by the install
	Features          []string `json:"features"`
	AllFeatures       bool     `json:"all_features"`
	NoDefaultFeatures bool     `json:"no_default_features"`
	Profile           string   `json:"profile"` // recorded but never re-emitted; --profile is not a stable cargo install flag
	Target            string   `json:"target"`  // target platform triple
	Rustc             string   `json:"rustc"`   // compiler version used, informational only
}

// Metadata is the top-level .crates2.json document, keyed by the
// canonical identifier string of each installed package.
// Note: this metadata format isn't a stable Cargo interface and future
// Cargo versions might change it.
type Metadata struct {
	Installs map[string]InstallOptions `json:"installs"`
}
