// errors.go
package cratesync

import (
	"github.com/crateutil/cratesync/pkg/crates"
)

// Re-exported parse errors, matchable with errors.Is
var (
	// ErrMalformedIdentifier indicates an identifier string that does not
	// match the "name version (source)" structure
	ErrMalformedIdentifier = crates.ErrMalformedIdentifier

	// ErrMissingSourceKind indicates a source with no "kind+" prefix
	ErrMissingSourceKind = crates.ErrMissingSourceKind

	// ErrEmptyURL indicates a source with nothing after the kind separator
	ErrEmptyURL = crates.ErrEmptyURL

	// ErrInvalidURL indicates the source URL failed to parse
	ErrInvalidURL = crates.ErrInvalidURL

	// ErrUnknownQueryParam indicates a URL query key other than branch/tag
	ErrUnknownQueryParam = crates.ErrUnknownQueryParam

	// ErrUnknownSourceKind indicates a kind other than registry/git/path
	ErrUnknownSourceKind = crates.ErrUnknownSourceKind

	// ErrMalformedMetadata indicates a structurally invalid .crates2.json
	ErrMalformedMetadata = crates.ErrMalformedMetadata
)
