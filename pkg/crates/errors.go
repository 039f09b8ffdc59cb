// pkg/crates/errors.go
package crates

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedIdentifier indicates an identifier string that does not
	// match the "name version (source)" structure
	ErrMalformedIdentifier = errors.New("malformed package identifier")

	// ErrMissingSourceKind indicates a source with no "kind+" prefix
	ErrMissingSourceKind = errors.New("no package source kind found")

	// ErrEmptyURL indicates a source with nothing after the kind separator
	ErrEmptyURL = errors.New("package source URL is empty")

	// ErrInvalidURL indicates the source URL failed to parse
	ErrInvalidURL = errors.New("invalid package source URL")

	// ErrUnknownQueryParam indicates a URL query key other than branch/tag
	ErrUnknownQueryParam = errors.New("unknown URL query parameter")

	// ErrUnknownSourceKind indicates a kind other than registry/git/path
	ErrUnknownSourceKind = errors.New("unknown package source kind")

	// ErrMalformedMetadata indicates a structurally invalid .crates2.json
	ErrMalformedMetadata = errors.New("malformed install metadata")
)

// ParseError wraps a parse failure with the input that caused it
type ParseError struct {
	Input string // Original offending string
	Err   error  // Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
