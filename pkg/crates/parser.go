// pkg/crates/parser.go
package crates

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode"
)

// ParseIdentifier parses an identifier string of the form
// "<name> <version> (<kind>+<url>)". Examples:
//
//	bat 0.18.0 (registry+https://github.com/rust-lang/crates.io-index)
//	bcut 1.0.2 (git+https://github.com/aswild/bcut#046894ca312298f260775687a87bd1f3b7df8e55)
//	cratesync 0.1.0 (path+file:///home/user/src/cratesync)
//
// Failures are returned as a *ParseError carrying the original input.
func ParseIdentifier(s string) (PackageIdentifier, error) {
	name, rest, ok := strings.Cut(s, " ")
	if !ok || name == "" || containsSpace(name) {
		return PackageIdentifier{}, &ParseError{Input: s, Err: ErrMalformedIdentifier}
	}

	version, src, ok := strings.Cut(rest, " ")
	if !ok || version == "" || containsSpace(version) {
		return PackageIdentifier{}, &ParseError{Input: s, Err: ErrMalformedIdentifier}
	}

	// The source must be parenthesized and span to the end of the string
	if !strings.HasPrefix(src, "(") || !strings.HasSuffix(src, ")") || len(src) < 3 {
		return PackageIdentifier{}, &ParseError{Input: s, Err: ErrMalformedIdentifier}
	}

	source, err := ParseSource(src[1 : len(src)-1])
	if err != nil {
		return PackageIdentifier{}, &ParseError{Input: s, Err: err}
	}

	return PackageIdentifier{
		Name:    name,
		Version: version,
		Source:  source,
	}, nil
}

// ParseSource parses the "kind+url" portion of a package identifier.
// The URL fragment (git revision bookkeeping) is discarded; branch and
// tag query parameters are captured into the result before the query
// string is stripped. Any other query key is an error, regardless of
// the source kind.
func ParseSource(s string) (PackageSource, error) {
	// url.Parse accepts composite schemes like "git+https" but the kind
	// is not part of the URL proper, so split it off first.
	kind, rest, ok := strings.Cut(s, "+")
	if !ok {
		return PackageSource{}, ErrMissingSourceKind
	}
	if rest == "" {
		return PackageSource{}, ErrEmptyURL
	}

	u, err := url.Parse(rest)
	if err != nil {
		return PackageSource{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return PackageSource{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	var branch, tag string
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic error for multiple unknown keys
	for _, k := range keys {
		vals := query[k]
		switch k {
		case "branch":
			branch = vals[len(vals)-1]
		case "tag":
			tag = vals[len(vals)-1]
		default:
			return PackageSource{}, fmt.Errorf("%w: %q", ErrUnknownQueryParam, k)
		}
	}

	// Neither the revision fragment nor the branch/tag selector is part
	// of the source's identity
	u.Fragment = ""
	u.RawFragment = ""
	u.RawQuery = ""

	switch kind {
	case "registry":
		return PackageSource{Kind: SourceRegistry, URL: u.String()}, nil
	case "git":
		return PackageSource{Kind: SourceGit, URL: u.String(), Branch: branch, Tag: tag}, nil
	case "path":
		return PackageSource{Kind: SourcePath, Path: u.Path}, nil
	default:
		return PackageSource{}, fmt.Errorf("%w: %q", ErrUnknownSourceKind, kind)
	}
}

func containsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
