// pkg/filter/filter.go
// Package filter matches package names against include/exclude glob
// patterns.
package filter

import (
	"fmt"
	"path"
)

// Filter selects package names. An empty Only list includes every
// name; Exclude patterns win over Only patterns.
type Filter struct {
	only    []string
	exclude []string
}

// New validates the glob patterns and builds a Filter
func New(only, exclude []string) (*Filter, error) {
	for _, p := range only {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}
	for _, p := range exclude {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}
	return &Filter{only: only, exclude: exclude}, nil
}

// Match reports whether name passes the filter
func (f *Filter) Match(name string) bool {
	for _, p := range f.exclude {
		if ok, _ := path.Match(p, name); ok {
			return false
		}
	}
	if len(f.only) == 0 {
		return true
	}
	for _, p := range f.only {
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}
