// pkg/filter/filter_test.go
package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_EmptyMatchesEverything(t *testing.T) {
	f, err := New(nil, nil)
	require.NoError(t, err)
	assert.True(t, f.Match("bat"))
	assert.True(t, f.Match("anything-at-all"))
}

func TestFilter_Only(t *testing.T) {
	f, err := New([]string{"cargo-*"}, nil)
	require.NoError(t, err)
	assert.True(t, f.Match("cargo-edit"))
	assert.True(t, f.Match("cargo-watch"))
	assert.False(t, f.Match("bat"))
}

func TestFilter_Exclude(t *testing.T) {
	f, err := New(nil, []string{"bat", "rip*"})
	require.NoError(t, err)
	assert.False(t, f.Match("bat"))
	assert.False(t, f.Match("ripgrep"))
	assert.True(t, f.Match("fd-find"))
}

func TestFilter_ExcludeWinsOverOnly(t *testing.T) {
	f, err := New([]string{"cargo-*"}, []string{"cargo-audit"})
	require.NoError(t, err)
	assert.True(t, f.Match("cargo-edit"))
	assert.False(t, f.Match("cargo-audit"))
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := New([]string{"[unclosed"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")

	_, err = New(nil, []string{"[also-bad"})
	require.Error(t, err)
}
