package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	flags, args, err := parseFlags([]string{"marinedash"})
	require.NoError(t, err)

	assert.Empty(t, flags.config)
	assert.Empty(t, flags.office)
	assert.Empty(t, flags.out)
	assert.False(t, flags.serve)
	assert.False(t, flags.placeholder)
	assert.False(t, flags.verbose)
	assert.Empty(t, args)
}

func TestParseFlagsAllSet(t *testing.T) {
	flags, _, err := parseFlags([]string{
		"marinedash",
		"--config", "widget.yaml",
		"-o", "AJK",
		"--out", "fragment.html",
		"--serve",
		"--addr", ":9090",
		"--placeholder",
		"-v",
	})
	require.NoError(t, err)

	assert.Equal(t, "widget.yaml", flags.config)
	assert.Equal(t, "AJK", flags.office)
	assert.Equal(t, "fragment.html", flags.out)
	assert.True(t, flags.serve)
	assert.Equal(t, ":9090", flags.addr)
	assert.True(t, flags.placeholder)
	assert.True(t, flags.verbose)
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"marinedash", "--bogus"})
	assert.Error(t, err)
}
