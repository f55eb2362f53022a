package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ccin2p3/fist/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that absent files and variables yield the zero
// settings.
func TestLoad_Defaults(t *testing.T) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings := configHandler.Load(filepath.Join(t.TempDir(), "no-such.env"))

	assert.False(t, settings.Verbose)
	assert.False(t, settings.SortEntries)
	assert.False(t, settings.Summary)
}

// TestLoad_FromFile tests resolving settings from an env-style file.
func TestLoad_FromFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "fist.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FIST_SORT_ENTRIES=true\nFIST_SUMMARY=1\n"), 0o644))

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings := configHandler.Load(envFile)

	assert.False(t, settings.Verbose)
	assert.True(t, settings.SortEntries)
	assert.True(t, settings.Summary)
}

// TestLoad_ProcessEnvWins tests that the process environment overrides file
// values.
func TestLoad_ProcessEnvWins(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "fist.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FIST_VERBOSE=false\n"), 0o644))

	t.Setenv("FIST_VERBOSE", "true")

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings := configHandler.Load(envFile)

	assert.True(t, settings.Verbose)
}

// TestLoad_GarbageValues tests that unparseable values read as false.
func TestLoad_GarbageValues(t *testing.T) {
	t.Setenv("FIST_SORT_ENTRIES", "maybe")

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings := configHandler.Load()

	assert.False(t, settings.SortEntries)
}
