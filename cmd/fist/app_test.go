package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccin2p3/fist/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLaunch_Success tests a complete run over a small real tree.
func TestLaunch_Success(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a b.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	var out bytes.Buffer
	app := NewApp(root, &out, configuration.Settings{SortEntries: true})

	err := app.Launch(context.Background())

	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, out.String(), "a%20b.txt")
}

// TestLaunch_MissingRoot tests that an inaccessible root is fatal and leaves
// the record stream empty.
func TestLaunch_MissingRoot(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := NewApp(filepath.Join(t.TempDir(), "gone"), &out, configuration.Settings{})

	err := app.Launch(context.Background())

	require.Error(t, err)
	assert.Empty(t, out.String())
}

// TestLaunch_RootIsFile tests that a non-directory root is fatal.
func TestLaunch_RootIsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	var out bytes.Buffer
	app := NewApp(file, &out, configuration.Settings{})

	err := app.Launch(context.Background())

	require.Error(t, err)
	assert.Empty(t, out.String())
}
