package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecdraw/internal/editor"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { editor.SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "vecdraw.log")

	f, err := setupLogging(path, false)
	require.NoError(t, err)
	editor.Logger().Debug("hidden")
	editor.Logger().Info("kept", "n", 3)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=kept n=3")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggingDebug(t *testing.T) {
	t.Cleanup(func() { editor.SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "vecdraw.log")

	f, err := setupLogging(path, true)
	require.NoError(t, err)
	editor.Logger().Debug("shown")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=shown")
}

func TestSetupLoggingBadPath(t *testing.T) {
	_, err := setupLogging(filepath.Join(t.TempDir(), "missing", "vecdraw.log"), false)
	assert.ErrorContains(t, err, "log file")
}
