package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunFailsWhenLogCannotBeOpened(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := writeConfig(t, "log:\n  file: "+filepath.Join(blocker, "compass.log")+"\n")

	err := run([]string{"-config", cfg}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log")
}

func TestRunFailsOnMissingConfig(t *testing.T) {
	err := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRunRejectsBadAPIOverride(t *testing.T) {
	cfg := writeConfig(t, "service:\n  timeout: 5\n")

	err := run([]string{"-config", cfg, "-api", "not a url"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestRunHelpListsCommands(t *testing.T) {
	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-h"}, &stderr))
	assert.Contains(t, stderr.String(), "-config")
	assert.Contains(t, stderr.String(), "/select")
}
