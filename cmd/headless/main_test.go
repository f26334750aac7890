package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsSetupErrors(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "headless.log")

	err := run([]string{"-log", logPath, "-script", "no_such_script"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_script")

	_, statErr := os.Stat(logPath)
	assert.NoError(t, statErr, "log file is created before the failure")
}

func TestRunWritesSummaryToLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "headless.log")

	require.NoError(t, run([]string{"-log", logPath, "-ticks", "30", "-seed", "5"}))

	out, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "headless: finished")
	assert.Contains(t, string(out), "seed=5")
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	assert.Error(t, run([]string{"-bogus"}))
}
