package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestRun(t *testing.T) {
	t.Run("Failure is logged and returned instead of exiting", func(t *testing.T) {
		// Given: a config whose game settings are rejected, logging to a file
		dir := t.TempDir()
		logFile := filepath.Join(dir, "tictactoe.log")
		path := filepath.Join(dir, "config.yml")
		content := "log-file: " + logFile + "\ngame:\n  markers: [\"X\"]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: running the app
		err := run(path)

		// Then: the error comes back and the log file holds the failure
		require.ErrorIs(t, err, apperror.ErrInvalidSettings)

		logged, readErr := os.ReadFile(logFile)
		require.NoError(t, readErr)
		assert.Contains(t, string(logged), "app run failed")
	})

	t.Run("Panics are turned into errors", func(t *testing.T) {
		// Given: a malformed config, which makes MustLoad panic
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game: [unclosed"), 0o600))

		// When: running the app
		err := run(path)

		// Then: the panic is reported as an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recovered from panic")
	})
}
