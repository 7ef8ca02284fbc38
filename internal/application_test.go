package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Game: config.Game{
			Markers: []string{"X", "O"},
			Seed:    7,
		},
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Two humans play to one and leave", func(t *testing.T) {
		// Given: Ann and Bob play one round where Ann takes the diagonal
		script := strings.Join([]string{
			"Ann", "1", "Bob",
			"1", "X", "1",
			"1", "2", "5", "3", "9",
			"n",
		}, "\n") + "\n"
		var stdout bytes.Buffer

		// When: the app runs against the script
		err := Run(context.Background(), logger, testConfig(), strings.NewReader(script), &stdout)

		// Then: Ann is the grand winner and the session ends cleanly
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Ann won!")
		assert.Contains(t, stdout.String(), "Ann is the grand winner! Congratulations!")
		assert.Contains(t, stdout.String(), "Thanks for playing Tic Tac Toe! Goodbye!")
	})

	t.Run("Closed input is a clean exit", func(t *testing.T) {
		err := Run(context.Background(), logger, testConfig(), strings.NewReader("Ann\n"), io.Discard)

		require.NoError(t, err)
	})

	t.Run("Rejects bad default markers", func(t *testing.T) {
		conf := testConfig()
		conf.Game.Markers = []string{"X"}

		err := Run(context.Background(), logger, conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidSettings)
	})
}
