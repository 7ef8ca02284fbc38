package tictactoe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func newTestSession(t *testing.T, input *scriptedInput, output *recordedOutput) *Session {
	t.Helper()

	setup := newTestSetup(t, input, output)

	return NewSession(discardLogger(), input, output, firstPicker{}, nil, setup, Options{})
}

// annBeatsBreezy takes the left column while Breezy takes the center and then the lowest free square.
var annBeatsBreezy = []string{"1", "2", "4", "7"}

func TestSession_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a match against the computer and a rematch", func(t *testing.T) {
		// Given: Ann against Breezy to one point, twice
		lines := []string{"Ann", "2", "1", "1", "X", "1"}
		lines = append(lines, annBeatsBreezy...)
		lines = append(lines, "maybe", "y", "1", "O", "1")
		lines = append(lines, annBeatsBreezy...)
		lines = append(lines, "n")

		input := &scriptedInput{lines: lines}
		output := &recordedOutput{}
		session := newTestSession(t, input, output)

		// When: the session runs
		err := session.Run(ctx)

		// Then: Ann wins both matches and the session says goodbye
		require.NoError(t, err)
		assert.Empty(t, input.lines)
		assert.Equal(t, "Welcome to Tic Tac Toe!", output.lines[0])
		assert.Equal(t, "Thanks for playing Tic Tac Toe! Goodbye!", output.lines[len(output.lines)-1])
		assert.Equal(t, 2, output.count("Ann is the grand winner! Congratulations!"))
		assert.Equal(t, 1, output.count("Sorry, must be y or n"))
		assert.Equal(t, 1, output.count("Let's play again!"))
		assert.Equal(t, 2, output.count("Breezy chose square 5."))
		assert.Contains(t, output.lines, "Ann, you're O. Breezy is X.")
		assert.Contains(t, output.text(), "  X  |  O  |  O")
	})

	t.Run("Closed input ends the session with an error", func(t *testing.T) {
		input := &scriptedInput{lines: []string{"Ann", "2", "1", "1", "X", "1", "1"}}
		session := newTestSession(t, input, &recordedOutput{})

		err := session.Run(ctx)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
