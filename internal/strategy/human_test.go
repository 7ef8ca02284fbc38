package strategy

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuman_ChooseMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Reprompts once on out of range input", func(t *testing.T) {
		// Given: the human types "0" and then "5"
		input := &scriptedInput{lines: []string{"0", "5"}}
		output := &recordedOutput{}
		human := NewHuman(discardLogger(), input, output)

		// When: the human chooses a move on an empty board
		position, err := human.ChooseMove(ctx, entity.NewBoard(), markerX, markerO)

		// Then: the engine reprompted once and accepted 5
		require.NoError(t, err)
		assert.Equal(t, 5, position)
		assert.Equal(t, []string{
			"Choose a square (1, 2, 3, 4, 5, 6, 7, 8, or 9):",
			invalidChoiceMessage,
		}, output.lines)
	})

	t.Run("Rejects malformed and occupied squares", func(t *testing.T) {
		// Given: X holds 1 and the human types junk, an occupied square and then 2
		input := &scriptedInput{lines: []string{"abc", "", "1", "10", " 2 "}}
		output := &recordedOutput{}
		human := NewHuman(discardLogger(), input, output)
		board := boardWith(t, []int{1}, nil)

		// When: the human chooses a move
		position, err := human.ChooseMove(ctx, board, markerO, markerX)

		// Then: four rejections were printed before 2 was accepted
		require.NoError(t, err)
		assert.Equal(t, 2, position)
		assert.Len(t, output.lines, 5)
		assert.Equal(t, "Choose a square (2, 3, 4, 5, 6, 7, 8, or 9):", output.lines[0])
	})

	t.Run("Error on closed input", func(t *testing.T) {
		human := NewHuman(discardLogger(), &scriptedInput{}, &recordedOutput{})

		_, err := human.ChooseMove(ctx, entity.NewBoard(), markerX, markerO)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestParsePosition(t *testing.T) {
	board := boardWith(t, []int{5}, nil)

	position, err := ParsePosition("3", board)
	require.NoError(t, err)
	assert.Equal(t, 3, position)

	for _, raw := range []string{"5", "0", "-1", "x", "3.0"} {
		_, err = ParsePosition(raw, board)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput, "input %q", raw)
	}
}
