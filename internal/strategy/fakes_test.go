package strategy

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/require"
)

const (
	markerX = "X"
	markerO = "O"
)

type scriptedInput struct {
	lines []string
}

func (that *scriptedInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(that.lines) == 0 {
		return "", apperror.ErrInputClosed
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

type recordedOutput struct {
	lines []string
}

func (that *recordedOutput) WriteLine(line string) {
	that.lines = append(that.lines, line)
}

// firstPicker always returns the first candidate and remembers what it was offered.
type firstPicker struct {
	offered [][]int
}

func (that *firstPicker) PickOne(candidates []int) (int, error) {
	that.offered = append(that.offered, candidates)
	if len(candidates) == 0 {
		return 0, apperror.ErrEmptyChoice
	}

	return candidates[0], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func boardWith(t *testing.T, xs, os []int) *entity.Board {
	t.Helper()

	board := entity.NewBoard()
	for _, position := range xs {
		require.NoError(t, board.Place(position, markerX))
	}
	for _, position := range os {
		require.NoError(t, board.Place(position, markerO))
	}

	return board
}
