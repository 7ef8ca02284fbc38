package tictactoe

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
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

func (that *recordedOutput) count(line string) int {
	total := 0
	for _, written := range that.lines {
		if written == line {
			total++
		}
	}

	return total
}

func (that *recordedOutput) text() string {
	return strings.Join(that.lines, "\n")
}

// firstPicker always returns the first candidate.
type firstPicker struct{}

func (firstPicker) PickOne(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, apperror.ErrEmptyChoice
	}

	return candidates[0], nil
}

// scriptedMoves plays the queued positions in order, whatever the board looks like.
type scriptedMoves struct {
	positions []int
}

func (that *scriptedMoves) ChooseMove(ctx context.Context, _ *entity.Board, _, _ string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if len(that.positions) == 0 {
		return 0, apperror.ErrEmptyChoice
	}

	position := that.positions[0]
	that.positions = that.positions[1:]

	return position, nil
}

// stalling never answers before the context is done.
type stalling struct{}

func (stalling) ChooseMove(ctx context.Context, _ *entity.Board, _, _ string) (int, error) {
	<-ctx.Done()

	return 0, ctx.Err()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scriptedPlayer(name, marker string, positions ...int) *entity.Player {
	player := entity.NewPlayer(name, &scriptedMoves{positions: positions})
	player.Marker = marker

	return player
}

// repeat returns the positions repeated times times.
func repeat(times int, positions ...int) []int {
	moves := make([]int, 0, times*len(positions))
	for i := 0; i < times; i++ {
		moves = append(moves, positions...)
	}

	return moves
}
