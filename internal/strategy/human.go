package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const invalidChoiceMessage = "Sorry, that's not a valid choice."

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineWriter interface {
	WriteLine(line string)
}

// Human asks the person at the console for a square.
type Human struct {
	logger *slog.Logger
	input  lineReader
	output lineWriter
}

func NewHuman(logger *slog.Logger, input lineReader, output lineWriter) *Human {
	return &Human{
		logger: logger.With("component", "human"),
		input:  input,
		output: output,
	}
}

func (that *Human) IsInteractive() bool {
	return true
}

// ChooseMove - prompts until a free position is entered.
func (that *Human) ChooseMove(ctx context.Context, board *entity.Board, _, _ string) (int, error) {
	log := that.logger.With("method", "ChooseMove")

	that.output.WriteLine(fmt.Sprintf("Choose a square (%s):", console.JoinPositions(board.FreePositions())))

	for {
		line, err := that.input.ReadLine(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		position, err := ParsePosition(line, board)
		if err == nil {
			return position, nil
		}

		log.Debug("rejected move", "input", line, "error", err)
		that.output.WriteLine(invalidChoiceMessage)
	}
}

// ParsePosition - converts raw input into a free board position.
func ParsePosition(raw string, board *entity.Board) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, raw)
	}

	if !board.IsFree(position) {
		return 0, fmt.Errorf("%w: square %d is not available", apperror.ErrInvalidInput, position)
	}

	return position, nil
}
