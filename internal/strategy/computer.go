package strategy

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Difficult
	Impossible
)

var Difficulties = []Difficulty{Easy, Medium, Difficult, Impossible}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Difficult:
		return "Difficult"
	case Impossible:
		return "Impossible"
	default:
		return "Unknown"
	}
}

type picker interface {
	PickOne(candidates []int) (int, error)
}

// NewComputer - returns the computer player for a difficulty level.
func NewComputer(difficulty Difficulty, picker picker) (*entity.Player, error) {
	switch difficulty {
	case Easy:
		return entity.NewPlayer("Breezy", NewBreezy(picker)), nil
	case Medium:
		return entity.NewPlayer("Dee", NewDee(picker)), nil
	case Difficult:
		return entity.NewPlayer("Otto", NewOtto(picker)), nil
	case Impossible:
		return entity.NewPlayer("Minnie", NewMinnie(picker)), nil
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %d", apperror.ErrInvalidSettings, difficulty)
	}
}

// completingPosition - finds the free square that would give marker three in a line.
// Lines are checked in catalog order so the answer is deterministic.
func completingPosition(board *entity.Board, marker string) (int, bool) {
	for _, line := range entity.WinningLines {
		owned, free := 0, 0
		for _, position := range line {
			switch board.MarkerAt(position) {
			case marker:
				owned++
			case entity.NoMarker:
				free = position
			}
		}

		if owned == 2 && free != 0 {
			return free, true
		}
	}

	return 0, false
}

func winningMove(board *entity.Board, self string) (int, bool) {
	return completingPosition(board, self)
}

func blockingMove(board *entity.Board, opponent string) (int, bool) {
	return completingPosition(board, opponent)
}

func randomMove(board *entity.Board, picker picker) (int, error) {
	position, err := picker.PickOne(board.FreePositions())
	if err != nil {
		return 0, fmt.Errorf("failed to pick a free square: %w", err)
	}

	return position, nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("move cancelled: %w", err)
	}

	return nil
}
