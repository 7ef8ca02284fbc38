package strategy

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var oppositeCorners = map[int]int{1: 9, 3: 7, 7: 3, 9: 1}

// Minnie plays the classic priority list: win, block, center, opposite corner, corner, side.
type Minnie struct {
	picker picker
}

func NewMinnie(picker picker) *Minnie {
	return &Minnie{picker: picker}
}

func (that *Minnie) ChooseMove(ctx context.Context, board *entity.Board, self, opponent string) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	if position, ok := winningMove(board, self); ok {
		return position, nil
	}

	if position, ok := blockingMove(board, opponent); ok {
		return position, nil
	}

	if board.IsFree(entity.CenterPosition) {
		return entity.CenterPosition, nil
	}

	for _, corner := range entity.Corners {
		opposite := oppositeCorners[corner]
		if board.MarkerAt(corner) == opponent && board.IsFree(opposite) {
			return opposite, nil
		}
	}

	corners := make([]int, 0, len(entity.Corners))
	for _, corner := range entity.Corners {
		if board.IsFree(corner) {
			corners = append(corners, corner)
		}
	}

	if len(corners) > 0 {
		return that.picker.PickOne(corners)
	}

	return randomMove(board, that.picker)
}
