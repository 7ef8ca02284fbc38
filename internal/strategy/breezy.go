package strategy

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Breezy takes the center when it can and otherwise plays at random.
type Breezy struct {
	picker picker
}

func NewBreezy(picker picker) *Breezy {
	return &Breezy{picker: picker}
}

func (that *Breezy) ChooseMove(ctx context.Context, board *entity.Board, _, _ string) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	if board.IsFree(entity.CenterPosition) {
		return entity.CenterPosition, nil
	}

	return randomMove(board, that.picker)
}
