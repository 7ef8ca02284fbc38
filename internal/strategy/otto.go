package strategy

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Otto finishes its own line first, then blocks, then plays like Breezy.
type Otto struct {
	fallback *Breezy
}

func NewOtto(picker picker) *Otto {
	return &Otto{fallback: NewBreezy(picker)}
}

func (that *Otto) ChooseMove(ctx context.Context, board *entity.Board, self, opponent string) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	if position, ok := winningMove(board, self); ok {
		return position, nil
	}

	if position, ok := blockingMove(board, opponent); ok {
		return position, nil
	}

	return that.fallback.ChooseMove(ctx, board, self, opponent)
}
