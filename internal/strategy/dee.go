package strategy

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Dee only plays defense: it blocks an imminent line and otherwise plays like Breezy.
type Dee struct {
	fallback *Breezy
}

func NewDee(picker picker) *Dee {
	return &Dee{fallback: NewBreezy(picker)}
}

func (that *Dee) ChooseMove(ctx context.Context, board *entity.Board, self, opponent string) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	if position, ok := blockingMove(board, opponent); ok {
		return position, nil
	}

	return that.fallback.ChooseMove(ctx, board, self, opponent)
}
