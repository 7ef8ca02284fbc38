package entity

import "context"

// MoveStrategy picks the next position for the player holding marker self.
type MoveStrategy interface {
	ChooseMove(ctx context.Context, board *Board, self, opponent string) (int, error)
}

type Player struct {
	Name     string
	Marker   string
	Score    int
	Strategy MoveStrategy
}

func NewPlayer(name string, strategy MoveStrategy) *Player {
	return &Player{
		Name:     name,
		Strategy: strategy,
	}
}

func (that *Player) RecordRoundWin() {
	that.Score++
}

func (that *Player) ResetScore() {
	that.Score = 0
}

func (that *Player) String() string {
	return that.Name
}
