package entity

import "time"

// PlayerSnapshot is the public view of a player inside a MatchSnapshot.
type PlayerSnapshot struct {
	Name   string `json:"name"`
	Marker string `json:"marker"`
	Score  int    `json:"score"`
}

// MatchSnapshot is the state of a running match as published to viewers.
type MatchSnapshot struct {
	ID           string            `json:"id"`
	State        string            `json:"state"`
	Round        int               `json:"round"`
	WinningScore int               `json:"winning_score"`
	Board        [BoardSize]string `json:"board"`
	Players      []PlayerSnapshot  `json:"players"`
	Winner       string            `json:"winner,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func NewPlayerSnapshot(player *Player) PlayerSnapshot {
	return PlayerSnapshot{
		Name:   player.Name,
		Marker: player.Marker,
		Score:  player.Score,
	}
}
