package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_Score(t *testing.T) {
	// Given: a new player
	player := NewPlayer("Breezy", nil)
	assert.Equal(t, 0, player.Score)

	// When: the player wins two rounds
	player.RecordRoundWin()
	player.RecordRoundWin()

	// Then: the score is 2
	assert.Equal(t, 2, player.Score)

	// When: the score is reset
	player.ResetScore()

	// Then: it is back to zero
	assert.Equal(t, 0, player.Score)
	assert.Equal(t, "Breezy", player.String())
}
