// Package random provides the randomness source used by computer players.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Picker chooses uniformly among candidates with a seeded generator.
type Picker struct {
	rnd *rand.Rand
}

func New(seed int64) *Picker {
	return &Picker{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // game moves, not secrets
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// PickOne - returns one of candidates. A singleton is returned without consuming randomness.
func (that *Picker) PickOne(candidates []int) (int, error) {
	switch len(candidates) {
	case 0:
		return 0, apperror.ErrEmptyChoice
	case 1:
		return candidates[0], nil
	default:
		return candidates[that.rnd.Intn(len(candidates))], nil
	}
}
