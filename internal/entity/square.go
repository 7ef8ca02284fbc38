package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	NoMarker    = ""
	blankSquare = " "
)

// Square is a single cell of the board.
type Square struct {
	marker string
}

// Mark - puts a marker on an empty square.
func (that *Square) Mark(marker string) error {
	if strings.TrimSpace(marker) == "" {
		return fmt.Errorf("%w: blank marker", apperror.ErrIllegalMove)
	}

	if that.IsMarked() {
		return fmt.Errorf("%w: holds %q", apperror.ErrAlreadyMarked, that.marker)
	}

	that.marker = marker

	return nil
}

func (that *Square) IsMarked() bool {
	return that.marker != NoMarker
}

func (that *Square) Marker() string {
	return that.marker
}

// Render - returns the marker or a blank placeholder.
func (that *Square) Render() string {
	if !that.IsMarked() {
		return blankSquare
	}

	return that.marker
}

func (that *Square) clear() {
	that.marker = NoMarker
}
