package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize      = 9
	CenterPosition = 5
)

var (
	// WinningLines is scanned in this order: rows, columns, diagonals.
	WinningLines = [8][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
		{1, 5, 9},
		{3, 5, 7},
	}

	Corners = [4]int{1, 3, 7, 9}
)

// Board is a 3x3 grid addressed by positions 1..9, row-major.
type Board struct {
	squares [BoardSize]Square
}

func NewBoard() *Board {
	return &Board{}
}

func IsValidPosition(position int) bool {
	return position >= 1 && position <= BoardSize
}

// Place - marks the square at position. Out-of-range ids and marked squares are illegal.
func (that *Board) Place(position int, marker string) error {
	if !IsValidPosition(position) {
		return fmt.Errorf("%w: position %d is out of range", apperror.ErrIllegalMove, position)
	}

	if err := that.squares[position-1].Mark(marker); err != nil {
		return fmt.Errorf("%w: position %d: %w", apperror.ErrIllegalMove, position, err)
	}

	return nil
}

// FreePositions - returns unmarked positions in ascending order.
func (that *Board) FreePositions() []int {
	free := make([]int, 0, BoardSize)
	for i := range that.squares {
		if !that.squares[i].IsMarked() {
			free = append(free, i+1)
		}
	}

	return free
}

// MarkedPositions - returns marked positions in ascending order.
func (that *Board) MarkedPositions() []int {
	marked := make([]int, 0, BoardSize)
	for i := range that.squares {
		if that.squares[i].IsMarked() {
			marked = append(marked, i+1)
		}
	}

	return marked
}

func (that *Board) IsFree(position int) bool {
	return IsValidPosition(position) && !that.squares[position-1].IsMarked()
}

func (that *Board) IsFull() bool {
	return len(that.FreePositions()) == 0
}

// MarkerAt - returns the marker at position, or NoMarker for empty or invalid positions.
func (that *Board) MarkerAt(position int) string {
	if !IsValidPosition(position) {
		return NoMarker
	}

	return that.squares[position-1].Marker()
}

// WinningMarker - returns the marker of the first completed line, or NoMarker.
func (that *Board) WinningMarker() string {
	for _, line := range WinningLines {
		a, b, c := that.MarkerAt(line[0]), that.MarkerAt(line[1]), that.MarkerAt(line[2])
		if a != NoMarker && a == b && b == c {
			return a
		}
	}

	return NoMarker
}

func (that *Board) HasWinner() bool {
	return that.WinningMarker() != NoMarker
}

func (that *Board) Reset() {
	for i := range that.squares {
		that.squares[i].clear()
	}
}

// Rows - returns rendered cells grouped by row.
func (that *Board) Rows() [3][3]string {
	var rows [3][3]string
	for i := range that.squares {
		rows[i/3][i%3] = that.squares[i].Render()
	}

	return rows
}

func (that *Board) Snapshot() [BoardSize]string {
	var cells [BoardSize]string
	for i := range that.squares {
		cells[i] = that.squares[i].Marker()
	}

	return cells
}
