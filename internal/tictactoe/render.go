package tictactoe

import (
	"fmt"
	"strings"
)

const rowDivider = "-----+-----+-----"

func (that *Match) displayBoard() {
	first, second := that.players[0], that.players[1]

	that.output.WriteLine(fmt.Sprintf("%s, you're %s. %s is %s.", first.Name, first.Marker, second.Name, second.Marker))
	that.output.WriteLine("")

	for _, line := range RenderBoard(that.board.Rows()) {
		that.output.WriteLine(line)
	}

	that.output.WriteLine("")
}

func (that *Match) displayScore() {
	that.output.WriteLine("Current Score")
	for _, player := range that.players {
		that.output.WriteLine(fmt.Sprintf("%s: %d", player.Name, player.Score))
	}
}

// RenderBoard - draws rendered cells as a 3x3 ASCII grid.
func RenderBoard(rows [3][3]string) []string {
	lines := make([]string, 0, 11)
	for i, row := range rows {
		if i > 0 {
			lines = append(lines, rowDivider)
		}

		lines = append(lines,
			"     |     |",
			"  "+strings.Join(row[:], "  |  "),
			"     |     |",
		)
	}

	return lines
}
