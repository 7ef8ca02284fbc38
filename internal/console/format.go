package console

import (
	"strconv"
	"strings"
)

// JoinOr - formats items as "1, 2, or 3", using word before the last item.
func JoinOr(items []string, punct, word string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + word + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], punct) + punct + word + " " + items[len(items)-1]
	}
}

func JoinPositions(positions []int) string {
	items := make([]string, 0, len(positions))
	for _, position := range positions {
		items = append(items, strconv.Itoa(position))
	}

	return JoinOr(items, ", ", "or")
}
