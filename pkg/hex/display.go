package hex

import (
	"strconv"
	"strings"
)

// String renders a plain-ASCII diagnostic view of the board: a rhombus of
// rows, each shifted right by its row index the way a hex grid is usually
// drawn on a terminal, stones as "B"/"W" and empty cells as "+".
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("  ")
	for x := 0; x < b.Cols; x++ {
		sb.WriteByte(byte('a') + byte(x))
		sb.WriteByte(' ')
	}

	for y := 0; y < b.Rows; y++ {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", y))
		row := strconv.Itoa(y + 1)
		if len(row) < 2 {
			sb.WriteByte(' ')
		}
		sb.WriteString(row)
		sb.WriteByte('\\')
		for x := 0; x < b.Cols; x++ {
			if c, occ := b.Get(Pos{int8(x), int8(y)}); occ {
				sb.WriteString(c.String())
			} else {
				sb.WriteByte('+')
			}
			if x != b.Cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\\')
		sb.WriteString(row)
	}

	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", b.Rows+3))
	for x := 0; x < b.Cols; x++ {
		sb.WriteByte(byte('a') + byte(x))
		sb.WriteByte(' ')
	}

	return sb.String()
}
