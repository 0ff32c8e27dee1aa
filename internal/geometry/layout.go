package geometry

import (
	"strconv"
	"strings"
)

// RoomGridPlan builds a synthetic floor plan with cols x rows rooms, each
// with an interior of cellW x cellH cells, separated by shared walls. When
// named is true every room gets a "(rXcY)" label in its top-left corner.
// Useful for exercising the labelers on plans of known shape.
func RoomGridPlan(cols, rows, cellW, cellH int, named bool) string {
	width := cols*(cellW+1) + 1
	height := rows*(cellH+1) + 1

	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		for x := range canvas[y] {
			switch {
			case y%(cellH+1) == 0 && x%(cellW+1) == 0:
				canvas[y][x] = '+'
			case y%(cellH+1) == 0:
				canvas[y][x] = '-'
			case x%(cellW+1) == 0:
				canvas[y][x] = '|'
			default:
				canvas[y][x] = ' '
			}
		}
	}

	if named {
		for ry := 0; ry < rows; ry++ {
			for rx := 0; rx < cols; rx++ {
				label := []rune("(r" + strconv.Itoa(ry) + "c" + strconv.Itoa(rx) + ")")
				y := ry*(cellH+1) + 1
				x := rx*(cellW+1) + 1
				for i, r := range label {
					if x+i < (rx+1)*(cellW+1) {
						canvas[y][x+i] = r
					}
				}
			}
		}
	}

	var b strings.Builder
	for y, row := range canvas {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
