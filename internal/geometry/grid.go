package geometry

import (
	"fmt"
	"os"
	"strings"
)

// ErrEmptyPlan reports input that contains no plan rows at all.
var ErrEmptyPlan = fmt.Errorf("plan is empty")

// ParseGrid turns raw floor-plan text into a rectangular Grid. Rows are
// right-padded with Filler to the width of the longest row. Carriage
// returns are stripped so CRLF input parses the same as LF input.
func ParseGrid(text string) (*Grid, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("malformed input: %w", ErrEmptyPlan)
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := 0
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
		if n := len([]rune(lines[i])); n > width {
			width = n
		}
	}

	cells := make([][]rune, len(lines))
	rowLens := make([]int, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		row := make([]rune, width)
		copy(row, runes)
		for j := len(runes); j < width; j++ {
			row[j] = Filler
		}
		cells[i] = row
		rowLens[i] = len(runes)
	}

	return &Grid{cells: cells, rowLens: rowLens, width: width, height: len(cells)}, nil
}

// LoadGridFromFile reads a floor-plan file and parses it into a Grid.
func LoadGridFromFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	grid, err := ParseGrid(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}
	return grid, nil
}

// IsWall reports whether r is one of the wall symbols.
func IsWall(r rune) bool {
	return strings.ContainsRune(WallSymbols, r)
}

// Walkable reports whether a cell holding r can be entered. Room-name
// characters, chair symbols, and blank space are all walkable.
func Walkable(r rune) bool {
	return !IsWall(r)
}

// WalkableMask derives the row-major walkability mask for the grid.
// Padding cells beyond a row's original length are non-walkable.
func (g *Grid) WalkableMask() []bool {
	mask := make([]bool, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			mask[y*g.width+x] = x < g.rowLens[y] && Walkable(g.cells[y][x])
		}
	}
	return mask
}
