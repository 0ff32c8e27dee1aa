package floorplan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ko-stant/floorplan-engine/internal/geometry"
)

var namePattern = regexp.MustCompile(`\(([^)]+)\)`)

// NamePos is a parenthesized room-name token found in the plan. Pos is the
// cell of the first character inside the parentheses; that cell anchors the
// name to a region.
type NamePos struct {
	Name string
	Pos  geometry.Point
}

// LocateNames scans the grid row by row for "(name)" tokens. Names are
// trimmed of surrounding whitespace; order is row-major.
func LocateNames(g *geometry.Grid) []NamePos {
	var names []NamePos
	for y := 0; y < g.Height(); y++ {
		line := g.Line(y)
		for _, m := range namePattern.FindAllStringSubmatchIndex(line, -1) {
			name := strings.TrimSpace(line[m[2]:m[3]])
			if name == "" {
				continue
			}
			// m[2] is a byte offset; columns are rune positions.
			col := len([]rune(line[:m[2]]))
			names = append(names, NamePos{Name: name, Pos: geometry.Point{X: col, Y: y}})
		}
	}
	return names
}

// ResolveNames maps each located name to the region its anchor cell belongs
// to. A name anchored on a non-walkable cell is dropped with a warning. Two
// names landing in one region is fatal.
func ResolveNames(g *geometry.Grid, rm geometry.RegionMap, names []NamePos) (map[int]string, []string, error) {
	byRegion := make(map[int]string, len(names))
	var warnings []string
	for _, n := range names {
		id := rm.RegionAt(g, n.Pos.X, n.Pos.Y)
		if id == geometry.Unlabeled {
			warnings = append(warnings, fmt.Sprintf(
				"room name %q at (%d,%d) sits on a non-walkable cell; dropped", n.Name, n.Pos.X, n.Pos.Y))
			continue
		}
		if first, ok := byRegion[id]; ok {
			return nil, warnings, &AmbiguousRoomNameError{RegionID: id, First: first, Second: n.Name}
		}
		byRegion[id] = n.Name
	}
	return byRegion, warnings, nil
}
