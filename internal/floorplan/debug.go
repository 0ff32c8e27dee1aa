package floorplan

import (
	"strconv"
	"strings"

	"github.com/Ko-stant/floorplan-engine/internal/geometry"
)

// DebugDump renders the intermediate pipeline stages (walkable mask and
// labeled regions) as text, for troubleshooting plans whose report looks
// off. Walls render as '.' in the region dump.
func DebugDump(a *Analysis) string {
	var b strings.Builder
	b.WriteString("Walkable areas (1 = walkable, 0 = wall):\n")
	mask := a.Grid.WalkableMask()
	w := a.Grid.Width()
	for y := 0; y < a.Grid.Height(); y++ {
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nLabeled regions:\n")
	for y := 0; y < a.Grid.Height(); y++ {
		for x := 0; x < w; x++ {
			id := a.Regions.CellRegionIDs[y*w+x]
			if id == geometry.Unlabeled {
				b.WriteByte('.')
			} else {
				b.WriteString(strconv.Itoa(id))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
