package geometry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/gridgraph"
)

// BuildRegionMapGraph is an alternate labeler built on lvlath's grid-graph
// connected components. It satisfies the same contract as BuildRegionMap:
// 4-connected walkable regions, ids in row-major first-encounter order.
// Component order coming back from the library is not specified, so
// components are renumbered by their smallest row-major cell index.
func BuildRegionMapGraph(g *Grid) (RegionMap, error) {
	w := g.Width()
	h := g.Height()

	mask := g.WalkableMask()
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				cells[y][x] = 1
			}
		}
	}

	gg, err := gridgraph.NewGridGraph(cells, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn4})
	if err != nil {
		return RegionMap{}, fmt.Errorf("building grid graph: %w", err)
	}

	comps := gg.ConnectedComponents()
	type component struct {
		minIdx int
		cells  []int
	}
	ordered := make([]component, 0, len(comps))
	for _, valueComps := range comps {
		for _, comp := range valueComps {
			if len(comp) == 0 {
				continue
			}
			c := component{minIdx: w * h, cells: make([]int, 0, len(comp))}
			for _, node := range comp {
				idx := node.Y*w + node.X
				c.cells = append(c.cells, idx)
				if idx < c.minIdx {
					c.minIdx = idx
				}
			}
			ordered = append(ordered, c)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].minIdx < ordered[j].minIdx })

	cellRegionIDs := make([]int, w*h)
	for i := range cellRegionIDs {
		cellRegionIDs[i] = Unlabeled
	}
	for id, comp := range ordered {
		for _, idx := range comp.cells {
			cellRegionIDs[idx] = id
		}
	}

	return RegionMap{CellRegionIDs: cellRegionIDs, RegionsCount: len(ordered)}, nil
}
