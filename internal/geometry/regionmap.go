package geometry

// BuildRegionMap partitions the grid's walkable cells into 4-connected
// regions via breadth-first flood fill. Region ids are assigned in
// row-major discovery order, so the labeling is deterministic for a given
// grid. Each cell is visited exactly once; total work is O(width*height).
//
// Adjacency is strictly 4-directional: regions that touch only at a
// corner (a '/' wall between them) stay separate.
func BuildRegionMap(g *Grid) RegionMap {
	w := g.Width()
	h := g.Height()
	total := w * h
	cellRegionIDs := make([]int, total)
	for i := range cellRegionIDs {
		cellRegionIDs[i] = Unlabeled
	}
	walkable := g.WalkableMask()

	regionID := 0
	qx := make([]int, 0, total)
	qy := make([]int, 0, total)

	for y := range h {
		for x := range w {
			idx := y*w + x
			if cellRegionIDs[idx] != Unlabeled || !walkable[idx] {
				continue
			}
			cellRegionIDs[idx] = regionID
			qx = qx[:0]
			qy = qy[:0]
			qx = append(qx, x)
			qy = append(qy, y)

			for len(qx) > 0 {
				cx := qx[0]
				cy := qy[0]
				qx = qx[1:]
				qy = qy[1:]

				if cx > 0 {
					nidx := cy*w + cx - 1
					if walkable[nidx] && cellRegionIDs[nidx] == Unlabeled {
						cellRegionIDs[nidx] = regionID
						qx = append(qx, cx-1)
						qy = append(qy, cy)
					}
				}
				if cx < w-1 {
					nidx := cy*w + cx + 1
					if walkable[nidx] && cellRegionIDs[nidx] == Unlabeled {
						cellRegionIDs[nidx] = regionID
						qx = append(qx, cx+1)
						qy = append(qy, cy)
					}
				}
				if cy > 0 {
					nidx := (cy-1)*w + cx
					if walkable[nidx] && cellRegionIDs[nidx] == Unlabeled {
						cellRegionIDs[nidx] = regionID
						qx = append(qx, cx)
						qy = append(qy, cy-1)
					}
				}
				if cy < h-1 {
					nidx := (cy+1)*w + cx
					if walkable[nidx] && cellRegionIDs[nidx] == Unlabeled {
						cellRegionIDs[nidx] = regionID
						qx = append(qx, cx)
						qy = append(qy, cy+1)
					}
				}
			}
			regionID++
		}
	}

	return RegionMap{CellRegionIDs: cellRegionIDs, RegionsCount: regionID}
}
