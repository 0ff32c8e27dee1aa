package geometry

import "testing"

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return g
}

func TestBuildRegionMap_SplitsRoomsByWalls(t *testing.T) {
	g := mustParse(t, `+---+---+
|   |   |
|   |   |
+---+---+`)
	rm := BuildRegionMap(g)
	if rm.RegionsCount != 2 {
		t.Fatalf("expected 2 regions, got %d", rm.RegionsCount)
	}
	left := rm.RegionAt(g, 1, 1)
	right := rm.RegionAt(g, 5, 1)
	if left == right {
		t.Fatalf("left and right rooms share region %d", left)
	}
	if rm.RegionAt(g, 2, 2) != left {
		t.Fatalf("left room not connected: %d vs %d", rm.RegionAt(g, 2, 2), left)
	}
}

func TestBuildRegionMap_NoInteriorWallsYieldsSingleRegion(t *testing.T) {
	g := mustParse(t, `+-----+
|     |
|     |
+-----+`)
	rm := BuildRegionMap(g)
	if rm.RegionsCount != 1 {
		t.Fatalf("expected a single region, got %d", rm.RegionsCount)
	}
}

func TestBuildRegionMap_DiagonalWallKeepsCornerRoomsApart(t *testing.T) {
	// a and b touch only at a corner; the '/' cells must keep them apart.
	g := mustParse(t, `+--+
| /|
|/ |
+--+`)
	rm := BuildRegionMap(g)
	a := rm.RegionAt(g, 1, 1)
	b := rm.RegionAt(g, 2, 2)
	if a == Unlabeled || b == Unlabeled {
		t.Fatalf("corner cells unlabeled: a=%d b=%d", a, b)
	}
	if a == b {
		t.Fatalf("diagonally touching cells merged into region %d", a)
	}
}

func TestBuildRegionMap_IsolatedPocketGetsOwnRegion(t *testing.T) {
	g := mustParse(t, `+---+-+
|   | |
|   +-+
|     |
+-----+`)
	rm := BuildRegionMap(g)
	pocket := rm.RegionAt(g, 5, 1)
	main := rm.RegionAt(g, 1, 1)
	if pocket == Unlabeled {
		t.Fatal("pocket cell unlabeled")
	}
	if pocket == main {
		t.Fatal("walled-off pocket merged with main room")
	}
}

func TestBuildRegionMap_WallsStayUnlabeled(t *testing.T) {
	g := mustParse(t, DevPlan())
	rm := BuildRegionMap(g)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			id := rm.RegionAt(g, x, y)
			if IsWall(g.At(x, y)) {
				if id != Unlabeled {
					t.Fatalf("wall at (%d,%d) labeled %d", x, y, id)
				}
			} else if id == Unlabeled {
				t.Fatalf("walkable cell at (%d,%d) unlabeled", x, y)
			}
		}
	}
}

func TestBuildRegionMap_Deterministic(t *testing.T) {
	g := mustParse(t, RoomGridPlan(3, 2, 9, 3, true))
	first := BuildRegionMap(g)
	second := BuildRegionMap(g)
	if first.RegionsCount != second.RegionsCount {
		t.Fatalf("region counts differ: %d vs %d", first.RegionsCount, second.RegionsCount)
	}
	for i := range first.CellRegionIDs {
		if first.CellRegionIDs[i] != second.CellRegionIDs[i] {
			t.Fatalf("cell %d labeled %d then %d", i, first.CellRegionIDs[i], second.CellRegionIDs[i])
		}
	}
}

func TestBuildRegionMapGraph_MatchesBFSPartition(t *testing.T) {
	for _, text := range []string{
		DevPlan(),
		RoomGridPlan(3, 3, 9, 3, false),
		RoomGridPlan(1, 1, 9, 3, true),
	} {
		g := mustParse(t, text)
		bfs := BuildRegionMap(g)
		graph, err := BuildRegionMapGraph(g)
		if err != nil {
			t.Fatalf("graph labeler failed: %v", err)
		}
		if bfs.RegionsCount != graph.RegionsCount {
			t.Fatalf("region counts differ: bfs=%d graph=%d", bfs.RegionsCount, graph.RegionsCount)
		}
		// The partitions must be isomorphic: cells share a bfs id iff they
		// share a graph id.
		bfsToGraph := make(map[int]int)
		graphToBFS := make(map[int]int)
		for i := range bfs.CellRegionIDs {
			b := bfs.CellRegionIDs[i]
			gr := graph.CellRegionIDs[i]
			if (b == Unlabeled) != (gr == Unlabeled) {
				t.Fatalf("cell %d: bfs=%d graph=%d", i, b, gr)
			}
			if b == Unlabeled {
				continue
			}
			if prev, ok := bfsToGraph[b]; ok && prev != gr {
				t.Fatalf("bfs region %d maps to graph regions %d and %d", b, prev, gr)
			}
			if prev, ok := graphToBFS[gr]; ok && prev != b {
				t.Fatalf("graph region %d maps to bfs regions %d and %d", gr, prev, b)
			}
			bfsToGraph[b] = gr
			graphToBFS[gr] = b
		}
	}
}
