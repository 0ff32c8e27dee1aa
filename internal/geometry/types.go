package geometry

// WallSymbols are the characters that block movement between cells.
const WallSymbols = "+-|/"

// ChairSymbols lists the recognized chair types in canonical report order:
// W wooden, P plastic, S sofa, C china.
const ChairSymbols = "WPSC"

// Filler pads short rows so the grid stays rectangular. Padded cells read
// as plain space but are classified non-walkable, so ragged input never
// creates spurious walkable cells.
const Filler = ' '

type Point struct {
	X int
	Y int
}

// Grid is a rectangular character grid of a floor plan. Immutable after
// load. rowLens remembers each row's pre-padding length so padding can be
// told apart from genuine blank space.
type Grid struct {
	cells   [][]rune
	rowLens []int
	width   int
	height  int
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the character at (x, y). Out-of-bounds positions read as Filler.
func (g *Grid) At(x, y int) rune {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Filler
	}
	return g.cells[y][x]
}

// Line returns row y as a string.
func (g *Grid) Line(y int) string {
	return string(g.cells[y])
}

// RegionMap assigns every walkable cell a region id. CellRegionIDs is
// row-major; non-walkable cells hold Unlabeled.
type RegionMap struct {
	CellRegionIDs []int
	RegionsCount  int
}

// Unlabeled marks cells that belong to no region (walls).
const Unlabeled = -1

// RegionAt returns the region id at (x, y), or Unlabeled for walls and
// out-of-bounds positions.
func (rm RegionMap) RegionAt(g *Grid, x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Unlabeled
	}
	return rm.CellRegionIDs[y*g.width+x]
}
