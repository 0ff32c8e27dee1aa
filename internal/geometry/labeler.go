package geometry

import "fmt"

// Labeler produces a RegionMap for a grid. Both implementations honor the
// same contract; the BFS one is the default.
type Labeler func(*Grid) (RegionMap, error)

const (
	LabelerBFS   = "bfs"
	LabelerGraph = "graph"
)

// LabelerFor resolves a labeler by name.
func LabelerFor(name string) (Labeler, error) {
	switch name {
	case "", LabelerBFS:
		return func(g *Grid) (RegionMap, error) {
			return BuildRegionMap(g), nil
		}, nil
	case LabelerGraph:
		return BuildRegionMapGraph, nil
	default:
		return nil, fmt.Errorf("unknown labeler %q (want %q or %q)", name, LabelerBFS, LabelerGraph)
	}
}
