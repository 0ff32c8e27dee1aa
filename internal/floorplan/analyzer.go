package floorplan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Ko-stant/floorplan-engine/internal/geometry"
)

// Counts holds per-type chair counts, indexed in the canonical symbol
// order W, P, S, C.
type Counts [len(geometry.ChairSymbols)]int

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	for i, n := range other {
		c[i] += n
	}
}

// ChairIndex returns r's slot in Counts, or -1 if r is not a chair symbol.
func ChairIndex(r rune) int {
	return strings.IndexRune(geometry.ChairSymbols, r)
}

// Options control a single analysis run.
type Options struct {
	// Labeler selects the region-labeling implementation ("bfs" (default)
	// or "graph").
	Labeler string
}

// Analysis is the result of one pipeline run over one plan.
type Analysis struct {
	Grid          *geometry.Grid
	Regions       geometry.RegionMap
	Totals        Counts
	RegionCounts  []Counts
	NamesByRegion map[int]string
	Warnings      []string
}

// RoomCounts returns the per-room counts for named rooms only. Unnamed
// regions contribute to Totals but are omitted here.
func (a *Analysis) RoomCounts() map[string]Counts {
	rooms := make(map[string]Counts, len(a.NamesByRegion))
	for id, name := range a.NamesByRegion {
		rooms[name] = a.RegionCounts[id]
	}
	return rooms
}

// Analyze runs the whole pipeline over raw plan text: grid, walkability,
// region labeling, name resolution, chair aggregation. It is a pure
// function of its input; warnings are collected on the result rather than
// logged. Fatal errors leave no partial result.
func Analyze(text string, opts Options) (*Analysis, error) {
	grid, err := geometry.ParseGrid(text)
	if err != nil {
		if errors.Is(err, geometry.ErrEmptyPlan) {
			return nil, &MalformedInputError{Reason: "plan file contains no rows"}
		}
		return nil, &MalformedInputError{Reason: err.Error()}
	}

	label, err := geometry.LabelerFor(opts.Labeler)
	if err != nil {
		return nil, err
	}
	regions, err := label(grid)
	if err != nil {
		return nil, fmt.Errorf("labeling regions: %w", err)
	}

	names, warnings, err := ResolveNames(grid, regions, LocateNames(grid))
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Grid:          grid,
		Regions:       regions,
		RegionCounts:  make([]Counts, regions.RegionsCount),
		NamesByRegion: names,
		Warnings:      warnings,
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			ci := ChairIndex(grid.At(x, y))
			if ci < 0 {
				continue
			}
			id := regions.RegionAt(grid, x, y)
			if id == geometry.Unlabeled {
				return nil, &ContractViolationError{X: x, Y: y, Symbol: grid.At(x, y)}
			}
			a.RegionCounts[id][ci]++
			a.Totals[ci]++
		}
	}

	for id, counts := range a.RegionCounts {
		if _, named := a.NamesByRegion[id]; named {
			continue
		}
		if counts != (Counts{}) {
			a.Warnings = append(a.Warnings, fmt.Sprintf(
				"region %d holds chairs but has no room name; counted in total only", id))
		}
	}

	return a, nil
}

// AnalyzeFile reads and analyzes a plan file.
func AnalyzeFile(path string, opts Options) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Analyze(string(data), opts)
}
