// Package report renders chair-count results in the fixed textual layout
// consumed by downstream tooling. The layout is part of the external
// contract: total block first, then one two-line block per named room,
// rooms sorted ascending by name, chair types always in W, P, S, C order.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Ko-stant/floorplan-engine/internal/floorplan"
	"github.com/Ko-stant/floorplan-engine/internal/geometry"
)

// FormatCounts renders one counts line, e.g. "W: 3, P: 0, S: 1, C: 0".
func FormatCounts(c floorplan.Counts) string {
	parts := make([]string, 0, len(c))
	for i, n := range c {
		parts = append(parts, fmt.Sprintf("%c: %d", geometry.ChairSymbols[i], n))
	}
	return strings.Join(parts, ", ")
}

// Format renders the full report. No trailing newline beyond the final
// counts line.
func Format(totals floorplan.Counts, rooms map[string]floorplan.Counts) string {
	names := make([]string, 0, len(rooms))
	for name := range rooms {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("total:\n")
	b.WriteString(FormatCounts(totals))
	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(name)
		b.WriteString(":\n")
		b.WriteString(FormatCounts(rooms[name]))
	}
	return b.String()
}

// Render formats a finished analysis.
func Render(a *floorplan.Analysis) string {
	return Format(a.Totals, a.RoomCounts())
}
