package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/floorplan-engine/internal/geometry"
)

func parseGrid(t *testing.T, text string) *geometry.Grid {
	t.Helper()
	g, err := geometry.ParseGrid(text)
	require.NoError(t, err)
	return g
}

func TestLocateNames_FindsTokensWithSpaces(t *testing.T) {
	g := parseGrid(t, `+----------------+
| (living room)  |
|      (office)  |
+----------------+`)
	names := LocateNames(g)
	require.Len(t, names, 2)
	assert.Equal(t, "living room", names[0].Name)
	assert.Equal(t, geometry.Point{X: 3, Y: 1}, names[0].Pos)
	assert.Equal(t, "office", names[1].Name)
	assert.Equal(t, geometry.Point{X: 8, Y: 2}, names[1].Pos)
}

func TestLocateNames_TrimsWhitespace(t *testing.T) {
	g := parseGrid(t, "(  den  )")
	names := LocateNames(g)
	require.Len(t, names, 1)
	assert.Equal(t, "den", names[0].Name)
}

func TestLocateNames_IgnoresUnclosedParens(t *testing.T) {
	g := parseGrid(t, "( nothing here")
	assert.Empty(t, LocateNames(g))
}

func TestResolveNames_AmbiguousNamesAreFatal(t *testing.T) {
	g := parseGrid(t, `+---------------+
| (alpha) (beta)|
+---------------+`)
	rm := geometry.BuildRegionMap(g)
	_, _, err := ResolveNames(g, rm, LocateNames(g))
	var ambiguous *AmbiguousRoomNameError
	require.ErrorAs(t, err, &ambiguous)
	// First-seen (row-major) is the documented winner.
	assert.Equal(t, "alpha", ambiguous.First)
	assert.Equal(t, "beta", ambiguous.Second)
}

func TestResolveNames_AnchorOnWallIsDroppedWithWarning(t *testing.T) {
	// The name's first interior character lands on a wall character.
	g := parseGrid(t, "(|bad)")
	rm := geometry.BuildRegionMap(g)
	names, warnings, err := ResolveNames(g, rm, LocateNames(g))
	require.NoError(t, err)
	assert.Empty(t, names)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "non-walkable")
}
