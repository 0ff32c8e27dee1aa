package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/floorplan-engine/internal/floorplan"
)

func TestFormatCounts(t *testing.T) {
	assert.Equal(t, "W: 3, P: 0, S: 1, C: 7", FormatCounts(floorplan.Counts{3, 0, 1, 7}))
}

func TestFormat_TotalOnlyWhenNoNamedRooms(t *testing.T) {
	out := Format(floorplan.Counts{1, 0, 0, 0}, nil)
	assert.Equal(t, "total:\nW: 1, P: 0, S: 0, C: 0", out)
}

func TestFormat_RoomsSortedByName(t *testing.T) {
	out := Format(floorplan.Counts{2, 0, 0, 2}, map[string]floorplan.Counts{
		"zoo": {2, 0, 0, 0},
		"bar": {0, 0, 0, 2},
	})
	expected := strings.Join([]string{
		"total:",
		"W: 2, P: 0, S: 0, C: 2",
		"bar:",
		"W: 0, P: 0, S: 0, C: 2",
		"zoo:",
		"W: 2, P: 0, S: 0, C: 0",
	}, "\n")
	assert.Equal(t, expected, out)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestRender_TwoRoomScenario(t *testing.T) {
	a, err := floorplan.Analyze(`+--------------+--------+
| (living room)|(office)|
|  W W W       | P P    |
+--------------+--------+`, floorplan.Options{})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"total:",
		"W: 3, P: 2, S: 0, C: 0",
		"living room:",
		"W: 3, P: 0, S: 0, C: 0",
		"office:",
		"W: 0, P: 2, S: 0, C: 0",
	}, "\n")
	assert.Equal(t, expected, Render(a))
}
