package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugDump(t *testing.T) {
	a, err := Analyze("+-+\n|W|\n+-+", Options{})
	require.NoError(t, err)

	dump := DebugDump(a)
	assert.Contains(t, dump, "Walkable areas (1 = walkable, 0 = wall):\n000\n010\n000\n")
	assert.Contains(t, dump, "Labeled regions:\n...\n.0.\n...\n")
}
