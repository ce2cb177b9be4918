package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/solidmesh/types"
)

// tetraTriangles is a closed tetrahedron over vertex ids 0..3.
var tetraTriangles = []types.Triangle{
	{0, 2, 1},
	{0, 1, 3},
	{1, 2, 3},
	{0, 3, 2},
}

func TestValidateManifoldClosed(t *testing.T) {
	require.NoError(t, ValidateManifold(tetraTriangles))

	counts := EdgeUseCounts(tetraTriangles)
	assert.Len(t, counts, 6)
	hist := EdgeUseHistogram(counts)
	assert.Equal(t, map[int]int{2: 6}, hist)
	assert.Empty(t, NonManifoldEdges(counts))
}

func TestValidateManifoldOpen(t *testing.T) {
	open := tetraTriangles[:3]
	err := ValidateManifold(open)
	require.Error(t, err)

	counts := EdgeUseCounts(open)
	bad := NonManifoldEdges(counts)
	assert.Len(t, bad, 3, "removing one face leaves its three boundary edges single-use")
	for _, e := range bad {
		assert.Equal(t, 1, counts[e])
	}
}

func TestNonManifoldEdgesSorted(t *testing.T) {
	tris := []types.Triangle{
		{5, 6, 7},
		{0, 1, 2},
	}
	bad := NonManifoldEdges(EdgeUseCounts(tris))
	require.NotEmpty(t, bad)
	for i := 1; i < len(bad); i++ {
		prev, cur := bad[i-1], bad[i]
		less := prev.V1() < cur.V1() || (prev.V1() == cur.V1() && prev.V2() < cur.V2())
		assert.True(t, less, "edges must be sorted: %v before %v", prev, cur)
	}
}
