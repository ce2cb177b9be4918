package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/solidmesh/types"
)

func TestTriTriIntersectCrossing(t *testing.T) {
	tol := types.DefaultTolerance()

	// Horizontal triangle in z=0 crossed by a vertical triangle.
	a0, a1, a2 := types.Vector{X: -1, Y: -1}, types.Vector{X: 3, Y: -1}, types.Vector{X: -1, Y: 3}
	b0 := types.Vector{X: 0.5, Y: 0.25, Z: -1}
	b1 := types.Vector{X: 0.5, Y: 0.25, Z: 1}
	b2 := types.Vector{X: 0.5, Y: 1.25, Z: 1}

	res := TriTriIntersect(a0, a1, a2, b0, b1, b2, tol)
	require.Len(t, res.Points, 2)
	assert.False(t, res.Coplanar)

	for _, p := range res.Points {
		assert.InDelta(t, 0, p.Position.Z, 1e-12, "intersection lies in the z=0 plane")
		assert.True(t, p.OnA.Inside(1e-9))
		assert.True(t, p.OnB.Inside(1e-9))
		back := p.OnA.Point(a0, a1, a2)
		assert.InDelta(t, p.Position.X, back.X, 1e-9)
		assert.InDelta(t, p.Position.Y, back.Y, 1e-9)
	}
}

func TestTriTriIntersectDisjoint(t *testing.T) {
	tol := types.DefaultTolerance()

	a0, a1, a2 := types.Vector{}, types.Vector{X: 1}, types.Vector{Y: 1}
	b0 := types.Vector{X: 0.2, Y: 0.2, Z: 1}
	b1 := types.Vector{X: 1.2, Y: 0.2, Z: 2}
	b2 := types.Vector{X: 0.2, Y: 1.2, Z: 2}

	res := TriTriIntersect(a0, a1, a2, b0, b1, b2, tol)
	assert.Empty(t, res.Points)
	assert.False(t, res.Coplanar)
}

func TestTriTriIntersectCoplanarIdentical(t *testing.T) {
	tol := types.DefaultTolerance()

	a0, a1, a2 := types.Vector{}, types.Vector{X: 1}, types.Vector{Y: 1}

	// Same triangle with opposite winding, as two touching solids share it.
	res := TriTriIntersect(a0, a1, a2, a0, a2, a1, tol)
	require.True(t, res.Coplanar)
	assert.True(t, res.Identical)
	assert.False(t, res.SameWinding)
	assert.InDelta(t, 0.5, res.OverlapArea, 1e-9)
	assert.Empty(t, res.Points)
}

func TestTriTriIntersectCoplanarDisjoint(t *testing.T) {
	tol := types.DefaultTolerance()

	a0, a1, a2 := types.Vector{}, types.Vector{X: 1}, types.Vector{Y: 1}
	b0, b1, b2 := types.Vector{X: 5}, types.Vector{X: 6}, types.Vector{X: 5, Y: 1}

	res := TriTriIntersect(a0, a1, a2, b0, b1, b2, tol)
	require.True(t, res.Coplanar)
	assert.False(t, res.Identical)
	assert.InDelta(t, 0, res.OverlapArea, 1e-12)
}

func TestTriTriIntersectVertexTouch(t *testing.T) {
	tol := types.DefaultTolerance()

	// B touches A's plane at exactly one vertex inside A.
	a0, a1, a2 := types.Vector{X: -2, Y: -2}, types.Vector{X: 2, Y: -2}, types.Vector{Y: 2}
	b0 := types.Vector{X: 0, Y: 0, Z: 0}
	b1 := types.Vector{X: 0, Y: 1, Z: 1}
	b2 := types.Vector{X: 1, Y: 0, Z: 1}

	res := TriTriIntersect(a0, a1, a2, b0, b1, b2, tol)
	require.Len(t, res.Points, 1)
	assert.InDelta(t, 0, res.Points[0].Position.Norm(), 1e-12)
}
