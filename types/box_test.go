package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxFromPoints(t *testing.T) {
	box := BoxFromPoints(
		Vector{X: 1, Y: -2, Z: 3},
		Vector{X: -1, Y: 4, Z: 0},
		Vector{X: 0, Y: 0, Z: 5},
	)
	assert.Equal(t, Vector{X: -1, Y: -2, Z: 0}, box.Min)
	assert.Equal(t, Vector{X: 1, Y: 4, Z: 5}, box.Max)
}

func TestBoxContainsAndIntersects(t *testing.T) {
	box := Box{Min: Vector{}, Max: Vector{X: 1, Y: 1, Z: 1}}

	assert.True(t, box.Contains(Vector{X: 0.5, Y: 0.5, Z: 0.5}))
	assert.True(t, box.Contains(Vector{X: 1, Y: 1, Z: 1}))
	assert.False(t, box.Contains(Vector{X: 1.001, Y: 0.5, Z: 0.5}))

	other := Box{Min: Vector{X: 1, Y: 1, Z: 1}, Max: Vector{X: 2, Y: 2, Z: 2}}
	assert.True(t, box.Intersects(other), "touching boxes intersect")

	far := Box{Min: Vector{X: 5, Y: 5, Z: 5}, Max: Vector{X: 6, Y: 6, Z: 6}}
	assert.False(t, box.Intersects(far))
}

func TestBoxExpandedAndUnion(t *testing.T) {
	box := Box{Min: Vector{}, Max: Vector{X: 1, Y: 1, Z: 1}}
	grown := box.Expanded(0.5)
	assert.Equal(t, Vector{X: -0.5, Y: -0.5, Z: -0.5}, grown.Min)
	assert.Equal(t, Vector{X: 1.5, Y: 1.5, Z: 1.5}, grown.Max)

	u := box.Union(Box{Min: Vector{X: 2, Y: 0, Z: 0}, Max: Vector{X: 3, Y: 1, Z: 1}})
	assert.Equal(t, 3.0, u.Max.X)
	assert.Equal(t, 0.0, u.Min.X)
}

func TestBoxLongestAxis(t *testing.T) {
	assert.Equal(t, 0, Box{Max: Vector{X: 3, Y: 1, Z: 2}}.LongestAxis())
	assert.Equal(t, 1, Box{Max: Vector{X: 1, Y: 3, Z: 2}}.LongestAxis())
	assert.Equal(t, 2, Box{Max: Vector{X: 1, Y: 2, Z: 3}}.LongestAxis())
}

func TestBoxSurfaceArea(t *testing.T) {
	box := Box{Max: Vector{X: 1, Y: 2, Z: 3}}
	assert.InDelta(t, 22, box.SurfaceArea(), 1e-15)
}
