package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorAlgebra(t *testing.T) {
	a := Vector{X: 1, Y: 2, Z: 3}
	b := Vector{X: -4, Y: 0.5, Z: 2}

	assert.Equal(t, Vector{X: -3, Y: 2.5, Z: 5}, a.Add(b))
	assert.Equal(t, Vector{X: 5, Y: 1.5, Z: 1}, a.Sub(b))
	assert.Equal(t, Vector{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 1*-4+2*0.5+3*2, a.Dot(b), 1e-15)
}

func TestVectorCross(t *testing.T) {
	x := Vector{X: 1}
	y := Vector{Y: 1}
	require.Equal(t, Vector{Z: 1}, x.Cross(y))
	require.Equal(t, Vector{Z: -1}, y.Cross(x))

	// Cross of parallel vectors vanishes.
	assert.Equal(t, Vector{}, x.Cross(x.Scale(3)))
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	n := v.Normalize()
	assert.InDelta(t, 1, n.Norm(), 1e-15)
	assert.InDelta(t, 0.6, n.X, 1e-15)
	assert.InDelta(t, 0.8, n.Y, 1e-15)

	// Zero vector stays zero.
	assert.Equal(t, Vector{}, Vector{}.Normalize())
}

func TestVectorIsFinite(t *testing.T) {
	assert.True(t, Vector{X: 1, Y: 2, Z: 3}.IsFinite())
	assert.False(t, Vector{X: math.NaN()}.IsFinite())
	assert.False(t, Vector{Z: math.Inf(1)}.IsFinite())
}

func TestVectorDistance(t *testing.T) {
	a := Vector{X: 1, Y: 1, Z: 1}
	b := Vector{X: 4, Y: 5, Z: 1}
	assert.InDelta(t, 5, a.Distance(b), 1e-15)
	assert.InDelta(t, 25, a.Distance2(b), 1e-15)
}
