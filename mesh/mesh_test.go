package mesh

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/solidmesh/types"
)

// tetrahedron returns the four faces of a tetrahedron with outward
// winding, as a raw triangle soup.
func tetrahedron(origin types.Vector, size float64) [][3]types.Vector {
	o := origin
	x := origin.Add(types.Vector{X: size})
	y := origin.Add(types.Vector{Y: size})
	z := origin.Add(types.Vector{Z: size})
	return [][3]types.Vector{
		{o, y, x},
		{o, x, z},
		{o, z, y},
		{x, y, z},
	}
}

func TestFromTrianglesWeldsSharedCorners(t *testing.T) {
	m, err := FromTriangles(tetrahedron(types.Vector{}, 1))
	require.NoError(t, err)

	assert.Equal(t, 4, m.NumVertices(), "tetra corners weld to four vertices")
	assert.Equal(t, 4, m.NumTriangles())
	require.NoError(t, m.Validate())
	assert.True(t, m.IsClosed())
}

func TestFromTrianglesRejectsNonFinite(t *testing.T) {
	soup := tetrahedron(types.Vector{}, 1)
	soup[0][0].X = nan()
	_, err := FromTriangles(soup)
	require.ErrorIs(t, err, ErrNonFiniteCoordinate)
}

func TestFromTrianglesRejectsDegenerate(t *testing.T) {
	soup := [][3]types.Vector{
		{{}, {X: 1}, {X: 2}},
	}
	_, err := FromTriangles(soup)
	require.ErrorIs(t, err, ErrDegenerateTriangle)

	m, err := FromTriangles(soup, WithSkipDegenerate(true))
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumTriangles())
}

func TestAddTriangleValidation(t *testing.T) {
	m := NewMesh()
	v1, _ := m.AddVertex(types.Vector{})
	v2, _ := m.AddVertex(types.Vector{X: 1})
	v3, _ := m.AddVertex(types.Vector{Y: 1})

	require.NoError(t, m.AddTriangle(v1, v2, v3))
	assert.ErrorIs(t, m.AddTriangle(v1, v2, 99), ErrInvalidVertexID)
	assert.ErrorIs(t, m.AddTriangle(v1, v1, v2), ErrDegenerateTriangle)
}

func TestDuplicateTriangleOptions(t *testing.T) {
	m := NewMesh(WithDuplicateTriangleError(true))
	v1, _ := m.AddVertex(types.Vector{})
	v2, _ := m.AddVertex(types.Vector{X: 1})
	v3, _ := m.AddVertex(types.Vector{Y: 1})

	require.NoError(t, m.AddTriangle(v1, v2, v3))
	assert.ErrorIs(t, m.AddTriangle(v3, v1, v2), ErrDuplicateTriangle)

	m2 := NewMesh(WithDuplicateTriangleOpposingWinding(true))
	v1, _ = m2.AddVertex(types.Vector{})
	v2, _ = m2.AddVertex(types.Vector{X: 1})
	v3, _ = m2.AddVertex(types.Vector{Y: 1})
	require.NoError(t, m2.AddTriangle(v1, v2, v3))
	assert.ErrorIs(t, m2.AddTriangle(v1, v3, v2), ErrOpposingWindingDuplicate)
}

func TestVertexMerging(t *testing.T) {
	m := NewMesh(WithMergeDistance(1e-6))
	a, err := m.AddVertex(types.Vector{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	b, err := m.AddVertex(types.Vector{X: 1 + 1e-9, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := m.AddVertex(types.Vector{X: 1.5, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	id, ok := m.FindVertexNear(types.Vector{X: 1, Y: 2, Z: 3 + 1e-8})
	assert.True(t, ok)
	assert.Equal(t, a, id)
}

func TestValidateDetectsOpenMesh(t *testing.T) {
	m := NewMesh()
	v1, _ := m.AddVertex(types.Vector{})
	v2, _ := m.AddVertex(types.Vector{X: 1})
	v3, _ := m.AddVertex(types.Vector{Y: 1})
	require.NoError(t, m.AddTriangle(v1, v2, v3))

	err := m.Validate()
	require.ErrorIs(t, err, ErrNotManifold)
	assert.False(t, m.IsClosed())
	assert.Len(t, m.NonManifoldEdges(), 3)

	assert.ErrorIs(t, NewMesh().Validate(), ErrEmptyMesh)
}

func TestVolume(t *testing.T) {
	m, err := FromTriangles(tetrahedron(types.Vector{X: 10, Y: -5, Z: 2}, 2))
	require.NoError(t, err)

	// Tetrahedron volume is size^3/6 regardless of position.
	assert.InDelta(t, 8.0/6.0, m.Volume(), 1e-12)
}

func TestBounds(t *testing.T) {
	m, err := FromTriangles(tetrahedron(types.Vector{X: 1, Y: 1, Z: 1}, 2))
	require.NoError(t, err)
	b := m.Bounds()
	assert.Equal(t, types.Vector{X: 1, Y: 1, Z: 1}, b.Min)
	assert.Equal(t, types.Vector{X: 3, Y: 3, Z: 3}, b.Max)
}

func TestPrint(t *testing.T) {
	m, err := FromTriangles(tetrahedron(types.Vector{}, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))
	out := buf.String()
	assert.Contains(t, out, "Vertices:  4")
	assert.Contains(t, out, "Triangles: 4")
	assert.Contains(t, out, "2x:6")
}

func nan() float64 {
	var z float64
	return z / z
}
