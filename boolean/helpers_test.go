package boolean

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/types"
)

func tetraMesh(t *testing.T, origin types.Vector, size float64) *mesh.Mesh {
	t.Helper()
	o := origin
	x := origin.Add(types.Vector{X: size})
	y := origin.Add(types.Vector{Y: size})
	z := origin.Add(types.Vector{Z: size})
	m, err := mesh.FromTriangles([][3]types.Vector{
		{o, y, x},
		{o, x, z},
		{o, z, y},
		{x, y, z},
	})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func cubeMesh(t *testing.T, origin types.Vector, size float64) *mesh.Mesh {
	t.Helper()
	v := func(x, y, z float64) types.Vector {
		return origin.Add(types.Vector{X: x * size, Y: y * size, Z: z * size})
	}
	m, err := mesh.FromTriangles([][3]types.Vector{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)},
		{v(0, 0, 0), v(1, 1, 0), v(1, 0, 0)},
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1)},
		{v(0, 0, 1), v(1, 1, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1)},
		{v(0, 0, 0), v(1, 0, 1), v(0, 0, 1)},
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)},
		{v(0, 1, 0), v(1, 1, 1), v(1, 1, 0)},
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(0, 1, 1), v(0, 1, 0)},
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)},
		{v(1, 0, 0), v(1, 1, 1), v(1, 0, 1)},
	})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

// sphereMesh builds a subdivided octahedron sphere.
func sphereMesh(t *testing.T, center types.Vector, radius float64, subdivisions int) *mesh.Mesh {
	t.Helper()

	px := types.Vector{X: 1}
	nx := types.Vector{X: -1}
	py := types.Vector{Y: 1}
	ny := types.Vector{Y: -1}
	pz := types.Vector{Z: 1}
	nz := types.Vector{Z: -1}

	faces := [][3]types.Vector{
		{px, py, pz},
		{py, nx, pz},
		{nx, ny, pz},
		{ny, px, pz},
		{py, px, nz},
		{nx, py, nz},
		{ny, nx, nz},
		{px, ny, nz},
	}

	for s := 0; s < subdivisions; s++ {
		var next [][3]types.Vector
		for _, f := range faces {
			ab := midpointOnSphere(f[0], f[1])
			bc := midpointOnSphere(f[1], f[2])
			ca := midpointOnSphere(f[2], f[0])
			next = append(next,
				[3]types.Vector{f[0], ab, ca},
				[3]types.Vector{ab, f[1], bc},
				[3]types.Vector{ca, bc, f[2]},
				[3]types.Vector{ab, bc, ca},
			)
		}
		faces = next
	}

	for i := range faces {
		for k := range faces[i] {
			faces[i][k] = center.Add(faces[i][k].Scale(radius))
		}
	}

	m, err := mesh.FromTriangles(faces)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func midpointOnSphere(a, b types.Vector) types.Vector {
	return a.Add(b).Scale(0.5).Normalize()
}

// gluedTetrahedra returns two tetrahedra sharing the z=0 face with
// opposite winding: A occupies z >= 0, B occupies z <= 0.
func gluedTetrahedra(t *testing.T) (*mesh.Mesh, *mesh.Mesh) {
	t.Helper()
	a, err := mesh.FromTriangles([][3]types.Vector{
		{{}, {Y: 1}, {X: 1}},
		{{}, {X: 1}, {Z: 1}},
		{{}, {Z: 1}, {Y: 1}},
		{{X: 1}, {Y: 1}, {Z: 1}},
	})
	require.NoError(t, err)
	b, err := mesh.FromTriangles([][3]types.Vector{
		{{}, {X: 1}, {Y: 1}},
		{{}, {Z: -1}, {X: 1}},
		{{}, {Y: 1}, {Z: -1}},
		{{X: 1}, {Z: -1}, {Y: 1}},
	})
	require.NoError(t, err)
	return a, b
}

// componentCount returns the number of connected components of the mesh
// by flood-filling shared vertices.
func componentCount(m *mesh.Mesh) int {
	parent := make([]int, m.NumVertices())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for i := 0; i < m.NumTriangles(); i++ {
		tri := m.GetTriangle(i)
		a := find(int(tri.V1()))
		parent[a] = find(int(tri.V2()))
		parent[find(int(tri.V2()))] = find(int(tri.V3()))
	}
	roots := make(map[int]struct{})
	for i := range parent {
		roots[find(i)] = struct{}{}
	}
	return len(roots)
}
