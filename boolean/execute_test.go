package boolean

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/types"
)

// canonicalSoup reduces a mesh to its triangle coordinate multiset,
// invariant under triangle ordering, vertex id permutation and winding.
func canonicalSoup(m *mesh.Mesh) [][3]types.Vector {
	less := func(p, q types.Vector) bool {
		if p.X != q.X {
			return p.X < q.X
		}
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.Z < q.Z
	}

	soup := make([][3]types.Vector, m.NumTriangles())
	for i := range soup {
		a, b, c := m.GetTriangleCoords(i)
		tri := [3]types.Vector{a, b, c}
		sort.Slice(tri[:], func(x, y int) bool { return less(tri[x], tri[y]) })
		soup[i] = tri
	}
	sort.Slice(soup, func(x, y int) bool {
		for k := 0; k < 3; k++ {
			if soup[x][k] != soup[y][k] {
				return less(soup[x][k], soup[y][k])
			}
		}
		return false
	})
	return soup
}

func TestExecuteValidatesInput(t *testing.T) {
	tol := types.DefaultTolerance()
	a := tetraMesh(t, types.Vector{}, 1)

	_, err := Execute(nil, a, Union, tol)
	assert.Equal(t, "BP01.INPUT.EMPTY_MESH", types.CodeOf(err))

	_, err = Execute(a, mesh.NewMesh(), Union, tol)
	assert.Equal(t, "BP01.INPUT.EMPTY_MESH", types.CodeOf(err))

	_, err = Execute(a, a, Union, types.Tolerance{})
	assert.Equal(t, "BP01.INPUT.BAD_TOLERANCE", types.CodeOf(err))
}

func TestExecuteContextCancelled(t *testing.T) {
	a := tetraMesh(t, types.Vector{}, 1)
	b := tetraMesh(t, types.Vector{X: 10}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecuteContext(ctx, a, b, Union, types.DefaultTolerance())
	require.Error(t, err)
	assert.Equal(t, "BP00.CANCELLED", types.CodeOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

// S1: disjoint tetrahedra union two far-apart solids unchanged.
func TestUnionDisjointTetrahedra(t *testing.T) {
	a := tetraMesh(t, types.Vector{}, 2)
	b := tetraMesh(t, types.Vector{X: 100, Y: 100, Z: 100}, 2)

	out, err := Execute(a, b, Union, types.DefaultTolerance())
	require.NoError(t, err)
	require.NoError(t, out.Validate())
	assert.GreaterOrEqual(t, out.NumTriangles(), 8)
	assert.Equal(t, 2, componentCount(out))
}

// S2: a tetrahedron nested inside a much larger one intersects to the
// inner solid alone.
func TestIntersectionNestedTetrahedra(t *testing.T) {
	inner := tetraMesh(t, types.Vector{X: 1, Y: 1, Z: 1}, 1)
	outer := tetraMesh(t, types.Vector{}, 10)

	out, err := Execute(inner, outer, Intersection, types.DefaultTolerance())
	require.NoError(t, err)
	require.NoError(t, out.Validate())
	assert.Equal(t, 4, out.NumTriangles())
	assert.InDelta(t, inner.Volume(), out.Volume(), 1e-9)
}

// S3: two overlapping subdivided spheres union into one manifold shell.
func TestUnionSpheres(t *testing.T) {
	a := sphereMesh(t, types.Vector{}, 200, 3)
	b := sphereMesh(t, types.Vector{X: 150, Y: 50, Z: -30}, 200, 3)

	out, err := Execute(a, b, Union, types.DefaultTolerance())
	require.NoError(t, err)
	require.NoError(t, out.Validate())
	assert.Empty(t, out.NonManifoldEdges())

	// The interior caps vanish; the intersection-curve vertices come in
	// below what welding removes.
	sum := a.NumVertices() + b.NumVertices()
	assert.Less(t, out.NumVertices(), sum)
	assert.Greater(t, out.Volume(), a.Volume(), "union is larger than either input")
}

// S6: meshes sharing an identical face with opposite winding.
func TestCoincidentFaceOperations(t *testing.T) {
	a, b := gluedTetrahedra(t)
	tol := types.DefaultTolerance()

	union, err := Execute(a, b, Union, tol)
	require.NoError(t, err)
	require.NoError(t, union.Validate())
	assert.Equal(t, 6, union.NumTriangles(), "shared face dropped from both sides")
	assert.InDelta(t, a.Volume()+b.Volume(), union.Volume(), 1e-12)

	inter, err := Execute(a, b, Intersection, tol)
	require.NoError(t, err)
	assert.Equal(t, 0, inter.NumTriangles(), "glued solids share no volume")

	sym, err := Execute(a, b, SymmetricDifference, tol)
	require.NoError(t, err)
	require.NoError(t, sym.Validate())
	assert.InDelta(t, union.Volume(), sym.Volume(), 1e-12)

	// B removes nothing from A's side of the shared face.
	diff, err := Execute(a, b, DifferenceAB, tol)
	require.NoError(t, err)
	require.NoError(t, diff.Validate())
	assert.Equal(t, 4, diff.NumTriangles())
	assert.InDelta(t, a.Volume(), diff.Volume(), 1e-12)
}

func TestIdempotence(t *testing.T) {
	a := cubeMesh(t, types.Vector{}, 1)
	tol := types.DefaultTolerance()

	union, err := Execute(a, a, Union, tol)
	require.NoError(t, err)
	require.NoError(t, union.Validate())
	assert.Equal(t, a.NumTriangles(), union.NumTriangles())
	assert.InDelta(t, a.Volume(), union.Volume(), 1e-12)

	inter, err := Execute(a, a, Intersection, tol)
	require.NoError(t, err)
	require.NoError(t, inter.Validate())
	assert.InDelta(t, a.Volume(), inter.Volume(), 1e-12)

	diff, err := Execute(a, a, DifferenceAB, tol)
	require.NoError(t, err)
	assert.Equal(t, 0, diff.NumTriangles(), "A minus A is empty")
}

func TestOverlappingCubesVolumes(t *testing.T) {
	a := cubeMesh(t, types.Vector{}, 1)
	b := cubeMesh(t, types.Vector{X: 0.5, Y: 0.5, Z: 0.5}, 1)
	tol := types.DefaultTolerance()

	union, err := Execute(a, b, Union, tol)
	require.NoError(t, err)
	require.NoError(t, union.Validate())

	inter, err := Execute(a, b, Intersection, tol)
	require.NoError(t, err)
	require.NoError(t, inter.Validate())

	diff, err := Execute(a, b, DifferenceAB, tol)
	require.NoError(t, err)
	require.NoError(t, diff.Validate())

	// The overlap is the cube [0.5,1]^3.
	assert.InDelta(t, 0.125, inter.Volume(), 1e-9)
	assert.InDelta(t, 2-0.125, union.Volume(), 1e-9)
	assert.InDelta(t, 1-0.125, diff.Volume(), 1e-9)

	// Monotone volume bounds.
	assert.LessOrEqual(t, inter.Volume(), a.Volume()+1e-9)
	assert.LessOrEqual(t, inter.Volume(), b.Volume()+1e-9)
	assert.GreaterOrEqual(t, union.Volume()+1e-9, a.Volume())
	assert.GreaterOrEqual(t, union.Volume()+1e-9, b.Volume())
}

func TestSymmetry(t *testing.T) {
	a := cubeMesh(t, types.Vector{}, 1)
	b := cubeMesh(t, types.Vector{X: 0.5, Y: 0.5, Z: 0.5}, 1)
	tol := types.DefaultTolerance()

	uAB, err := Execute(a, b, Union, tol)
	require.NoError(t, err)
	uBA, err := Execute(b, a, Union, tol)
	require.NoError(t, err)
	assert.Equal(t, uAB.NumTriangles(), uBA.NumTriangles())
	assert.InDelta(t, uAB.Volume(), uBA.Volume(), 1e-9)

	// Identical geometry up to triangle ordering and vertex permutation.
	if diff := cmp.Diff(canonicalSoup(uAB), canonicalSoup(uBA)); diff != "" {
		t.Errorf("union not symmetric (-AB +BA):\n%s", diff)
	}

	dAB, err := Execute(a, b, DifferenceAB, tol)
	require.NoError(t, err)
	dBA, err := Execute(b, a, DifferenceBA, tol)
	require.NoError(t, err)
	assert.Equal(t, dAB.NumTriangles(), dBA.NumTriangles())
	assert.InDelta(t, dAB.Volume(), dBA.Volume(), 1e-9)
	if diff := cmp.Diff(canonicalSoup(dAB), canonicalSoup(dBA)); diff != "" {
		t.Errorf("differences disagree (-AB +BA):\n%s", diff)
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Union", Union.String())
	assert.Equal(t, "SymmetricDifference", SymmetricDifference.String())
	assert.Equal(t, "DifferenceBA", DifferenceBA.String())
}
