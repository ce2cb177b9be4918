package mesh

import "errors"

var (
	// ErrInvalidVertexID indicates a vertex ID is out of range or negative.
	ErrInvalidVertexID = errors.New("solidmesh: invalid vertex id")

	// ErrInvalidTriangleIndex indicates a triangle index is out of range.
	ErrInvalidTriangleIndex = errors.New("solidmesh: invalid triangle index")

	// ErrDegenerateTriangle indicates triangle vertices are collinear or
	// coincident.
	ErrDegenerateTriangle = errors.New("solidmesh: degenerate triangle")

	// ErrDuplicateTriangle indicates the same three vertices already exist.
	ErrDuplicateTriangle = errors.New("solidmesh: duplicate triangle (any winding)")

	// ErrOpposingWindingDuplicate indicates the same three vertices exist
	// with opposite winding direction.
	ErrOpposingWindingDuplicate = errors.New("solidmesh: duplicate triangle with opposing winding")

	// ErrNonFiniteCoordinate indicates a vertex coordinate is NaN or Inf.
	ErrNonFiniteCoordinate = errors.New("solidmesh: non-finite vertex coordinate")

	// ErrEmptyMesh indicates a mesh with no triangles where one is required.
	ErrEmptyMesh = errors.New("solidmesh: empty mesh")

	// ErrNotManifold indicates an edge used by a number of triangles other
	// than two.
	ErrNotManifold = errors.New("solidmesh: mesh is not manifold")
)
