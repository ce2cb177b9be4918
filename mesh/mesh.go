package mesh

import (
	"github.com/iceisfun/solidmesh/spatial"
	"github.com/iceisfun/solidmesh/types"
)

// Mesh represents an indexed 3D triangle mesh with validated topology.
//
// Triangles reference vertices by stable VertexID; winding is stored as
// provided. Meshes that represent closed solids are expected to be
// consistently wound with outward normals.
type Mesh struct {
	vertices  []types.Vector
	triangles []types.Triangle

	cfg config

	vertexIndex spatial.Index

	triangleSet map[[3]types.VertexID]types.Triangle
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.triangles)
}

// GetVertex returns the coordinates of a vertex by ID.
func (m *Mesh) GetVertex(id types.VertexID) types.Vector {
	return m.vertices[id]
}

// GetTriangle returns a triangle by index.
func (m *Mesh) GetTriangle(idx int) types.Triangle {
	return m.triangles[idx]
}

// GetVertices returns a copy of all vertex coordinates.
func (m *Mesh) GetVertices() []types.Vector {
	out := make([]types.Vector, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// GetTriangles returns a copy of all triangles.
func (m *Mesh) GetTriangles() []types.Triangle {
	out := make([]types.Triangle, len(m.triangles))
	copy(out, m.triangles)
	return out
}

// GetTriangleCoords returns the coordinates of a triangle's vertices.
func (m *Mesh) GetTriangleCoords(idx int) (types.Vector, types.Vector, types.Vector) {
	t := m.triangles[idx]
	return m.vertices[t.V1()], m.vertices[t.V2()], m.vertices[t.V3()]
}

// IsValidVertexID reports whether the supplied ID references an existing vertex.
func (m *Mesh) IsValidVertexID(id types.VertexID) bool {
	return id >= 0 && int(id) < len(m.vertices)
}

// Epsilon returns the configured distance tolerance.
func (m *Mesh) Epsilon() float64 {
	return m.cfg.epsilon
}

// AreaEpsilon returns the configured area tolerance.
func (m *Mesh) AreaEpsilon() float64 {
	return m.cfg.areaEpsilon
}

// HasTriangleWithKey reports whether the canonical key is present.
func (m *Mesh) HasTriangleWithKey(key [3]types.VertexID) (types.Triangle, bool) {
	tri, ok := m.triangleSet[key]
	return tri, ok
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() types.Box {
	return types.BoxFromPoints(m.vertices...)
}
