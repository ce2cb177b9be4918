// Package graph builds the intersection graph shared by both input
// surfaces: the merged set of intersection vertices, the deduplicated
// intersection edges, and per-triangle evidence tables that record which
// vertices and edges lie on each original triangle.
package graph

import (
	"github.com/iceisfun/solidmesh/intersections"
	"github.com/iceisfun/solidmesh/types"
)

// Vertex is a merged intersection vertex. One vertex may carry
// barycentric coordinates on several triangles of either side, acquired
// as numerically coincident pair points were merged into it.
type Vertex struct {
	Position types.Vector
	OnA      map[int]types.Barycentric
	OnB      map[int]types.Barycentric
}

// On returns the barycentric table for the requested side.
func (v *Vertex) On(side types.Side) map[int]types.Barycentric {
	if side == types.SideA {
		return v.OnA
	}
	return v.OnB
}

// Edge is an undirected intersection edge between two graph vertices,
// listed on exactly one A-triangle and one B-triangle.
type Edge struct {
	V         types.Edge
	ATriangle int
	BTriangle int
}

// Triangle returns the originating triangle index for the given side.
func (e *Edge) Triangle(side types.Side) int {
	if side == types.SideA {
		return e.ATriangle
	}
	return e.BTriangle
}

// Evidence lists the graph vertices and edges lying on one original
// triangle.
type Evidence struct {
	Vertices []types.VertexID
	Edges    []int
}

// Graph is the complete intersection graph.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge

	// Coincident lists the coplanar identical-face pairs found by the
	// finder; they contribute no vertices or edges. No later stage reads
	// them: classification recognizes shared faces by its own sampling.
	Coincident []intersections.CoincidentFace

	aEvidence map[int]*Evidence
	bEvidence map[int]*Evidence
	edgeIndex map[types.Edge]int
}

// Evidence returns the evidence for the given side and original triangle
// index, or nil when the triangle carries none.
func (g *Graph) Evidence(side types.Side, tri int) *Evidence {
	if side == types.SideA {
		return g.aEvidence[tri]
	}
	return g.bEvidence[tri]
}

// EvidenceTriangles returns the indices of all original triangles on the
// given side that carry evidence.
func (g *Graph) EvidenceTriangles(side types.Side) []int {
	table := g.aEvidence
	if side == types.SideB {
		table = g.bEvidence
	}
	out := make([]int, 0, len(table))
	for tri := range table {
		out = append(out, tri)
	}
	return out
}

// Adjacent reports whether two graph vertices are connected by an
// intersection edge.
func (g *Graph) Adjacent(a, b types.VertexID) bool {
	_, ok := g.edgeIndex[types.NewEdge(a, b)]
	return ok
}

// EdgeBetween returns the edge index connecting two graph vertices.
func (g *Graph) EdgeBetween(a, b types.VertexID) (int, bool) {
	idx, ok := g.edgeIndex[types.NewEdge(a, b)]
	return idx, ok
}
