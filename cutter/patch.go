// Package cutter cuts original triangles along their incident
// intersection evidence into coplanar sub-patches.
//
// For every triangle that carries evidence, the cutter lifts the
// triangle's corners and intersection vertices into a 2D chart on the
// triangle, builds a planar straight-line graph from the boundary plus
// the intersection segments, extracts faces from the half-edge complex,
// nests outer cycles with holes, triangulates each face, and lifts the
// resulting 2D triangles back to 3D as patches.
package cutter

import (
	"github.com/iceisfun/solidmesh/predicates"
	"github.com/iceisfun/solidmesh/types"
)

// Patch is a 3D triangle produced by cutting one original triangle. It
// keeps a back-reference to the source triangle and mesh side, the graph
// vertex ids of its corners (NilVertex for corners that are not
// intersection vertices), and which of its edges run along intersection
// segments.
type Patch struct {
	Vertices [3]types.Vector
	GraphIDs [3]types.VertexID

	// OnCut marks edge i, connecting Vertices[i] and Vertices[(i+1)%3],
	// as lying on an intersection segment.
	OnCut [3]bool

	Source int
	Side   types.Side
}

// Centroid returns the centroid of the patch.
func (p *Patch) Centroid() types.Vector {
	return predicates.Centroid(p.Vertices[0], p.Vertices[1], p.Vertices[2])
}

// Normal returns the (unnormalized) patch normal.
func (p *Patch) Normal() types.Vector {
	return predicates.TriangleNormal(p.Vertices[0], p.Vertices[1], p.Vertices[2])
}

// Area returns the patch area.
func (p *Patch) Area() float64 {
	return predicates.TriangleArea(p.Vertices[0], p.Vertices[1], p.Vertices[2])
}

// Reversed returns the patch with opposite winding.
func (p Patch) Reversed() Patch {
	p.Vertices[0], p.Vertices[1] = p.Vertices[1], p.Vertices[0]
	p.GraphIDs[0], p.GraphIDs[1] = p.GraphIDs[1], p.GraphIDs[0]
	// Edge i connects vertex i to i+1; after the swap edge 0 keeps its
	// endpoints while edges 1 and 2 exchange theirs.
	p.OnCut[1], p.OnCut[2] = p.OnCut[2], p.OnCut[1]
	return p
}
