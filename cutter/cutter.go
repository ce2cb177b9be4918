package cutter

import (
	"github.com/iceisfun/solidmesh/graph"
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/predicates"
	"github.com/iceisfun/solidmesh/types"
)

// Published error codes for the face cutter stage.
const (
	codeAreaMismatch   = "BP04.CUTTER.AREA_MISMATCH"
	codeUnboundedFace  = "BP04.CUTTER.UNBOUNDED_FACE"
	codeFaceInvalid    = "BP04.CUTTER.FACE_INVALID"
	codeBridgeNotFound = "BP04.CUTTER.BRIDGE_NOT_FOUND"
	codeEarNotFound    = "BP04.CUTTER.EAR_NOT_FOUND"
)

// CutMesh cuts every triangle of m that carries intersection evidence
// into patches; triangles without evidence and degenerate triangles pass
// through as single patches.
//
// Patches are emitted in ascending original-triangle order, so the
// result is deterministic regardless of how evidence was gathered.
func CutMesh(m *mesh.Mesh, side types.Side, g *graph.Graph, tol types.Tolerance) ([]Patch, error) {
	hasEvidence := make(map[int]bool)
	for _, tri := range g.EvidenceTriangles(side) {
		hasEvidence[tri] = true
	}

	var patches []Patch
	for tri := 0; tri < m.NumTriangles(); tri++ {
		a, b, c := m.GetTriangleCoords(tri)

		if !hasEvidence[tri] || predicates.TriangleArea(a, b, c) <= tol.Area {
			patches = append(patches, wholePatch(a, b, c, tri, side))
			continue
		}

		cut, err := cutTriangle(a, b, c, g.Evidence(side, tri), g, side, tri, tol)
		if err != nil {
			return nil, err
		}
		patches = append(patches, cut...)
	}

	return patches, nil
}

func wholePatch(a, b, c types.Vector, tri int, side types.Side) Patch {
	return Patch{
		Vertices: [3]types.Vector{a, b, c},
		GraphIDs: [3]types.VertexID{types.NilVertex, types.NilVertex, types.NilVertex},
		Source:   tri,
		Side:     side,
	}
}

// cutTriangle runs the PSLG pipeline for one triangle: chart projection,
// PSLG construction, half-edge face extraction, hole nesting,
// triangulation, and lifting back to 3D.
func cutTriangle(a, b, c types.Vector, ev *graph.Evidence, g *graph.Graph, side types.Side, tri int, tol types.Tolerance) ([]Patch, error) {
	ch, ok := newChart(a, b, c)
	if !ok {
		return []Patch{wholePatch(a, b, c, tri, side)}, nil
	}

	p := buildPSLG(ch, [3]types.Vector{a, b, c}, ev, g, side, tri, tol)

	// Evidence that reduced to boundary chains alone cuts nothing.
	interior := false
	for _, e := range p.edges {
		if !e.boundary {
			interior = true
			break
		}
	}
	hasSplits := len(p.verts) > 3
	if !interior && !hasSplits {
		return []Patch{wholePatch(a, b, c, tri, side)}, nil
	}

	hes := buildHalfEdges(p)
	cycles := extractCycles(p, hes)
	faces, err := buildFaces(p, cycles, predicates.TriangleArea(a, b, c), tol)
	if err != nil {
		return nil, err
	}

	var patches []Patch
	for _, f := range faces {
		tris, err := triangulateFace(p, f, tol)
		if err != nil {
			return nil, err
		}
		for _, t := range tris {
			patches = append(patches, liftPatch(p, t, tri, side))
		}
	}

	return patches, nil
}

// liftPatch maps a UV triangle back to 3D through the exact vertex
// positions recorded in the PSLG.
func liftPatch(p *planarGraph, t [3]int, tri int, side types.Side) Patch {
	patch := Patch{Source: tri, Side: side}
	for i := 0; i < 3; i++ {
		patch.Vertices[i] = p.verts[t[i]].pos
		patch.GraphIDs[i] = p.verts[t[i]].graphID
	}
	for i := 0; i < 3; i++ {
		patch.OnCut[i] = p.isSegmentEdge(t[i], t[(i+1)%3])
	}
	return patch
}
