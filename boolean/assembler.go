package boolean

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iceisfun/solidmesh/cutter"
	"github.com/iceisfun/solidmesh/formatting"
	"github.com/iceisfun/solidmesh/graph"
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/types"
	"github.com/iceisfun/solidmesh/validation"
)

// Published error codes for the assembly stage.
const (
	codeNonManifoldEdge    = "BP07.ASSEMBLY.NON_MANIFOLD_EDGE"
	codeBoundaryNotInGraph = "BP07.ASSEMBLY.BOUNDARY_NOT_IN_GRAPH"
)

// provenance remembers which patch first produced a welded triangle.
type provenance struct {
	source int
	side   types.Side
}

// assemble welds the selected patches into a single indexed mesh and
// verifies strict manifoldness.
//
// Pre-assembly invariant: every patch edge lying on an intersection
// segment must connect vertices adjacent in the intersection graph; a
// violation indicates epsilon drift in an earlier stage and aborts.
func assemble(patches []cutter.Patch, g *graph.Graph, tol types.Tolerance) (*mesh.Mesh, error) {
	if err := checkCutEdgesAgainstGraph(patches, g); err != nil {
		return nil, err
	}

	out := mesh.NewMesh(
		mesh.WithMergeDistance(tol.Merge()),
		mesh.WithAreaEpsilon(tol.Area),
	)

	seen := make(map[[3]types.VertexID]provenance)
	owners := make(map[types.Edge]provenance)

	for i := range patches {
		p := &patches[i]

		var ids [3]types.VertexID
		for k := 0; k < 3; k++ {
			id, err := out.AddVertex(p.Vertices[k])
			if err != nil {
				return nil, types.WrapCoded(codeNonFinite, err)
			}
			ids[k] = id
		}

		// Triangles that collapsed in the weld are dropped.
		if ids[0] == ids[1] || ids[1] == ids[2] || ids[0] == ids[2] {
			continue
		}

		key := validation.CanonicalTriangleKey(types.NewTriangle(ids[0], ids[1], ids[2]))
		if _, dup := seen[key]; dup {
			continue
		}

		if err := out.AddTriangle(ids[0], ids[1], ids[2]); err != nil {
			if errors.Is(err, mesh.ErrDegenerateTriangle) {
				continue
			}
			return nil, err
		}
		seen[key] = provenance{source: p.Source, side: p.Side}
		for _, e := range types.NewTriangle(ids[0], ids[1], ids[2]).Edges() {
			if _, ok := owners[e]; !ok {
				owners[e] = provenance{source: p.Source, side: p.Side}
			}
		}
	}

	// An empty result is legitimate (for example A \ A).
	if out.NumTriangles() == 0 {
		return out, nil
	}

	if bad := out.NonManifoldEdges(); len(bad) > 0 {
		return nil, nonManifoldError(out, bad, owners)
	}

	return out, nil
}

// checkCutEdgesAgainstGraph verifies the selected-boundary-to-graph
// adjacency invariant on the un-welded patches.
func checkCutEdgesAgainstGraph(patches []cutter.Patch, g *graph.Graph) error {
	for i := range patches {
		p := &patches[i]
		for e := 0; e < 3; e++ {
			if !p.OnCut[e] {
				continue
			}
			v1 := p.GraphIDs[e]
			v2 := p.GraphIDs[(e+1)%3]
			if v1 == types.NilVertex || v2 == types.NilVertex {
				return types.NewCodedError(codeBoundaryNotInGraph,
					"cut edge of patch %s[%d] lacks graph vertices (%d, %d)",
					p.Side, p.Source, v1, v2)
			}
			if !g.Adjacent(v1, v2) {
				return types.NewCodedError(codeBoundaryNotInGraph,
					"cut edge (%d, %d) of patch %s[%d] is not adjacent in the intersection graph",
					v1, v2, p.Side, p.Source)
			}
		}
	}
	return nil
}

func nonManifoldError(m *mesh.Mesh, bad []types.Edge, owners map[types.Edge]provenance) error {
	counts := m.EdgeUseCounts()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d non-manifold edges, edge-use histogram %v;",
		len(bad), validation.EdgeUseHistogram(counts))
	limit := len(bad)
	if limit > 8 {
		limit = 8
	}
	for _, e := range bad[:limit] {
		fmt.Fprintf(&sb, " edge %s %s-%s used %d times",
			formatting.EdgeString(e),
			formatting.VectorString(m.GetVertex(e.V1())),
			formatting.VectorString(m.GetVertex(e.V2())),
			counts[e])
		if owner, ok := owners[e]; ok {
			fmt.Fprintf(&sb, " (first from %s[%d])", owner.side, owner.source)
		}
		sb.WriteString(";")
	}

	return types.NewCodedError(codeNonManifoldEdge, "%s", sb.String())
}
