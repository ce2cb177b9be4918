package graph

import (
	"sort"

	"github.com/iceisfun/solidmesh/intersections"
	"github.com/iceisfun/solidmesh/spatial"
	"github.com/iceisfun/solidmesh/types"
)

// Published error codes for the graph builder stage.
const (
	codeEdgeMultipleTriangles = "BP03.GRAPH.EDGE_MULTIPLE_TRIANGLES"
	codeMissingBarycentric    = "BP03.GRAPH.MISSING_BARYCENTRIC"
)

// Build merges the per-pair intersection points of res into a shared
// vertex set, deduplicates segments into undirected edges, and indexes
// which vertices and edges lie on each original triangle.
//
// Any two points within the merge epsilon collapse to one vertex id.
// Vertex ids are deterministic: after the voxel merge, vertices are
// renumbered by lexicographic (x,y,z) order of their positions.
func Build(res *intersections.Result, tol types.Tolerance) (*Graph, error) {
	b := newBuilder(tol)

	type rawSegment struct {
		a, b types.VertexID
		seg  *intersections.PairSegment
	}
	raw := make([]rawSegment, 0, len(res.Segments))

	for i := range res.Segments {
		seg := &res.Segments[i]
		va := b.insert(seg.Start, seg.ATriangle, seg.BTriangle)
		vb := b.insert(seg.End, seg.ATriangle, seg.BTriangle)
		raw = append(raw, rawSegment{a: va, b: vb, seg: seg})
	}

	remap := b.canonicalize()

	g := &Graph{
		Vertices:   b.vertices,
		Coincident: res.Coincident,
		aEvidence:  make(map[int]*Evidence),
		bEvidence:  make(map[int]*Evidence),
		edgeIndex:  make(map[types.Edge]int),
	}

	for _, rs := range raw {
		va, vb := remap[rs.a], remap[rs.b]
		if va == vb {
			// The segment collapsed inside the merge radius; it carries
			// no cutting evidence.
			continue
		}

		key := types.NewEdge(va, vb)
		if idx, exists := g.edgeIndex[key]; exists {
			e := &g.Edges[idx]
			if e.ATriangle != rs.seg.ATriangle || e.BTriangle != rs.seg.BTriangle {
				return nil, types.NewCodedError(codeEdgeMultipleTriangles,
					"edge %v listed on A[%d]/B[%d] and A[%d]/B[%d]: duplicate or self-intersecting input",
					key, e.ATriangle, e.BTriangle, rs.seg.ATriangle, rs.seg.BTriangle)
			}
			continue
		}

		g.edgeIndex[key] = len(g.Edges)
		g.Edges = append(g.Edges, Edge{
			V:         key,
			ATriangle: rs.seg.ATriangle,
			BTriangle: rs.seg.BTriangle,
		})
	}

	g.buildEvidence()

	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

type builder struct {
	tol      types.Tolerance
	grid     *spatial.HashGrid
	vertices []Vertex
}

func newBuilder(tol types.Tolerance) *builder {
	return &builder{
		tol:  tol,
		grid: spatial.NewHashGrid(tol.Merge()),
	}
}

// insert merges p into the vertex set and records its barycentrics on
// the generating triangles.
func (b *builder) insert(p intersections.PairPoint, aTri, bTri int) types.VertexID {
	radius := b.tol.Merge()
	id := types.NilVertex
	for _, candidate := range b.grid.FindVerticesNear(p.Position, radius) {
		if p.Position.Distance2(b.vertices[candidate].Position) <= radius*radius {
			id = candidate
			break
		}
	}

	if id == types.NilVertex {
		id = types.VertexID(len(b.vertices))
		b.vertices = append(b.vertices, Vertex{
			Position: p.Position,
			OnA:      make(map[int]types.Barycentric),
			OnB:      make(map[int]types.Barycentric),
		})
		b.grid.AddVertex(id, p.Position)
	}

	v := &b.vertices[id]
	v.OnA[aTri] = p.OnA
	v.OnB[bTri] = p.OnB
	return id
}

// canonicalize renumbers vertices by lexicographic (x,y,z) order and
// returns the old-id to new-id remap.
func (b *builder) canonicalize() []types.VertexID {
	order := make([]int, len(b.vertices))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		p, q := b.vertices[order[i]].Position, b.vertices[order[j]].Position
		if p.X != q.X {
			return p.X < q.X
		}
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.Z < q.Z
	})

	remap := make([]types.VertexID, len(b.vertices))
	sorted := make([]Vertex, len(b.vertices))
	for newID, oldID := range order {
		remap[oldID] = types.VertexID(newID)
		sorted[newID] = b.vertices[oldID]
	}
	b.vertices = sorted
	return remap
}

func (g *Graph) buildEvidence() {
	for id := range g.Vertices {
		v := &g.Vertices[id]
		for tri := range v.OnA {
			g.evidenceFor(types.SideA, tri).Vertices = append(
				g.evidenceFor(types.SideA, tri).Vertices, types.VertexID(id))
		}
		for tri := range v.OnB {
			g.evidenceFor(types.SideB, tri).Vertices = append(
				g.evidenceFor(types.SideB, tri).Vertices, types.VertexID(id))
		}
	}

	for idx := range g.Edges {
		e := &g.Edges[idx]
		g.evidenceFor(types.SideA, e.ATriangle).Edges = append(
			g.evidenceFor(types.SideA, e.ATriangle).Edges, idx)
		g.evidenceFor(types.SideB, e.BTriangle).Edges = append(
			g.evidenceFor(types.SideB, e.BTriangle).Edges, idx)
	}

	// Deterministic evidence ordering for downstream stages.
	for _, table := range []map[int]*Evidence{g.aEvidence, g.bEvidence} {
		for _, ev := range table {
			sort.Slice(ev.Vertices, func(i, j int) bool { return ev.Vertices[i] < ev.Vertices[j] })
			sort.Ints(ev.Edges)
		}
	}
}

func (g *Graph) evidenceFor(side types.Side, tri int) *Evidence {
	table := g.aEvidence
	if side == types.SideB {
		table = g.bEvidence
	}
	ev, ok := table[tri]
	if !ok {
		ev = &Evidence{}
		table[tri] = ev
	}
	return ev
}

// validate checks the post-build invariants: both endpoints of every
// edge must carry barycentrics on the edge's originating triangles.
func (g *Graph) validate() error {
	for idx := range g.Edges {
		e := &g.Edges[idx]
		for _, vid := range [2]types.VertexID{e.V.V1(), e.V.V2()} {
			v := &g.Vertices[vid]
			if _, ok := v.OnA[e.ATriangle]; !ok {
				return types.NewCodedError(codeMissingBarycentric,
					"vertex %d of edge %d has no barycentrics on A[%d]", vid, idx, e.ATriangle)
			}
			if _, ok := v.OnB[e.BTriangle]; !ok {
				return types.NewCodedError(codeMissingBarycentric,
					"vertex %d of edge %d has no barycentrics on B[%d]", vid, idx, e.BTriangle)
			}
		}
	}
	return nil
}
