package cutter

import (
	"sort"

	"github.com/iceisfun/solidmesh/graph"
	"github.com/iceisfun/solidmesh/types"
)

type originKind int

const (
	originCorner originKind = iota
	originEdge
	originInterior
)

// pslgVertex is one vertex of the per-triangle planar straight-line
// graph, scoped to the processing of that triangle.
type pslgVertex struct {
	uv  types.Point
	pos types.Vector

	graphID types.VertexID // NilVertex unless an intersection vertex

	kind  originKind
	index int // corner index for originCorner, boundary edge for originEdge
}

// pslgEdge is an undirected PSLG edge between two local vertex indices.
type pslgEdge struct {
	a, b     int
	boundary bool // lies on the original triangle's boundary
	segment  bool // lies on an intersection segment
}

type planarGraph struct {
	verts     []pslgVertex
	edges     []pslgEdge
	edgeIndex map[[2]int]int
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// buildPSLG lifts the triangle corners plus its incident intersection
// vertices into the chart and connects them: the three boundary sides
// split by any on-edge intersection vertices into chains, plus every
// intersection segment listed on the triangle.
func buildPSLG(ch chart, corners [3]types.Vector, ev *graph.Evidence, g *graph.Graph, side types.Side, tri int, tol types.Tolerance) *planarGraph {
	p := &planarGraph{edgeIndex: make(map[[2]int]int)}

	for k := 0; k < 3; k++ {
		p.verts = append(p.verts, pslgVertex{
			uv:      ch.corners[k],
			pos:     corners[k],
			graphID: types.NilVertex,
			kind:    originCorner,
			index:   k,
		})
	}

	// Intersection vertices on this triangle, located through their
	// barycentric coordinates.
	local := make(map[types.VertexID]int, len(ev.Vertices))
	for _, vid := range ev.Vertices {
		v := &g.Vertices[vid]
		bary := v.On(side)[tri]
		idx := p.addVertex(ch, bary, v.Position, vid, tol)
		local[vid] = idx
	}

	p.addBoundaryChains()

	for _, eidx := range ev.Edges {
		e := &g.Edges[eidx]
		a, okA := local[e.V.V1()]
		b, okB := local[e.V.V2()]
		if !okA || !okB || a == b {
			continue
		}
		// A segment running along one boundary side is already covered
		// by the boundary chain through its endpoints.
		if _, on := sharedBoundaryEdge(&p.verts[a], &p.verts[b]); on {
			continue
		}
		p.addEdge(a, b, false, true)
	}

	return p
}

// addVertex inserts an intersection vertex, merging with an existing
// PSLG vertex (corner or earlier intersection vertex) when within the
// merge epsilon in the chart.
func (p *planarGraph) addVertex(ch chart, bary types.Barycentric, pos types.Vector, id types.VertexID, tol types.Tolerance) int {
	uv := ch.project(bary)

	for i := range p.verts {
		if uv.Distance(p.verts[i].uv) <= tol.Merge() {
			if p.verts[i].graphID == types.NilVertex {
				p.verts[i].graphID = id
			}
			return i
		}
	}

	v := pslgVertex{uv: uv, pos: pos, graphID: id, kind: originInterior}
	baryEps := tol.BaryInside(longestChartEdge(ch))
	for k := 0; k < 3; k++ {
		if bary.AtCorner(k, baryEps) {
			// Should have merged with the corner above; classify anyway.
			v.kind, v.index = originCorner, k
			break
		}
		if bary.OnEdge(k, baryEps) {
			v.kind, v.index = originEdge, k
			break
		}
	}

	p.verts = append(p.verts, v)
	return len(p.verts) - 1
}

func longestChartEdge(ch chart) float64 {
	longest := 0.0
	for k := 0; k < 3; k++ {
		if d := ch.corners[k].Distance(ch.corners[(k+1)%3]); d > longest {
			longest = d
		}
	}
	return longest
}

// addBoundaryChains connects each triangle side through its on-edge
// vertices, splitting the side into chain edges.
func (p *planarGraph) addBoundaryChains() {
	for k := 0; k < 3; k++ {
		ci := (k + 1) % 3
		cj := (k + 2) % 3

		chain := []int{ci}
		var onEdge []int
		for i := range p.verts {
			if p.verts[i].kind == originEdge && p.verts[i].index == k {
				onEdge = append(onEdge, i)
			}
		}

		// Order along the side from corner ci to corner cj.
		from := p.verts[ci].uv
		dir := p.verts[cj].uv.Sub(from)
		sort.Slice(onEdge, func(x, y int) bool {
			px := p.verts[onEdge[x]].uv.Sub(from)
			py := p.verts[onEdge[y]].uv.Sub(from)
			return px.X*dir.X+px.Y*dir.Y < py.X*dir.X+py.Y*dir.Y
		})

		chain = append(chain, onEdge...)
		chain = append(chain, cj)

		for i := 1; i < len(chain); i++ {
			p.addEdge(chain[i-1], chain[i], true, false)
		}
	}
}

func (p *planarGraph) addEdge(a, b int, boundary, segment bool) {
	if a == b {
		return
	}
	key := edgeKey(a, b)
	if idx, exists := p.edgeIndex[key]; exists {
		if segment {
			p.edges[idx].segment = true
		}
		return
	}
	p.edgeIndex[key] = len(p.edges)
	p.edges = append(p.edges, pslgEdge{a: a, b: b, boundary: boundary, segment: segment})
}

// ring resolves local vertex indices to their UV coordinates.
func (p *planarGraph) ring(ids []int) []types.Point {
	out := make([]types.Point, len(ids))
	for i, id := range ids {
		out[i] = p.verts[id].uv
	}
	return out
}

// isSegmentEdge reports whether local pair (a,b) is a PSLG edge lying on
// an intersection segment.
func (p *planarGraph) isSegmentEdge(a, b int) bool {
	if idx, ok := p.edgeIndex[edgeKey(a, b)]; ok {
		return p.edges[idx].segment
	}
	return false
}

// sharedBoundaryEdge reports whether both vertices lie on the same
// triangle side (corners count for both their incident sides).
func sharedBoundaryEdge(a, b *pslgVertex) (int, bool) {
	for k := 0; k < 3; k++ {
		if vertexOnSide(a, k) && vertexOnSide(b, k) {
			return k, true
		}
	}
	return 0, false
}

func vertexOnSide(v *pslgVertex, k int) bool {
	switch v.kind {
	case originCorner:
		// Side k is opposite corner k: it touches the other two corners.
		return v.index != k
	case originEdge:
		return v.index == k
	default:
		return false
	}
}
