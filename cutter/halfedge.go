package cutter

import (
	"math"
	"sort"
)

// halfEdge is one directional side of a PSLG edge. The arena is a
// contiguous index-addressed buffer: twin and next are small integers,
// never owning pointers.
type halfEdge struct {
	from, to int
	twin     int
	next     int
}

// buildHalfEdges creates two oppositely-directed half-edges per PSLG
// edge and links the next pointers so each chain walks around the left
// face of its half-edges: at a half-edge's destination vertex, take the
// twin, then advance to the next outgoing half-edge clockwise from it in
// polar order.
func buildHalfEdges(p *planarGraph) []halfEdge {
	hes := make([]halfEdge, 0, len(p.edges)*2)
	for _, e := range p.edges {
		hes = append(hes,
			halfEdge{from: e.a, to: e.b, twin: len(hes) + 1, next: -1},
			halfEdge{from: e.b, to: e.a, twin: len(hes), next: -1},
		)
	}

	outgoing := make([][]int, len(p.verts))
	for id := range hes {
		outgoing[hes[id].from] = append(outgoing[hes[id].from], id)
	}

	position := make([]int, len(hes))
	for v := range outgoing {
		out := outgoing[v]
		sort.Slice(out, func(i, j int) bool {
			return outgoingAngle(p, hes[out[i]]) < outgoingAngle(p, hes[out[j]])
		})
		for i, id := range out {
			position[id] = i
		}
	}

	for id := range hes {
		twin := hes[id].twin
		v := hes[id].to
		out := outgoing[v]
		succ := out[(position[twin]-1+len(out))%len(out)]
		hes[id].next = succ
	}

	return hes
}

func outgoingAngle(p *planarGraph, he halfEdge) float64 {
	d := p.verts[he.to].uv.Sub(p.verts[he.from].uv)
	return math.Atan2(d.Y, d.X)
}

// rawCycle is a closed walk extracted from the half-edge complex, with
// its signed area as walked and the connected component it belongs to.
type rawCycle struct {
	verts []int
	area  float64
	comp  int
}

// extractCycles walks every unvisited half-edge along next pointers
// until it returns to the start.
func extractCycles(p *planarGraph, hes []halfEdge) []rawCycle {
	comp := components(p)

	visited := make([]bool, len(hes))
	var cycles []rawCycle

	for start := range hes {
		if visited[start] {
			continue
		}

		var verts []int
		id := start
		for {
			visited[id] = true
			verts = append(verts, hes[id].from)
			id = hes[id].next
			if id == start {
				break
			}
		}

		cycles = append(cycles, rawCycle{
			verts: verts,
			area:  signedAreaOf(p, verts),
			comp:  comp[verts[0]],
		})
	}

	return cycles
}

func signedAreaOf(p *planarGraph, verts []int) float64 {
	area := 0.0
	for i := 0; i < len(verts); i++ {
		a := p.verts[verts[i]].uv
		b := p.verts[verts[(i+1)%len(verts)]].uv
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// components labels PSLG vertices by connected component.
func components(p *planarGraph) []int {
	parent := make([]int, len(p.verts))
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
	for _, e := range p.edges {
		ra, rb := find(e.a), find(e.b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	out := make([]int, len(p.verts))
	for i := range out {
		out[i] = find(i)
	}
	return out
}
