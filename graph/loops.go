package graph

import (
	"github.com/iceisfun/solidmesh/types"
)

// codeOpenLoop is published when the intersection edges cannot be
// partitioned into closed loops.
const codeOpenLoop = "BP03.TOPOLOGY.OPEN_LOOP"

// Loops traces the intersection edges into closed loops as they run
// across the surfaces. The partition is shared by both sides: each
// intersection edge lies on exactly one A-triangle and one B-triangle,
// so the same loop covers it on either surface.
//
// Loops are informational for debugging, but they are checked: every
// intersection edge must belong to exactly one loop, and every loop must
// close. Two closed surfaces intersecting transversally always satisfy
// this; a violation points at open or self-intersecting input.
func (g *Graph) Loops() ([]types.PolygonLoop, error) {
	incident := make(map[types.VertexID][]int)
	for idx := range g.Edges {
		e := &g.Edges[idx]
		incident[e.V.V1()] = append(incident[e.V.V1()], idx)
		incident[e.V.V2()] = append(incident[e.V.V2()], idx)
	}

	for vid, edges := range incident {
		if len(edges)%2 != 0 {
			return nil, types.NewCodedError(codeOpenLoop,
				"vertex %d has odd intersection-edge degree %d", vid, len(edges))
		}
	}

	used := make([]bool, len(g.Edges))
	var loops []types.PolygonLoop

	for start := range g.Edges {
		if used[start] {
			continue
		}

		loop := types.PolygonLoop{g.Edges[start].V.V1()}
		used[start] = true
		first := g.Edges[start].V.V1()
		current := g.Edges[start].V.V2()

		for current != first {
			loop = append(loop, current)

			next := -1
			for _, idx := range incident[current] {
				if !used[idx] {
					next = idx
					break
				}
			}
			if next < 0 {
				return nil, types.NewCodedError(codeOpenLoop,
					"loop starting at vertex %d dead-ends at vertex %d", first, current)
			}

			used[next] = true
			e := &g.Edges[next]
			if e.V.V1() == current {
				current = e.V.V2()
			} else {
				current = e.V.V1()
			}
		}

		loops = append(loops, loop)
	}

	return loops, nil
}
