package validation

import (
	"fmt"
	"sort"

	"github.com/iceisfun/solidmesh/types"
)

// EdgeUseCounts tallies how many triangles use each undirected edge.
func EdgeUseCounts(triangles []types.Triangle) map[types.Edge]int {
	counts := make(map[types.Edge]int, len(triangles)*3/2)
	for _, tri := range triangles {
		for _, e := range tri.Edges() {
			counts[e]++
		}
	}
	return counts
}

// EdgeUseHistogram maps a use count to the number of edges with that
// count. A closed manifold triangulation has a single bucket {2: n}.
func EdgeUseHistogram(counts map[types.Edge]int) map[int]int {
	hist := make(map[int]int)
	for _, c := range counts {
		hist[c]++
	}
	return hist
}

// NonManifoldEdges returns every edge used by a number of triangles
// other than two, sorted for deterministic reporting.
func NonManifoldEdges(counts map[types.Edge]int) []types.Edge {
	var bad []types.Edge
	for e, c := range counts {
		if c != 2 {
			bad = append(bad, e)
		}
	}
	sort.Slice(bad, func(i, j int) bool {
		if bad[i].V1() != bad[j].V1() {
			return bad[i].V1() < bad[j].V1()
		}
		return bad[i].V2() < bad[j].V2()
	})
	return bad
}

// ValidateManifold checks that every edge is used by exactly two
// triangles. The returned error names the offending edges and the
// use-count histogram.
func ValidateManifold(triangles []types.Triangle) error {
	counts := EdgeUseCounts(triangles)
	bad := NonManifoldEdges(counts)
	if len(bad) == 0 {
		return nil
	}
	return fmt.Errorf("validation: %d non-manifold edges (histogram %v), first %v used %d times",
		len(bad), EdgeUseHistogram(counts), bad[0], counts[bad[0]])
}
