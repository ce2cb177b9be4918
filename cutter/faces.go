package cutter

import (
	"math"
	"sort"

	"github.com/iceisfun/solidmesh/algorithm/geometry"
	"github.com/iceisfun/solidmesh/algorithm/polygon"
	"github.com/iceisfun/solidmesh/algorithm/pslg"
	"github.com/iceisfun/solidmesh/types"
)

// face is one region of the cut triangle: a CCW outer cycle with zero or
// more CCW hole cycles strictly nested inside it.
type face struct {
	outer []int
	holes [][]int
	area  float64 // area(outer) - sum of hole areas
}

// buildFaces nests the raw cycles into faces with holes.
//
// Each connected component of the PSLG contributes its bounded cycles as
// solid faces. The component's unbounded cycle is identified by the sign
// of its signed area as walked (negative: the walk runs clockwise around
// the component hull); when the signs are inconsistent the largest-area
// cycle is taken instead. A component's unbounded cycle either becomes a
// hole of the smallest face of another component that strictly contains
// it, or, for top-level components, is dropped as the chart's unbounded
// region.
func buildFaces(p *planarGraph, cycles []rawCycle, triArea float64, tol types.Tolerance) ([]face, error) {
	byComp := make(map[int][]int)
	for i, c := range cycles {
		byComp[c.comp] = append(byComp[c.comp], i)
	}

	hull := make(map[int]int) // component -> cycle index of its unbounded walk
	var faces []face
	faceCycle := make([]int, 0, len(cycles)) // face index -> cycle index

	comps := make([]int, 0, len(byComp))
	for comp := range byComp {
		comps = append(comps, comp)
	}
	sort.Ints(comps)

	for _, comp := range comps {
		ids := byComp[comp]
		negatives := make([]int, 0, 1)
		for _, id := range ids {
			if cycles[id].area < 0 {
				negatives = append(negatives, id)
			}
		}

		switch {
		case len(negatives) == 1:
			hull[comp] = negatives[0]
		default:
			// Inconsistent signs: fall back to the largest-area cycle.
			best, bestArea := -1, 0.0
			for _, id := range ids {
				if a := math.Abs(cycles[id].area); a > bestArea {
					best, bestArea = id, a
				}
			}
			if best < 0 {
				return nil, types.NewCodedError(codeUnboundedFace,
					"component %d has no identifiable unbounded cycle", comp)
			}
			hull[comp] = best
		}

		for _, id := range ids {
			if id == hull[comp] {
				continue
			}
			faces = append(faces, face{
				outer: ccwRing(cycles[id].verts, cycles[id].area),
				area:  math.Abs(cycles[id].area),
			})
			faceCycle = append(faceCycle, id)
		}
	}

	// Assign each component hull as a hole of the smallest containing
	// face of another component. Containment of the sample alone is not
	// enough: a face smaller than the hull cannot contain it, it lies
	// inside the hull's component instead.
	for _, comp := range comps {
		id := hull[comp]
		hullArea := math.Abs(cycles[id].area)
		ring := ccwRing(cycles[id].verts, cycles[id].area)
		sample := interiorPoint(p.ring(ring))

		best, bestArea := -1, math.Inf(1)
		for fi := range faces {
			if cycles[faceCycle[fi]].comp == comp {
				continue
			}
			if faces[fi].area < hullArea {
				continue
			}
			if polygon.PointInPolygon(sample, p.ring(faces[fi].outer)) != polygon.Inside {
				continue
			}
			if faces[fi].area < bestArea {
				best, bestArea = fi, faces[fi].area
			}
		}
		if best >= 0 {
			faces[best].holes = append(faces[best].holes, ring)
			faces[best].area -= math.Abs(cycles[id].area)
		}
	}

	// Drop faces that collapsed to nothing.
	kept := faces[:0]
	for _, f := range faces {
		if math.Abs(f.area) > tol.Area {
			kept = append(kept, f)
		}
	}
	faces = kept

	for _, f := range faces {
		if len(f.holes) == 0 {
			continue
		}
		holeRings := make([][]types.Point, len(f.holes))
		for i, h := range f.holes {
			holeRings[i] = p.ring(h)
		}
		if err := pslg.ValidateLoops(p.ring(f.outer), holeRings, tol.Merge()); err != nil {
			return nil, types.NewCodedError(codeFaceInvalid,
				"face %v: %v", f.outer, err)
		}
	}

	total := 0.0
	for _, f := range faces {
		total += f.area
	}
	if math.Abs(total-triArea) > areaBudget(triArea, tol) {
		return nil, types.NewCodedError(codeAreaMismatch,
			"interior faces cover %g of triangle area %g; faces: %v", total, triArea, faceVertexIDs(faces))
	}

	return faces, nil
}

// areaBudget is the acceptable drift between the triangle's chart area
// and the sum of its interior faces.
func areaBudget(triArea float64, tol types.Tolerance) float64 {
	return math.Max(10*tol.Area, 1e-9*triArea)
}

func faceVertexIDs(faces []face) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = f.outer
	}
	return out
}

// ccwRing normalizes a walked cycle to CCW orientation given its signed
// area as walked.
func ccwRing(verts []int, area float64) []int {
	ring := append([]int(nil), verts...)
	if area < 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	return ring
}

// interiorPoint returns a point strictly inside a simple CCW polygon.
//
// It picks the leftmost vertex, the lowest on ties (always convex), forms the ear
// triangle with its neighbors, and either uses that ear's centroid or,
// when another vertex intrudes into the ear, the midpoint toward the
// deepest intruder.
func interiorPoint(ring []types.Point) types.Point {
	n := len(ring)
	if n == 0 {
		return types.Point{}
	}
	if n < 3 {
		return ring[0]
	}

	v := 0
	for i := 1; i < n; i++ {
		if ring[i].X < ring[v].X || (ring[i].X == ring[v].X && ring[i].Y < ring[v].Y) {
			v = i
		}
	}
	a := ring[(v+n-1)%n]
	b := ring[v]
	c := ring[(v+1)%n]

	deepest := -1
	deepestDist := 0.0
	for i := 0; i < n; i++ {
		if i == v || i == (v+n-1)%n || i == (v+1)%n {
			continue
		}
		q := ring[i]
		if geometry.Area2(a, b, q) > 0 && geometry.Area2(b, c, q) > 0 && geometry.Area2(c, a, q) > 0 {
			if d := geometry.DistancePointSegment(q, a, c); deepest < 0 || d > deepestDist {
				deepest, deepestDist = i, d
			}
		}
	}

	if deepest < 0 {
		return types.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	q := ring[deepest]
	return types.Point{X: (b.X + q.X) / 2, Y: (b.Y + q.Y) / 2}
}
