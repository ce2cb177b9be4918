package intersections

import (
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/predicates"
	"github.com/iceisfun/solidmesh/spatial"
	"github.com/iceisfun/solidmesh/types"
)

// PairPoint is one intersection point generated by a triangle pair,
// carrying barycentric coordinates on both generating triangles.
type PairPoint struct {
	Position types.Vector
	OnA      types.Barycentric
	OnB      types.Barycentric
}

// PairSegment is the intersection segment of one (A-triangle, B-triangle)
// pair: two points lying on both triangles.
type PairSegment struct {
	ATriangle int
	BTriangle int
	Start     PairPoint
	End       PairPoint
}

// CoincidentFace records a coplanar, vertex-identical triangle pair.
// Such pairs contribute no cutting evidence. The graph keeps them, but
// classification does not consult them; it recognizes the shared face
// by its own sampling.
type CoincidentFace struct {
	ATriangle   int
	BTriangle   int
	SameWinding bool
}

// Result is the full output of the intersection finder.
type Result struct {
	Segments   []PairSegment
	Coincident []CoincidentFace
}

// IsEmpty reports whether the two surfaces do not intersect at all.
func (r *Result) IsEmpty() bool {
	return len(r.Segments) == 0 && len(r.Coincident) == 0
}

// codeCoplanarUnsupported is published for coplanar overlaps that are
// neither negligible nor an identical shared face.
const codeCoplanarUnsupported = "BP02.INTERSECTION.COPLANAR_UNSUPPORTED"

// Find discovers all triangle-pair intersections between meshes a and b.
//
// Broad phase: a bounding-volume tree over b's triangles queried with
// each a-triangle's box, expanded by the distance epsilon. Narrow phase:
// plane clipping via predicates.TriTriIntersect. Pairs with disjoint
// boxes produce nothing.
//
// Coplanar pairs that overlap by more than the area epsilon are only
// supported when the two triangles are vertex-identical (a face shared
// by both solids); any larger partial overlap fails with a coded error.
func Find(a, b *mesh.Mesh, tol types.Tolerance) (*Result, error) {
	boxes := make([]types.Box, b.NumTriangles())
	for i := range boxes {
		b0, b1, b2 := b.GetTriangleCoords(i)
		boxes[i] = types.BoxFromPoints(b0, b1, b2)
	}
	tree := spatial.NewBVH(boxes)

	res := &Result{}
	for ai := 0; ai < a.NumTriangles(); ai++ {
		a0, a1, a2 := a.GetTriangleCoords(ai)
		query := types.BoxFromPoints(a0, a1, a2).Expanded(tol.Distance)

		for _, bi := range tree.QueryBox(query) {
			b0, b1, b2 := b.GetTriangleCoords(bi)

			hit := predicates.TriTriIntersect(a0, a1, a2, b0, b1, b2, tol)
			switch {
			case hit.Coplanar:
				if hit.OverlapArea <= tol.Area {
					continue
				}
				if !hit.Identical {
					return nil, types.NewCodedError(codeCoplanarUnsupported,
						"coplanar overlap of area %g between triangle A[%d] and B[%d]",
						hit.OverlapArea, ai, bi)
				}
				res.Coincident = append(res.Coincident, CoincidentFace{
					ATriangle:   ai,
					BTriangle:   bi,
					SameWinding: hit.SameWinding,
				})

			case len(hit.Points) == 2:
				if tangentialSegment(hit.Points[0], hit.Points[1]) {
					// The segment runs along a boundary edge of both
					// triangles; it cuts neither and is pure contact.
					continue
				}
				res.Segments = append(res.Segments, PairSegment{
					ATriangle: ai,
					BTriangle: bi,
					Start:     PairPoint(hit.Points[0]),
					End:       PairPoint(hit.Points[1]),
				})

			default:
				// A single touch point carries no cutting evidence.
			}
		}
	}

	return res, nil
}

// tangentialSegment reports whether the segment lies on a boundary edge
// of the A-triangle and on a boundary edge of the B-triangle at once.
// The barycentrics arrive snapped, so boundary weights are exact zeros.
func tangentialSegment(p, q predicates.TriTriPoint) bool {
	return sharedZeroWeight(p.OnA, q.OnA) && sharedZeroWeight(p.OnB, q.OnB)
}

func sharedZeroWeight(a, b types.Barycentric) bool {
	const eps = 1e-12
	aw := [3]float64{a.U, a.V, a.W}
	bw := [3]float64{b.U, b.V, b.W}
	for k := 0; k < 3; k++ {
		if aw[k] > -eps && aw[k] < eps && bw[k] > -eps && bw[k] < eps {
			return true
		}
	}
	return false
}
