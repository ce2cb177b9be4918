package predicates

import (
	"math"
	"sort"

	"github.com/iceisfun/solidmesh/types"
)

// TriTriPoint is a single intersection point between a triangle pair,
// carrying barycentric coordinates on both generating triangles.
type TriTriPoint struct {
	Position types.Vector
	OnA      types.Barycentric
	OnB      types.Barycentric
}

// TriTriResult describes the intersection of one triangle pair.
//
// In the generic transversal case Points holds at most two points; two
// points form the intersection segment. Coplanar pairs produce no points
// and instead report the overlap area of the projected triangles plus
// whether the pair is vertex-identical (a shared face between the two
// input surfaces).
type TriTriResult struct {
	Points []TriTriPoint

	Coplanar    bool
	OverlapArea float64
	Identical   bool
	SameWinding bool
}

// TriTriIntersect computes the intersection of triangles A=(a0,a1,a2) and
// B=(b0,b1,b2).
//
// The triangles intersect transversally when each crosses the other's
// supporting plane; the result is the overlap of the two plane-crossing
// segments along the common line. Points within the distance epsilon of a
// triangle edge or corner have their barycentric coordinates snapped onto
// that boundary feature.
func TriTriIntersect(a0, a1, a2, b0, b1, b2 types.Vector, tol types.Tolerance) TriTriResult {
	plA, okA := PlaneOf(a0, a1, a2)
	plB, okB := PlaneOf(b0, b1, b2)
	if !okA || !okB {
		return TriTriResult{}
	}

	eps := tol.PlaneSide()
	av := [3]types.Vector{a0, a1, a2}
	bv := [3]types.Vector{b0, b1, b2}

	var da, db [3]float64
	for i := 0; i < 3; i++ {
		da[i] = snapZero(plB.Distance(av[i]), eps)
		db[i] = snapZero(plA.Distance(bv[i]), eps)
	}

	if sameStrictSide(da) || sameStrictSide(db) {
		return TriTriResult{}
	}

	if da[0] == 0 && da[1] == 0 && da[2] == 0 {
		return coplanarResult(av, bv, plA, plB, tol)
	}

	segA := planeCrossing(av, da)
	segB := planeCrossing(bv, db)
	if len(segA) == 0 || len(segB) == 0 {
		return TriTriResult{}
	}

	dir := plA.Normal.Cross(plB.Normal)
	if dir.Norm2() == 0 {
		// Parallel but not coplanar planes cannot intersect.
		return TriTriResult{}
	}
	dir = dir.Normalize()

	loA, hiA := interval(segA, dir)
	loB, hiB := interval(segB, dir)

	lo := math.Max(loA.s, loB.s)
	hi := math.Min(hiA.s, hiB.s)
	if hi < lo-eps {
		return TriTriResult{}
	}

	first := pickBound(lo, loA, loB)
	second := pickBound(hi, hiA, hiB)

	points := []types.Vector{first}
	if second.Distance(first) > tol.Merge() {
		points = append(points, second)
	}

	res := TriTriResult{}
	baryEpsA := tol.BaryInside(LongestEdge(a0, a1, a2))
	baryEpsB := tol.BaryInside(LongestEdge(b0, b1, b2))
	for _, p := range points {
		res.Points = append(res.Points, TriTriPoint{
			Position: p,
			OnA:      SnapBarycentric(BarycentricOf(p, a0, a1, a2), baryEpsA),
			OnB:      SnapBarycentric(BarycentricOf(p, b0, b1, b2), baryEpsB),
		})
	}
	return res
}

func snapZero(d, eps float64) float64 {
	if math.Abs(d) <= eps {
		return 0
	}
	return d
}

func sameStrictSide(d [3]float64) bool {
	return (d[0] > 0 && d[1] > 0 && d[2] > 0) ||
		(d[0] < 0 && d[1] < 0 && d[2] < 0)
}

// planeCrossing returns the points where the triangle meets the plane the
// distances d were measured against: vertices lying on the plane plus
// interpolated edge crossings. At most two distinct points result.
func planeCrossing(v [3]types.Vector, d [3]float64) []types.Vector {
	var pts []types.Vector
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			pts = append(pts, v[i])
		}
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if d[i]*d[j] < 0 {
			t := d[i] / (d[i] - d[j])
			pts = append(pts, v[i].Add(v[j].Sub(v[i]).Scale(t)))
		}
	}
	return pts
}

type linePoint struct {
	s float64
	p types.Vector
}

// interval projects crossing points onto the line direction and returns
// the extreme pair.
func interval(pts []types.Vector, dir types.Vector) (lo, hi linePoint) {
	proj := make([]linePoint, len(pts))
	for i, p := range pts {
		proj[i] = linePoint{s: dir.Dot(p), p: p}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].s < proj[j].s })
	return proj[0], proj[len(proj)-1]
}

// pickBound returns the crossing point whose projection produced the
// bound, avoiding a lossy reconstruction along the line.
func pickBound(s float64, a, b linePoint) types.Vector {
	if math.Abs(a.s-s) <= math.Abs(b.s-s) {
		return a.p
	}
	return b.p
}

func coplanarResult(av, bv [3]types.Vector, plA, plB Plane, tol types.Tolerance) TriTriResult {
	res := TriTriResult{
		Coplanar:    true,
		SameWinding: plA.Normal.Dot(plB.Normal) > 0,
		OverlapArea: CoplanarOverlapArea(av, bv, plA.Normal, tol),
	}
	res.Identical = trianglesIdentical(av, bv, tol.Merge())
	return res
}

// trianglesIdentical reports whether the two vertex triples match
// pairwise within eps, in any rotation or reflection.
func trianglesIdentical(av, bv [3]types.Vector, eps float64) bool {
	matched := [3]bool{}
	for i := 0; i < 3; i++ {
		found := false
		for j := 0; j < 3; j++ {
			if !matched[j] && av[i].Distance(bv[j]) <= eps {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
