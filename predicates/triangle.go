package predicates

import (
	"math"

	"github.com/iceisfun/solidmesh/types"
)

// TriangleNormal returns the (unnormalized) normal of triangle (a,b,c).
// Its length is twice the triangle area.
func TriangleNormal(a, b, c types.Vector) types.Vector {
	return b.Sub(a).Cross(c.Sub(a))
}

// TriangleArea returns the unsigned area of triangle (a,b,c).
func TriangleArea(a, b, c types.Vector) float64 {
	return TriangleNormal(a, b, c).Norm() / 2
}

// LongestEdge returns the length of the longest edge of triangle (a,b,c).
func LongestEdge(a, b, c types.Vector) float64 {
	return math.Max(a.Distance(b), math.Max(b.Distance(c), c.Distance(a)))
}

// Centroid returns the centroid of triangle (a,b,c).
func Centroid(a, b, c types.Vector) types.Vector {
	return types.Vector{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}

// BarycentricOf computes the barycentric coordinates of p with respect to
// triangle (a,b,c). The point is implicitly projected onto the triangle's
// plane; callers that care about out-of-plane distance test it separately
// through PlaneOf.
//
// Degenerate triangles yield coordinates concentrated at corner a.
func BarycentricOf(p, a, b, c types.Vector) types.Barycentric {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return types.Barycentric{U: 1}
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	return types.Barycentric{U: 1 - v - w, V: v, W: w}
}

// PointInTriangle reports whether p lies on triangle (a,b,c): within the
// plane-side epsilon of its plane and with barycentric coordinates inside
// the triangle up to the scaled barycentric epsilon. The barycentric
// coordinates of p are returned for reuse.
func PointInTriangle(p, a, b, c types.Vector, tol types.Tolerance) (types.Barycentric, bool) {
	pl, ok := PlaneOf(a, b, c)
	if !ok {
		return types.Barycentric{}, false
	}
	if math.Abs(pl.Distance(p)) > tol.PlaneSide() {
		return types.Barycentric{}, false
	}
	bary := BarycentricOf(p, a, b, c)
	return bary, bary.Inside(tol.BaryInside(LongestEdge(a, b, c)))
}

// SnapBarycentric snaps near-boundary barycentric coordinates onto the
// boundary: weights within eps of 0 or 1 are clamped exactly, and the
// triple is renormalized to sum to 1.
//
// A point within the distance epsilon of an edge thereby lands exactly on
// that edge; within the epsilon of a corner, exactly on the corner.
func SnapBarycentric(bary types.Barycentric, eps float64) types.Barycentric {
	w := [3]float64{bary.U, bary.V, bary.W}
	for i := range w {
		if math.Abs(w[i]) <= eps {
			w[i] = 0
		}
		if math.Abs(w[i]-1) <= eps {
			w[i] = 1
		}
	}
	sum := w[0] + w[1] + w[2]
	if sum == 0 {
		return types.Barycentric{U: 1}
	}
	return types.Barycentric{U: w[0] / sum, V: w[1] / sum, W: w[2] / sum}
}
