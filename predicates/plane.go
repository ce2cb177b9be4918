package predicates

import (
	"github.com/iceisfun/solidmesh/types"
)

// Plane represents an oriented plane in Hessian normal form: a point p
// lies on the plane when Normal·p = Offset. Normal has unit length.
type Plane struct {
	Normal types.Vector
	Offset float64
}

// PlaneOf constructs the supporting plane of triangle (a,b,c) with the
// normal oriented by the triangle's winding. The second return value is
// false when the triangle is degenerate (near-zero area).
func PlaneOf(a, b, c types.Vector) (Plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Norm2() == 0 {
		return Plane{}, false
	}
	n = n.Normalize()
	return Plane{Normal: n, Offset: n.Dot(a)}, true
}

// Distance returns the signed distance from p to the plane. Positive
// values lie on the side the normal points into.
func (pl Plane) Distance(p types.Vector) float64 {
	return pl.Normal.Dot(p) - pl.Offset
}

// Side classifies p against the plane: +1 above, -1 below, 0 within eps.
func (pl Plane) Side(p types.Vector, eps float64) int {
	d := pl.Distance(p)
	switch {
	case d > eps:
		return 1
	case d < -eps:
		return -1
	default:
		return 0
	}
}
