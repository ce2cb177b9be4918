package predicates

import (
	"github.com/iceisfun/solidmesh/types"
)

// RayTriangle intersects the ray origin + t*dir with triangle (a,b,c)
// using the Möller–Trumbore algorithm.
//
// The determinant guard detEps rejects rays nearly parallel to the
// triangle plane, and hits with t <= minT are rejected so a ray starting
// on a surface does not immediately hit it. Barycentric bounds are tested
// with baryEps slack on each side.
//
// Returns the hit parameter t and whether a hit occurred.
func RayTriangle(origin, dir, a, b, c types.Vector, detEps, baryEps, minT float64) (float64, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -detEps && det < detEps {
		return 0, false
	}
	inv := 1 / det

	s := origin.Sub(a)
	u := s.Dot(p) * inv
	if u < -baryEps || u > 1+baryEps {
		return 0, false
	}

	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < -baryEps || u+v > 1+baryEps {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t <= minT {
		return 0, false
	}
	return t, true
}
