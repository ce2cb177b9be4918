package predicates

import (
	"math"

	"github.com/iceisfun/solidmesh/types"
)

// CoplanarOverlapArea computes the area of overlap between two coplanar
// triangles by projecting both into the 2D chart that drops the dominant
// axis of the shared normal and clipping one against the other with the
// Sutherland–Hodgman algorithm.
//
// The returned value is the true 3D area (the projected area corrected by
// the foreshortening of the dropped axis).
func CoplanarOverlapArea(av, bv [3]types.Vector, normal types.Vector, tol types.Tolerance) float64 {
	axis, scale := dominantAxis(normal)
	if scale == 0 {
		return 0
	}

	var pa, pb [3]types.Point
	for i := 0; i < 3; i++ {
		pa[i] = dropAxis(av[i], axis)
		pb[i] = dropAxis(bv[i], axis)
	}

	poly := triangleClip(pa, pb, tol.PlaneSide())
	if len(poly) < 3 {
		return 0
	}
	return math.Abs(polygonArea(poly)) / scale
}

// dominantAxis returns the axis index with the largest |normal| component
// and the foreshortening factor |n_axis|/|n| of the projection.
func dominantAxis(n types.Vector) (int, float64) {
	norm := n.Norm()
	if norm == 0 {
		return 2, 0
	}
	ax, mag := 0, math.Abs(n.X)
	if a := math.Abs(n.Y); a > mag {
		ax, mag = 1, a
	}
	if a := math.Abs(n.Z); a > mag {
		ax, mag = 2, a
	}
	return ax, mag / norm
}

func dropAxis(v types.Vector, axis int) types.Point {
	switch axis {
	case 0:
		return types.Point{X: v.Y, Y: v.Z}
	case 1:
		return types.Point{X: v.Z, Y: v.X}
	default:
		return types.Point{X: v.X, Y: v.Y}
	}
}

// triangleClip clips triangle a against triangle b and returns the
// intersection polygon. Both triangles are normalized to CCW winding
// first; clipping against each edge of b in turn.
func triangleClip(a, b [3]types.Point, eps float64) []types.Point {
	subject := ccwTriangle(a)
	clip := ccwTriangle(b)

	for i := 0; i < 3; i++ {
		subject = clipAgainstEdge(subject, clip[i], clip[(i+1)%3], eps)
		if len(subject) == 0 {
			return nil
		}
	}
	return subject
}

func ccwTriangle(t [3]types.Point) []types.Point {
	poly := []types.Point{t[0], t[1], t[2]}
	if polygonArea(poly) < 0 {
		poly[1], poly[2] = poly[2], poly[1]
	}
	return poly
}

func clipAgainstEdge(poly []types.Point, e0, e1 types.Point, eps float64) []types.Point {
	if len(poly) == 0 {
		return nil
	}

	var out []types.Point
	for i := 0; i < len(poly); i++ {
		cur := poly[i]
		prev := poly[(i+len(poly)-1)%len(poly)]

		curIn := leftOfEdge(cur, e0, e1, eps)
		prevIn := leftOfEdge(prev, e0, e1, eps)

		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, edgeCrossing(prev, cur, e0, e1), cur)
		case !curIn && prevIn:
			out = append(out, edgeCrossing(prev, cur, e0, e1))
		}
	}
	return out
}

func leftOfEdge(p, e0, e1 types.Point, eps float64) bool {
	return (e1.X-e0.X)*(p.Y-e0.Y)-(e1.Y-e0.Y)*(p.X-e0.X) >= -eps
}

// edgeCrossing intersects segment [a,b] with the infinite line through
// [e0,e1]. Near-parallel segments fall back to the midpoint.
func edgeCrossing(a, b, e0, e1 types.Point) types.Point {
	d1 := b.Sub(a)
	d2 := e1.Sub(e0)
	den := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(den) < 1e-30 {
		return types.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	t := ((e0.X-a.X)*d2.Y - (e0.Y-a.Y)*d2.X) / den
	return types.Point{X: a.X + t*d1.X, Y: a.Y + t*d1.Y}
}

func polygonArea(poly []types.Point) float64 {
	area := 0.0
	for i := 0; i < len(poly); i++ {
		j := (i + 1) % len(poly)
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}
