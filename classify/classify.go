// Package classify tags patches by containment of a representative point
// against the opposite closed surface, using parity ray-casting over a
// bounding-volume tree.
package classify

import (
	"math"

	"github.com/iceisfun/solidmesh/cutter"
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/predicates"
	"github.com/iceisfun/solidmesh/spatial"
	"github.com/iceisfun/solidmesh/types"
)

// Containment is the three-valued label of a point against a closed
// surface.
type Containment int

const (
	// Outside means the point lies outside the surface.
	Outside Containment = iota
	// Inside means the point lies inside the surface.
	Inside
	// On means the point lies on the surface within tolerance.
	On
)

func (c Containment) String() string {
	switch c {
	case Inside:
		return "Inside"
	case On:
		return "On"
	default:
		return "Outside"
	}
}

// Tagged is a patch with its containment label. For an On patch,
// SameWinding reports whether the opposite mesh carries the coincident
// face with the same winding (true) or mirrored (false).
type Tagged struct {
	cutter.Patch
	Label       Containment
	SameWinding bool
}

// codeAmbiguous is published when ray classification stays ambiguous
// after all perturbation retries.
const codeAmbiguous = "BP05.CLASSIFY.AMBIGUOUS"

// rayDirections are the fixed non-axis-aligned directions tried in
// order; the primary is (1, π/10, e/10) normalized, chosen to make
// collinearity with mesh edges exceedingly unlikely.
var rayDirections = []types.Vector{
	{X: 1, Y: math.Pi / 10, Z: math.E / 10},
	{X: math.Pi / 10, Y: 1, Z: math.E / 10},
	{X: math.E / 10, Y: math.Pi / 10, Z: 1},
	{X: -1, Y: math.E / 10, Z: math.Pi / 10},
}

// Classifier answers containment queries against one closed mesh.
//
// The bounding-volume tree is built once; afterwards the classifier is
// read-only and safe for concurrent queries.
type Classifier struct {
	m      *mesh.Mesh
	tree   *spatial.BVH
	tol    types.Tolerance
	bounds types.Box
}

// NewClassifier indexes the mesh for containment queries.
func NewClassifier(m *mesh.Mesh, tol types.Tolerance) *Classifier {
	boxes := make([]types.Box, m.NumTriangles())
	for i := range boxes {
		a, b, c := m.GetTriangleCoords(i)
		boxes[i] = types.BoxFromPoints(a, b, c).Expanded(tol.Distance)
	}

	return &Classifier{
		m:      m,
		tree:   spatial.NewBVH(boxes),
		tol:    tol,
		bounds: m.Bounds(),
	}
}

// rayReach is a ray length guaranteed to pass beyond the whole mesh
// from the given origin.
func (c *Classifier) rayReach(origin types.Vector) float64 {
	return origin.Distance(c.bounds.Center()) + c.bounds.Size().Norm() + 1
}

// Classify labels point p against the surface.
//
// The On test snaps to the surface first: a bounding-box query of a
// small cube around p, then a robust point-in-triangle test on each
// candidate. Otherwise a parity ray decides: odd crossings mean Inside.
func (c *Classifier) Classify(p types.Vector) (Containment, error) {
	if c.isOnSurface(p) {
		return On, nil
	}

	for _, dir := range rayDirections {
		parity, ok := c.castRay(p, dir.Normalize())
		if !ok {
			continue
		}
		if parity%2 == 1 {
			return Inside, nil
		}
		return Outside, nil
	}

	return Outside, types.NewCodedError(codeAmbiguous,
		"ray classification of (%g, %g, %g) ambiguous after %d directions",
		p.X, p.Y, p.Z, len(rayDirections))
}

func (c *Classifier) isOnSurface(p types.Vector) bool {
	eps := c.tol.Distance
	cube := types.Box{Min: p, Max: p}.Expanded(2 * eps)
	for _, idx := range c.tree.QueryBox(cube) {
		a, b, tri := c.m.GetTriangleCoords(idx)
		if _, on := predicates.PointInTriangle(p, a, b, tri, c.tol); on {
			return true
		}
	}
	return false
}

// castRay counts proper crossings along origin + t*dir. The second
// return value is false when any hit is too close to a triangle edge or
// to the plane grazing threshold to trust the parity.
func (c *Classifier) castRay(origin, dir types.Vector) (int, bool) {
	eps := c.tol.Distance
	parity := 0
	for _, idx := range c.tree.QueryRay(origin, dir, c.rayReach(origin)) {
		a, b, tri := c.m.GetTriangleCoords(idx)

		t, hit := predicates.RayTriangle(origin, dir, a, b, tri, 1e-12, 0, eps)
		if hit {
			// Reject hits that graze an edge: the same crossing would be
			// double-counted through the neighboring triangle.
			bary := predicates.BarycentricOf(origin.Add(dir.Scale(t)), a, b, tri)
			edgeEps := c.tol.BaryInside(predicates.LongestEdge(a, b, tri)) * 4
			if nearBoundary(bary, edgeEps) {
				return 0, false
			}
			parity++
			continue
		}

		// A near-miss within the barycentric slack is equally untrustworthy.
		if _, loose := predicates.RayTriangle(origin, dir, a, b, tri, 1e-12, 1e-9, eps); loose {
			return 0, false
		}
	}
	return parity, true
}

func nearBoundary(b types.Barycentric, eps float64) bool {
	return math.Abs(b.U) <= eps || math.Abs(b.V) <= eps || math.Abs(b.W) <= eps
}
