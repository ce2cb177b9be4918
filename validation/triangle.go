package validation

import (
	"errors"

	"github.com/iceisfun/solidmesh/predicates"
	"github.com/iceisfun/solidmesh/types"
)

// Config captures validation options required for triangle checks.
type Config struct {
	Epsilon                  float64
	AreaEpsilon              float64
	ErrorOnDuplicateTriangle bool
	ErrorOnOpposingDuplicate bool
}

// MeshProvider exposes the minimal mesh functionality needed for validation.
type MeshProvider interface {
	NumVertices() int
	GetVertex(types.VertexID) types.Vector
	HasTriangleWithKey([3]types.VertexID) (types.Triangle, bool)
}

var (
	// errTriangleDegenerate indicates the triangle has near-zero area.
	errTriangleDegenerate = errors.New("validation: degenerate triangle")
	// errTriangleDuplicate indicates a duplicate triangle (any winding).
	errTriangleDuplicate = errors.New("validation: duplicate triangle")
	// errTriangleOpposingDuplicate indicates opposing winding duplicate.
	errTriangleOpposingDuplicate = errors.New("validation: opposing winding duplicate")
	// errTriangleNonFinite indicates a vertex with NaN or Inf coordinates.
	errTriangleNonFinite = errors.New("validation: non-finite vertex coordinate")
)

// ValidateTriangle performs all enabled validation checks on a triangle.
func ValidateTriangle(tri types.Triangle, a, b, c types.Vector, cfg Config, mesh MeshProvider) error {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return errTriangleNonFinite
	}

	if predicates.TriangleArea(a, b, c) <= cfg.AreaEpsilon {
		return errTriangleDegenerate
	}

	key := CanonicalTriangleKey(tri)
	if cfg.ErrorOnDuplicateTriangle {
		if _, exists := mesh.HasTriangleWithKey(key); exists {
			return errTriangleDuplicate
		}
	}

	if cfg.ErrorOnOpposingDuplicate && !cfg.ErrorOnDuplicateTriangle {
		if existing, exists := mesh.HasTriangleWithKey(key); exists {
			exA := mesh.GetVertex(existing.V1())
			exB := mesh.GetVertex(existing.V2())
			exC := mesh.GetVertex(existing.V3())
			exNormal := predicates.TriangleNormal(exA, exB, exC)
			if predicates.TriangleNormal(a, b, c).Dot(exNormal) < 0 {
				return errTriangleOpposingDuplicate
			}
		}
	}

	return nil
}

// CanonicalTriangleKey returns a sorted key for duplicate detection.
func CanonicalTriangleKey(tri types.Triangle) [3]types.VertexID {
	v := [3]types.VertexID{tri.V1(), tri.V2(), tri.V3()}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	return v
}

// InternalErrors exposes the validation error sentinels for callers.
type InternalErrors struct {
	Degenerate        error
	Duplicate         error
	OpposingDuplicate error
	NonFinite         error
}

// Errors returns the error constants used by validation.
func Errors() InternalErrors {
	return InternalErrors{
		Degenerate:        errTriangleDegenerate,
		Duplicate:         errTriangleDuplicate,
		OpposingDuplicate: errTriangleOpposingDuplicate,
		NonFinite:         errTriangleNonFinite,
	}
}
