package mesh

import (
	"errors"

	"github.com/iceisfun/solidmesh/types"
	"github.com/iceisfun/solidmesh/validation"
)

// AddTriangle adds a triangle to the mesh with validation.
func (m *Mesh) AddTriangle(v1, v2, v3 types.VertexID) error {
	if !m.IsValidVertexID(v1) || !m.IsValidVertexID(v2) || !m.IsValidVertexID(v3) {
		return ErrInvalidVertexID
	}
	if v1 == v2 || v2 == v3 || v1 == v3 {
		return ErrDegenerateTriangle
	}

	tri := types.NewTriangle(v1, v2, v3)
	a := m.vertices[v1]
	b := m.vertices[v2]
	c := m.vertices[v3]

	if err := validation.ValidateTriangle(tri, a, b, c, m.validationConfig(), m); err != nil {
		return m.translateValidationError(err)
	}

	m.triangles = append(m.triangles, tri)
	m.triangleSet[validation.CanonicalTriangleKey(tri)] = tri

	return nil
}

func (m *Mesh) validationConfig() validation.Config {
	return validation.Config{
		Epsilon:                  m.cfg.epsilon,
		AreaEpsilon:              m.cfg.areaEpsilon,
		ErrorOnDuplicateTriangle: m.cfg.errorOnDuplicateTriangle,
		ErrorOnOpposingDuplicate: m.cfg.errorOnOpposingDuplicate,
	}
}

func (m *Mesh) translateValidationError(err error) error {
	errs := validation.Errors()
	switch {
	case errors.Is(err, errs.Degenerate):
		return ErrDegenerateTriangle
	case errors.Is(err, errs.Duplicate):
		return ErrDuplicateTriangle
	case errors.Is(err, errs.OpposingDuplicate):
		return ErrOpposingWindingDuplicate
	case errors.Is(err, errs.NonFinite):
		return ErrNonFiniteCoordinate
	default:
		return err
	}
}
