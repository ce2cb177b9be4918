package mesh

import (
	"errors"

	"github.com/iceisfun/solidmesh/spatial"
	"github.com/iceisfun/solidmesh/types"
)

// NewMesh creates a new empty mesh with the given options.
func NewMesh(opts ...Option) *Mesh {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Mesh{
		vertices:    make([]types.Vector, 0, 64),
		triangles:   make([]types.Triangle, 0, 64),
		cfg:         cfg,
		triangleSet: make(map[[3]types.VertexID]types.Triangle),
	}

	if cfg.mergeVertices {
		m.vertexIndex = spatial.NewHashGrid(cfg.effectiveMergeDistance())
	}

	return m
}

// FromTriangles builds a mesh from a raw triangle soup, welding vertices
// within the merge distance into shared indices.
//
// Each element supplies the three corner coordinates of one triangle.
// Degenerate triangles are rejected unless WithSkipDegenerate is set.
func FromTriangles(soup [][3]types.Vector, opts ...Option) (*Mesh, error) {
	merged := append([]Option{WithMergeVertices(true)}, opts...)
	m := NewMesh(merged...)

	for _, corners := range soup {
		v1, err := m.AddVertex(corners[0])
		if err != nil {
			return nil, err
		}
		v2, err := m.AddVertex(corners[1])
		if err != nil {
			return nil, err
		}
		v3, err := m.AddVertex(corners[2])
		if err != nil {
			return nil, err
		}

		if err := m.AddTriangle(v1, v2, v3); err != nil {
			if m.cfg.skipDegenerate && errors.Is(err, ErrDegenerateTriangle) {
				continue
			}
			return nil, err
		}
	}

	return m, nil
}
