package mesh

import (
	"fmt"

	"github.com/iceisfun/solidmesh/types"
	"github.com/iceisfun/solidmesh/validation"
)

// EdgeUseCounts tallies how many triangles use each undirected edge.
func (m *Mesh) EdgeUseCounts() map[types.Edge]int {
	return validation.EdgeUseCounts(m.triangles)
}

// EdgeUseHistogram maps a use count to the number of edges with that count.
func (m *Mesh) EdgeUseHistogram() map[int]int {
	return validation.EdgeUseHistogram(m.EdgeUseCounts())
}

// NonManifoldEdges returns every edge not used by exactly two triangles.
func (m *Mesh) NonManifoldEdges() []types.Edge {
	return validation.NonManifoldEdges(m.EdgeUseCounts())
}

// IsClosed reports whether every edge is used by exactly two triangles.
func (m *Mesh) IsClosed() bool {
	return len(m.NonManifoldEdges()) == 0
}

// Validate checks the mesh invariants for a closed manifold surface.
func (m *Mesh) Validate() error {
	if len(m.triangles) == 0 {
		return ErrEmptyMesh
	}
	if err := validation.ValidateManifold(m.triangles); err != nil {
		return fmt.Errorf("%w: %v", ErrNotManifold, err)
	}
	return nil
}
