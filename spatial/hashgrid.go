package spatial

import (
	"math"

	"github.com/iceisfun/solidmesh/types"
)

// HashGrid implements Index using a uniform voxel hash grid.
//
// Vertices land in the voxel ⌊x/cell⌋,⌊y/cell⌋,⌊z/cell⌋; queries with a
// radius no larger than the cell size touch at most the 3×3×3 voxel
// neighborhood of the query point.
type HashGrid struct {
	cellSize float64
	cells    map[[3]int][]types.VertexID
}

// NewHashGrid creates a hash grid index with the given cell size.
func NewHashGrid(cellSize float64) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[[3]int][]types.VertexID),
	}
}

// FindVerticesNear returns vertices in voxels overlapping the query radius.
func (h *HashGrid) FindVerticesNear(p types.Vector, radius float64) []types.VertexID {
	if radius < 0 {
		radius = 0
	}

	if radius == 0 {
		cell := h.pointToCell(p)
		return append([]types.VertexID(nil), h.cells[cell]...)
	}

	min := h.pointToCell(types.Vector{X: p.X - radius, Y: p.Y - radius, Z: p.Z - radius})
	max := h.pointToCell(types.Vector{X: p.X + radius, Y: p.Y + radius, Z: p.Z + radius})

	var result []types.VertexID
	for cz := min[2]; cz <= max[2]; cz++ {
		for cy := min[1]; cy <= max[1]; cy++ {
			for cx := min[0]; cx <= max[0]; cx++ {
				if vertices, ok := h.cells[[3]int{cx, cy, cz}]; ok {
					result = append(result, vertices...)
				}
			}
		}
	}

	return result
}

// AddVertex adds a vertex to the appropriate voxel.
func (h *HashGrid) AddVertex(id types.VertexID, p types.Vector) {
	cell := h.pointToCell(p)
	h.cells[cell] = append(h.cells[cell], id)
}

// Build is a no-op for hash grid (incremental structure).
func (h *HashGrid) Build() {}

func (h *HashGrid) pointToCell(p types.Vector) [3]int {
	return [3]int{
		int(math.Floor(p.X / h.cellSize)),
		int(math.Floor(p.Y / h.cellSize)),
		int(math.Floor(p.Z / h.cellSize)),
	}
}
