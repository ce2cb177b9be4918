package mesh

import (
	"fmt"
	"io"
	"sort"

	"github.com/iceisfun/solidmesh/formatting"
)

// Print writes a detailed representation of the mesh to the writer.
//
// The output includes:
//   - Number of vertices and triangles
//   - The edge-use histogram
//   - All vertex coordinates
//   - All triangles
//
// Example:
//
//	m.Print(os.Stdout)
func (m *Mesh) Print(w io.Writer) error {
	fmt.Fprintf(w, "Mesh Summary:\n")
	fmt.Fprintf(w, "  Vertices:  %d\n", m.NumVertices())
	fmt.Fprintf(w, "  Triangles: %d\n", m.NumTriangles())

	hist := m.EdgeUseHistogram()
	counts := make([]int, 0, len(hist))
	for c := range hist {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	fmt.Fprintf(w, "  Edge use:  ")
	for i, c := range counts {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "%dx:%d", c, hist[c])
	}
	fmt.Fprintf(w, "\n\n")

	if m.NumVertices() > 0 {
		fmt.Fprintf(w, "Vertices:\n")
		for i := 0; i < m.NumVertices(); i++ {
			fmt.Fprintf(w, "  [%d] %s\n", i, formatting.VectorString(m.vertices[i]))
		}
		fmt.Fprintf(w, "\n")
	}

	if m.NumTriangles() > 0 {
		fmt.Fprintf(w, "Triangles:\n")
		for i := 0; i < m.NumTriangles(); i++ {
			t := m.triangles[i]
			fmt.Fprintf(w, "  [%d] Triangle{%d, %d, %d}\n", i, t.V1(), t.V2(), t.V3())
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}
