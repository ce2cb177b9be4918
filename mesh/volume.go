package mesh

// Volume returns the signed volume enclosed by the mesh, computed as the
// sum of signed tetrahedra spanned by each triangle and the origin.
//
// The result is positive for a closed surface with consistent outward
// winding; it is meaningless for open meshes.
func (m *Mesh) Volume() float64 {
	total := 0.0
	for _, tri := range m.triangles {
		a := m.vertices[tri.V1()]
		b := m.vertices[tri.V2()]
		c := m.vertices[tri.V3()]
		total += a.Dot(b.Cross(c))
	}
	return total / 6
}
