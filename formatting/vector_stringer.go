package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/solidmesh/types"
)

// VectorString returns a concise string representation of a 3D vector.
func VectorString(v types.Vector) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z)
}

// WriteVector writes a verbose representation of a vector to a writer.
func WriteVector(w io.Writer, v types.Vector) error {
	_, err := fmt.Fprintf(w, "Vector{X: %v, Y: %v, Z: %v}", v.X, v.Y, v.Z)
	return err
}
