package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/solidmesh/types"
)

// BoxString returns a concise string for a 3D bounding box.
func BoxString(box types.Box) string {
	return fmt.Sprintf("[%s-%s]", VectorString(box.Min), VectorString(box.Max))
}

// WriteBox writes a verbose representation of a box to a writer.
func WriteBox(w io.Writer, box types.Box) error {
	_, err := fmt.Fprintf(w, "Box{Min: %s, Max: %s}", VectorString(box.Min), VectorString(box.Max))
	return err
}
