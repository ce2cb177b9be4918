package boolean

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/iceisfun/solidmesh/cutter"
	"github.com/iceisfun/solidmesh/formatting"
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/types"
	"github.com/iceisfun/solidmesh/validation"
)

// EnvDiagnostics is the environment variable that, when set to "1",
// makes the pipeline emit textual diagnostics at each checkpoint.
const EnvDiagnostics = "SOLIDMESH_DIAG"

// diagnostics is a pure observer: it never changes any result.
type diagnostics struct {
	w io.Writer
}

func newDiagnostics() *diagnostics {
	if os.Getenv(EnvDiagnostics) != "1" {
		return &diagnostics{}
	}
	return &diagnostics{w: os.Stderr}
}

func (d *diagnostics) enabled() bool {
	return d.w != nil
}

func (d *diagnostics) patches(checkpoint string, patches []cutter.Patch) {
	if !d.enabled() {
		return
	}

	verts := make(map[types.Vector]struct{})
	for i := range patches {
		for _, v := range patches[i].Vertices {
			verts[v] = struct{}{}
		}
	}
	fmt.Fprintf(d.w, "[%s] patches=%d distinct-vertices=%d\n", checkpoint, len(patches), len(verts))
}

func (d *diagnostics) mesh(checkpoint string, m *mesh.Mesh) {
	if !d.enabled() {
		return
	}

	counts := m.EdgeUseCounts()
	hist := validation.EdgeUseHistogram(counts)

	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	fmt.Fprintf(d.w, "[%s] vertices=%d triangles=%d edge-use={", checkpoint, m.NumVertices(), m.NumTriangles())
	for i, k := range keys {
		if i > 0 {
			fmt.Fprint(d.w, " ")
		}
		fmt.Fprintf(d.w, "%d:%d", k, hist[k])
	}
	fmt.Fprintln(d.w, "}")

	for _, e := range validation.NonManifoldEdges(counts) {
		fmt.Fprintf(d.w, "[%s]   non-manifold %s %s-%s used %d times\n",
			checkpoint,
			formatting.EdgeString(e),
			formatting.VectorString(m.GetVertex(e.V1())),
			formatting.VectorString(m.GetVertex(e.V2())),
			counts[e])
	}
}

func (d *diagnostics) loops(count int) {
	if !d.enabled() {
		return
	}
	fmt.Fprintf(d.w, "[topology] intersection-loops=%d\n", count)
}
