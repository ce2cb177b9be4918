package boolean

import (
	"context"

	"github.com/iceisfun/solidmesh/classify"
	"github.com/iceisfun/solidmesh/cutter"
	"github.com/iceisfun/solidmesh/graph"
	"github.com/iceisfun/solidmesh/intersections"
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/types"
)

// Published error codes for input validation and cancellation.
const (
	codeEmptyMesh    = "BP01.INPUT.EMPTY_MESH"
	codeNonFinite    = "BP01.INPUT.NONFINITE_COORDINATE"
	codeBadTolerance = "BP01.INPUT.BAD_TOLERANCE"
	codeCancelled    = "BP00.CANCELLED"
)

// Execute evaluates the boolean operation on two closed, consistently
// wound meshes and returns the assembled result mesh.
//
// The kernel is deterministic per input and keeps no state across
// calls.
func Execute(a, b *mesh.Mesh, op Operation, tol types.Tolerance) (*mesh.Mesh, error) {
	return ExecuteContext(context.Background(), a, b, op, tol)
}

// ExecuteContext is Execute with cancellation, checked only at stage
// boundaries.
func ExecuteContext(ctx context.Context, a, b *mesh.Mesh, op Operation, tol types.Tolerance) (*mesh.Mesh, error) {
	if a == nil || a.NumTriangles() == 0 {
		return nil, types.NewCodedError(codeEmptyMesh, "mesh A is nil or empty")
	}
	if b == nil || b.NumTriangles() == 0 {
		return nil, types.NewCodedError(codeEmptyMesh, "mesh B is nil or empty")
	}
	if !tol.Validate() {
		return nil, types.NewCodedError(codeBadTolerance,
			"tolerance bundle %+v must be finite and strictly positive", tol)
	}

	diag := newDiagnostics()

	if err := stageGate(ctx); err != nil {
		return nil, err
	}
	found, err := intersections.Find(a, b, tol)
	if err != nil {
		return nil, err
	}

	if err := stageGate(ctx); err != nil {
		return nil, err
	}
	g, err := graph.Build(found, tol)
	if err != nil {
		return nil, err
	}

	loops, err := g.Loops()
	if err != nil {
		return nil, err
	}
	diag.loops(len(loops))

	if err := stageGate(ctx); err != nil {
		return nil, err
	}
	patchesA, err := cutter.CutMesh(a, types.SideA, g, tol)
	if err != nil {
		return nil, err
	}
	patchesB, err := cutter.CutMesh(b, types.SideB, g, tol)
	if err != nil {
		return nil, err
	}
	diag.patches("cutter:A", patchesA)
	diag.patches("cutter:B", patchesB)

	if err := stageGate(ctx); err != nil {
		return nil, err
	}
	taggedA, err := classify.ClassifyPatches(patchesA, b, tol)
	if err != nil {
		return nil, err
	}
	taggedB, err := classify.ClassifyPatches(patchesB, a, tol)
	if err != nil {
		return nil, err
	}

	if err := stageGate(ctx); err != nil {
		return nil, err
	}
	selected := selectPatches(op, taggedA, taggedB)
	diag.patches("selector", selected)

	if err := stageGate(ctx); err != nil {
		return nil, err
	}
	out, err := assemble(selected, g, tol)
	if err != nil {
		return nil, err
	}
	diag.mesh("assembler", out)

	return out, nil
}

func stageGate(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return types.WrapCoded(codeCancelled, ctx.Err())
	default:
		return nil
	}
}
