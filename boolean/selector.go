package boolean

import (
	"github.com/iceisfun/solidmesh/classify"
	"github.com/iceisfun/solidmesh/cutter"
	"github.com/iceisfun/solidmesh/types"
)

// decision is one cell of the selection table.
type decision struct {
	keep    bool
	reverse bool
}

// selectPatches applies the operation's selection table to both tagged
// patch sets and returns the surviving patches, with winding already
// reversed where the table demands it.
func selectPatches(op Operation, taggedA, taggedB []classify.Tagged) []cutter.Patch {
	var out []cutter.Patch
	for _, set := range [2][]classify.Tagged{taggedA, taggedB} {
		for i := range set {
			d := decide(op, set[i].Side, &set[i])
			if !d.keep {
				continue
			}
			patch := set[i].Patch
			if d.reverse {
				patch = patch.Reversed()
			}
			out = append(out, patch)
		}
	}
	return out
}

// decide indexes the selection table by (operation, side, label).
//
// Coincident faces get special rows. A face shared with the same winding
// exists once on each side; exactly one copy (the A copy) survives for
// union and intersection so the face is not doubled, and none survives
// for the differences. A mirrored shared face separates the two solids;
// it belongs to the boundary of a difference that keeps its solid, and
// is discarded everywhere else.
func decide(op Operation, side types.Side, tag *classify.Tagged) decision {
	if tag.Label == classify.On {
		return decideOn(op, side, tag.SameWinding)
	}

	switch op {
	case Union:
		return decision{keep: tag.Label == classify.Outside}
	case Intersection:
		return decision{keep: tag.Label == classify.Inside}
	case DifferenceAB:
		if side == types.SideA {
			return decision{keep: tag.Label == classify.Outside}
		}
		inside := tag.Label == classify.Inside
		return decision{keep: inside, reverse: inside}
	case DifferenceBA:
		if side == types.SideB {
			return decision{keep: tag.Label == classify.Outside}
		}
		inside := tag.Label == classify.Inside
		return decision{keep: inside, reverse: inside}
	case SymmetricDifference:
		if tag.Label == classify.Outside {
			return decision{keep: true}
		}
		return decision{keep: tag.Label == classify.Inside, reverse: true}
	default:
		return decision{}
	}
}

func decideOn(op Operation, side types.Side, sameWinding bool) decision {
	switch op {
	case Union, Intersection:
		// Keep a single copy of same-winding shared faces.
		return decision{keep: sameWinding && side == types.SideA}
	case DifferenceAB:
		// A mirrored shared face stays part of A's boundary: B lies
		// entirely beyond it and removes nothing on A's side.
		return decision{keep: !sameWinding && side == types.SideA}
	case DifferenceBA:
		return decision{keep: !sameWinding && side == types.SideB}
	default:
		// Symmetric difference drops all coincident faces: shared
		// same-winding faces bound both solids alike, and mirrored
		// faces separate solids whose union is kept without them.
		return decision{}
	}
}
