package cutter

import (
	"math"
	"sort"

	"github.com/iceisfun/solidmesh/algorithm/geometry"
	"github.com/iceisfun/solidmesh/algorithm/robust"
	"github.com/iceisfun/solidmesh/types"
)

// triangulateFace turns one face (outer ring plus holes, all CCW) into
// UV triangles expressed as local vertex index triples.
//
// Faces without holes are ear-clipped directly. Faces with holes are
// first stitched into a single simple polygon through bridges: each
// hole's representative vertex (smallest x, then smallest y) is joined
// to a visible ring vertex, and the ring walk descends into the hole and
// back through the bridge.
func triangulateFace(p *planarGraph, f face, tol types.Tolerance) ([][3]int, error) {
	ring := append([]int(nil), f.outer...)

	if len(f.holes) > 0 {
		// Process holes left to right for deterministic bridging.
		holes := append([][]int(nil), f.holes...)
		sort.Slice(holes, func(i, j int) bool {
			ri := p.verts[holeRepresentative(p, holes[i])].uv
			rj := p.verts[holeRepresentative(p, holes[j])].uv
			if ri.X != rj.X {
				return ri.X < rj.X
			}
			return ri.Y < rj.Y
		})

		for _, hole := range holes {
			stitched, err := stitchHole(p, ring, hole, holes)
			if err != nil {
				return nil, err
			}
			ring = stitched
		}
	}

	tris, err := earClip(p, ring, tol)
	if err != nil {
		return nil, err
	}

	// The triangulated area must match the face's declared area.
	total := 0.0
	for _, t := range tris {
		total += math.Abs(geometry.Area2(p.verts[t[0]].uv, p.verts[t[1]].uv, p.verts[t[2]].uv)) / 2
	}
	if math.Abs(total-f.area) > areaBudget(f.area, tol) {
		return nil, types.NewCodedError(codeAreaMismatch,
			"triangulation covers %g of face area %g", total, f.area)
	}

	return tris, nil
}

// holeRepresentative picks the hole vertex with smallest x, tie-broken
// by smallest y.
func holeRepresentative(p *planarGraph, hole []int) int {
	best := hole[0]
	for _, id := range hole[1:] {
		u, b := p.verts[id].uv, p.verts[best].uv
		if u.X < b.X || (u.X == b.X && u.Y < b.Y) {
			best = id
		}
	}
	return best
}

// stitchHole merges one hole into the ring through a bridge to a visible
// ring vertex. The hole, stored CCW, is traversed clockwise inside the
// stitched polygon so the combined ring stays simple and CCW.
func stitchHole(p *planarGraph, ring, hole []int, allHoles [][]int) ([]int, error) {
	rep := holeRepresentative(p, hole)
	repUV := p.verts[rep].uv

	// Candidate ring anchors, nearest first.
	candidates := make([]int, len(ring))
	for i := range ring {
		candidates[i] = i
	}
	sort.Slice(candidates, func(i, j int) bool {
		return p.verts[ring[candidates[i]]].uv.Distance(repUV) <
			p.verts[ring[candidates[j]]].uv.Distance(repUV)
	})

	for _, anchorPos := range candidates {
		anchor := ring[anchorPos]
		if anchor == rep {
			continue
		}
		if !bridgeVisible(p, rep, anchor, ring, allHoles) {
			continue
		}

		repIdx := indexOf(hole, rep)
		stitched := make([]int, 0, len(ring)+len(hole)+2)
		stitched = append(stitched, ring[:anchorPos+1]...)
		// Clockwise hole walk starting at the representative.
		for i := 0; i <= len(hole); i++ {
			stitched = append(stitched, hole[(repIdx-i%len(hole)+len(hole))%len(hole)])
		}
		stitched = append(stitched, ring[anchorPos:]...)
		return stitched, nil
	}

	return nil, types.NewCodedError(codeBridgeNotFound,
		"no visible bridge for hole vertex %d", rep)
}

// bridgeVisible tests that the bridge segment crosses neither the ring
// nor any hole, touching them only at its own endpoints.
func bridgeVisible(p *planarGraph, rep, anchor int, ring []int, holes [][]int) bool {
	a := p.verts[rep].uv
	b := p.verts[anchor].uv

	check := func(loop []int) bool {
		for i := 0; i < len(loop); i++ {
			u, v := loop[i], loop[(i+1)%len(loop)]
			if u == rep || v == rep || u == anchor || v == anchor {
				continue
			}
			if ok, _, _ := robust.SegmentIntersect(a, b, p.verts[u].uv, p.verts[v].uv); ok {
				return false
			}
		}
		return true
	}

	if !check(ring) {
		return false
	}
	for _, hole := range holes {
		if !check(hole) {
			return false
		}
	}
	return true
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// earClip triangulates a simple CCW polygon given as local vertex
// indices. Collinear ears are clipped without emitting a triangle.
func earClip(p *planarGraph, ring []int, tol types.Tolerance) ([][3]int, error) {
	work := append([]int(nil), ring...)
	var tris [][3]int

	for len(work) > 3 {
		clipped := false

		for i := 0; i < len(work); i++ {
			prev := work[(i+len(work)-1)%len(work)]
			cur := work[i]
			next := work[(i+1)%len(work)]

			a, b, c := p.verts[prev].uv, p.verts[cur].uv, p.verts[next].uv
			area2 := geometry.Area2(a, b, c)
			if area2 < 0 {
				continue // reflex
			}

			if containsAnyVertex(p, work, prev, cur, next) {
				continue
			}

			if area2/2 > tol.Area {
				tris = append(tris, [3]int{prev, cur, next})
			}
			work = append(work[:i], work[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			return nil, types.NewCodedError(codeEarNotFound,
				"no ear in polygon of %d vertices", len(work))
		}
	}

	a, b, c := p.verts[work[0]].uv, p.verts[work[1]].uv, p.verts[work[2]].uv
	if geometry.Area2(a, b, c)/2 > tol.Area {
		tris = append(tris, [3]int{work[0], work[1], work[2]})
	}

	return tris, nil
}

// containsAnyVertex reports whether any other ring vertex lies strictly
// inside the candidate ear.
func containsAnyVertex(p *planarGraph, ring []int, prev, cur, next int) bool {
	a, b, c := p.verts[prev].uv, p.verts[cur].uv, p.verts[next].uv
	for _, id := range ring {
		if id == prev || id == cur || id == next {
			continue
		}
		q := p.verts[id].uv
		if robust.Orient2D(a, b, q) > 0 &&
			robust.Orient2D(b, c, q) > 0 &&
			robust.Orient2D(c, a, q) > 0 {
			return true
		}
	}
	return false
}
