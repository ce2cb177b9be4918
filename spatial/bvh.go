package spatial

import (
	"math"
	"sort"

	"github.com/iceisfun/solidmesh/types"
)

const bvhLeafSize = 4

// BVH is a binary bounding-volume tree over a fixed set of item boxes.
//
// The tree is built once and is read-only afterwards, so concurrent
// queries are safe. Queries return candidate item indices; callers run
// their own narrow phase on the candidates.
type BVH struct {
	nodes []bvhNode
	items []int // permutation of item indices, grouped by leaf
	boxes []types.Box
}

type bvhNode struct {
	box   types.Box
	left  int // child node index, -1 for leaves
	right int
	start int // leaf item range in items
	count int
}

// NewBVH builds a tree over the supplied item boxes using median splits
// on the longest axis of each node's bounds.
func NewBVH(boxes []types.Box) *BVH {
	b := &BVH{
		items: make([]int, len(boxes)),
		boxes: append([]types.Box(nil), boxes...),
	}
	for i := range b.items {
		b.items[i] = i
	}
	if len(boxes) > 0 {
		b.buildNode(0, len(boxes))
	}
	return b
}

// buildNode recursively partitions items[start:start+count] and returns
// the created node's index.
func (b *BVH) buildNode(start, count int) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, bvhNode{left: -1, right: -1, start: start, count: count})

	box := boundsOf(b.boxes, b.items[start:start+count])
	b.nodes[idx].box = box

	if count <= bvhLeafSize {
		return idx
	}

	axis := box.LongestAxis()
	slice := b.items[start : start+count]
	sort.Slice(slice, func(i, j int) bool {
		return centerAxis(b.boxes[slice[i]], axis) < centerAxis(b.boxes[slice[j]], axis)
	})

	half := count / 2
	left := b.buildNode(start, half)
	right := b.buildNode(start+half, count-half)
	b.nodes[idx].left = left
	b.nodes[idx].right = right
	b.nodes[idx].count = 0
	return idx
}

// QueryBox returns the indices of all items whose box intersects q.
func (b *BVH) QueryBox(q types.Box) []int {
	if len(b.nodes) == 0 {
		return nil
	}
	var out []int
	b.queryBox(0, q, &out)
	return out
}

func (b *BVH) queryBox(node int, q types.Box, out *[]int) {
	n := &b.nodes[node]
	if !n.box.Intersects(q) {
		return
	}
	if n.left < 0 {
		for _, item := range b.items[n.start : n.start+n.count] {
			if b.boxes[item].Intersects(q) {
				*out = append(*out, item)
			}
		}
		return
	}
	b.queryBox(n.left, q, out)
	b.queryBox(n.right, q, out)
}

// QueryRay returns the indices of all items whose box is pierced by the
// ray origin + t*dir for t in [0, maxT].
func (b *BVH) QueryRay(origin, dir types.Vector, maxT float64) []int {
	if len(b.nodes) == 0 {
		return nil
	}
	inv := types.Vector{
		X: safeInv(dir.X),
		Y: safeInv(dir.Y),
		Z: safeInv(dir.Z),
	}
	var out []int
	b.queryRay(0, origin, inv, maxT, &out)
	return out
}

func (b *BVH) queryRay(node int, origin, inv types.Vector, maxT float64, out *[]int) {
	n := &b.nodes[node]
	if !rayHitsBox(origin, inv, maxT, n.box) {
		return
	}
	if n.left < 0 {
		for _, item := range b.items[n.start : n.start+n.count] {
			if rayHitsBox(origin, inv, maxT, b.boxes[item]) {
				*out = append(*out, item)
			}
		}
		return
	}
	b.queryRay(n.left, origin, inv, maxT, out)
	b.queryRay(n.right, origin, inv, maxT, out)
}

// rayHitsBox is the slab test with precomputed inverse direction.
func rayHitsBox(origin, inv types.Vector, maxT float64, box types.Box) bool {
	t1 := (box.Min.X - origin.X) * inv.X
	t2 := (box.Max.X - origin.X) * inv.X
	tmin := math.Min(t1, t2)
	tmax := math.Max(t1, t2)

	t1 = (box.Min.Y - origin.Y) * inv.Y
	t2 = (box.Max.Y - origin.Y) * inv.Y
	tmin = math.Max(tmin, math.Min(t1, t2))
	tmax = math.Min(tmax, math.Max(t1, t2))

	t1 = (box.Min.Z - origin.Z) * inv.Z
	t2 = (box.Max.Z - origin.Z) * inv.Z
	tmin = math.Max(tmin, math.Min(t1, t2))
	tmax = math.Min(tmax, math.Max(t1, t2))

	return tmax >= math.Max(tmin, 0) && tmin <= maxT
}

func safeInv(v float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}
	return 1 / v
}

func centerAxis(box types.Box, axis int) float64 {
	c := box.Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// boundsOf unions the boxes of the selected items. Larger sets gather
// the corner coordinates into SoA slices and use the batch kernel.
func boundsOf(boxes []types.Box, items []int) types.Box {
	if len(items) >= batchBoundsThreshold {
		xs := make([]float64, 0, 2*len(items))
		ys := make([]float64, 0, 2*len(items))
		zs := make([]float64, 0, 2*len(items))
		for _, i := range items {
			xs = append(xs, boxes[i].Min.X, boxes[i].Max.X)
			ys = append(ys, boxes[i].Min.Y, boxes[i].Max.Y)
			zs = append(zs, boxes[i].Min.Z, boxes[i].Max.Z)
		}
		return BatchBounds(xs, ys, zs)
	}

	box := boxes[items[0]]
	for _, i := range items[1:] {
		box = box.Union(boxes[i])
	}
	return box
}
