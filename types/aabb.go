package types

// AABB represents an axis-aligned bounding box in 2D space, used for
// bounds in the per-triangle UV charts. 3D bounds use Box.
//
// The bounds are inclusive on all sides. An AABB is valid when
// Min.X <= Max.X and Min.Y <= Max.Y. Empty or inverted AABBs
// should be handled explicitly by the caller.
type AABB struct {
	Min Point // Minimum (bottom-left) corner, inclusive
	Max Point // Maximum (top-right) corner, inclusive
}
