package types

// Box represents an axis-aligned bounding box in 3D space.
//
// The bounds are inclusive on all sides. A Box is valid when every Min
// coordinate is less than or equal to the corresponding Max coordinate.
type Box struct {
	Min Vector
	Max Vector
}

// BoxFromPoints returns the smallest box containing all supplied points.
func BoxFromPoints(points ...Vector) Box {
	if len(points) == 0 {
		return Box{}
	}
	box := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.ExpandedToInclude(p)
	}
	return box
}

// ExpandedToInclude returns the box grown to contain p.
func (b Box) ExpandedToInclude(p Vector) Box {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Expanded returns the box grown by margin on every side.
func (b Box) Expanded(margin float64) Box {
	return Box{
		Min: Vector{X: b.Min.X - margin, Y: b.Min.Y - margin, Z: b.Min.Z - margin},
		Max: Vector{X: b.Max.X + margin, Y: b.Max.Y + margin, Z: b.Max.Z + margin},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return b.ExpandedToInclude(o.Min).ExpandedToInclude(o.Max)
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b Box) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether b and o overlap, boundary touches included.
func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Center returns the midpoint of the box.
func (b Box) Center() Vector {
	return Vector{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vector {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns 0, 1 or 2 for the axis with the largest extent.
func (b Box) LongestAxis() int {
	s := b.Size()
	axis := 0
	longest := s.X
	if s.Y > longest {
		axis, longest = 1, s.Y
	}
	if s.Z > longest {
		axis = 2
	}
	return axis
}

// SurfaceArea returns the total surface area of the box.
func (b Box) SurfaceArea() float64 {
	s := b.Size()
	if s.X < 0 || s.Y < 0 || s.Z < 0 {
		return 0
	}
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}
