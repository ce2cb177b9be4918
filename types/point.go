package types

import "math"

// Point represents a position in 2D Cartesian space.
//
// The boolean pipeline uses Point for positions in the per-triangle UV
// chart built by the face cutter. Coordinates use float64 precision,
// suitable for most geometric applications with appropriate epsilon
// tolerance for comparisons.
//
// Example:
//
//	p := types.Point{X: 1.5, Y: 2.3}
//	q := types.Point{X: 0.0, Y: 0.0}
type Point struct {
	X float64 // Horizontal coordinate
	Y float64 // Vertical coordinate
}

// Sub returns the component-wise difference p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
