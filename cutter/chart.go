package cutter

import (
	"github.com/iceisfun/solidmesh/types"
)

// chart is an isometric 2D parameterization of one triangle's plane,
// built from an orthonormal basis so UV areas equal 3D areas. Points are
// projected through their barycentric coordinates on the triangle, which
// keeps the mapping exact for vertices that were snapped onto edges or
// corners.
type chart struct {
	corners [3]types.Point
}

// newChart builds the chart for triangle (a,b,c). The second return
// value is false for degenerate triangles.
func newChart(a, b, c types.Vector) (chart, bool) {
	ab := b.Sub(a)
	n := ab.Cross(c.Sub(a))
	if n.Norm2() == 0 {
		return chart{}, false
	}

	e1 := ab.Normalize()
	e2 := n.Normalize().Cross(e1)

	ac := c.Sub(a)
	return chart{
		corners: [3]types.Point{
			{X: 0, Y: 0},
			{X: ab.Norm(), Y: 0},
			{X: ac.Dot(e1), Y: ac.Dot(e2)},
		},
	}, true
}

// project maps barycentric coordinates on the triangle into the chart.
func (c chart) project(bary types.Barycentric) types.Point {
	return types.Point{
		X: bary.U*c.corners[0].X + bary.V*c.corners[1].X + bary.W*c.corners[2].X,
		Y: bary.U*c.corners[0].Y + bary.V*c.corners[1].Y + bary.W*c.corners[2].Y,
	}
}
