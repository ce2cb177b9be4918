package spatial

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/iceisfun/solidmesh/types"
)

// batchBoundsThreshold is the item count from which on bounds computation
// switches from scalar folding to the SIMD batch kernel.
const batchBoundsThreshold = 256

// BatchBounds computes the bounding box of coordinates laid out as
// structure-of-arrays slices. The three slices must have equal length.
func BatchBounds(xs, ys, zs []float64) types.Box {
	if len(xs) == 0 {
		return types.Box{}
	}
	minX, maxX := batchMinMax(xs)
	minY, maxY := batchMinMax(ys)
	minZ, maxZ := batchMinMax(zs)
	return types.Box{
		Min: types.Vector{X: minX, Y: minY, Z: minZ},
		Max: types.Vector{X: maxX, Y: maxY, Z: maxZ},
	}
}

// batchMinMax reduces a coordinate slice to its minimum and maximum.
func batchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// Masked lanes are zero-filled; substitute the running
			// min/max so the padding cannot win the reduction.
			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
