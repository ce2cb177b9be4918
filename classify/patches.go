package classify

import (
	"github.com/iceisfun/solidmesh/cutter"
	"github.com/iceisfun/solidmesh/mesh"
	"github.com/iceisfun/solidmesh/types"
)

// perturbScale is the multiple of the distance epsilon used to offset
// samples along the patch normal when the centroid lands on the opposite
// surface.
const perturbScale = 1000

// ClassifyPatches tags every patch against the opposite mesh.
//
// Patches whose centroid lies on the opposite surface are resolved by
// sampling two points offset along the patch normal: with the back
// sample inside and the front sample outside, the opposite surface
// coincides with the patch at the same winding; the mirrored tuple marks
// a mirrored coincident face. Any other tuple inherits the agreeing
// side.
func ClassifyPatches(patches []cutter.Patch, opposite *mesh.Mesh, tol types.Tolerance) ([]Tagged, error) {
	c := NewClassifier(opposite, tol)

	tagged := make([]Tagged, 0, len(patches))
	for i := range patches {
		label, sameWinding, err := c.classifyPatch(&patches[i])
		if err != nil {
			return nil, err
		}
		tagged = append(tagged, Tagged{Patch: patches[i], Label: label, SameWinding: sameWinding})
	}
	return tagged, nil
}

func (c *Classifier) classifyPatch(p *cutter.Patch) (Containment, bool, error) {
	centroid := p.Centroid()

	label, err := c.Classify(centroid)
	if err != nil {
		return Outside, false, err
	}
	if label != On {
		return label, false, nil
	}

	normal := p.Normal().Normalize()
	offset := normal.Scale(perturbScale * c.tol.Distance)

	front, err := c.Classify(centroid.Add(offset))
	if err != nil {
		return Outside, false, err
	}
	back, err := c.Classify(centroid.Sub(offset))
	if err != nil {
		return Outside, false, err
	}

	switch {
	case back == Inside && front == Outside:
		// The opposite surface coincides with the patch, same winding.
		return On, true, nil
	case back == Outside && front == Inside:
		// Mirrored coincident face.
		return On, false, nil
	case back == front && back != On:
		// The patch merely touches the opposite surface; inherit.
		return back, false, nil
	default:
		return On, false, nil
	}
}
