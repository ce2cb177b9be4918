package mesh

type config struct {
	epsilon     float64
	areaEpsilon float64

	mergeVertices bool
	mergeDistance float64

	skipDegenerate           bool
	errorOnDuplicateTriangle bool
	errorOnOpposingDuplicate bool
}

// DefaultEpsilon is the default distance tolerance for geometric operations.
const DefaultEpsilon = 1e-9

// DefaultAreaEpsilon is the default area tolerance below which triangles
// count as degenerate.
const DefaultAreaEpsilon = 1e-12

func newDefaultConfig() config {
	return config{
		epsilon:       DefaultEpsilon,
		areaEpsilon:   DefaultAreaEpsilon,
		mergeVertices: false,
		mergeDistance: 0,
	}
}

func (c *config) effectiveMergeDistance() float64 {
	if c.mergeDistance > 0 {
		return c.mergeDistance
	}
	return c.epsilon
}
