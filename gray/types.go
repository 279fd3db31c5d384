// Package gray defines the reduction kinds and dispatch strategies of the
// morphology kernel.
package gray

// ReduceKind selects the neighborhood reduction: minimum (erosion) or
// maximum (dilation).
type ReduceKind int

const (
	// MinReduce takes the neighborhood minimum (erosion).
	MinReduce ReduceKind = iota
	// MaxReduce takes the neighborhood maximum (dilation).
	MaxReduce
)

func (k ReduceKind) String() string {
	switch k {
	case MinReduce:
		return "min"
	case MaxReduce:
		return "max"
	default:
		return "unknown"
	}
}

// Strategy tags which reducer executed a pass. The choice is made per
// call and never persisted; both strategies produce identical results.
type Strategy int

const (
	// GenericND is the direct N-dimensional reducer, total for every
	// rank >= 1 and every footprint shape.
	GenericND Strategy = iota
	// FastRect2D is the separable two-pass reducer for rank-2 images
	// whose offset set forms a filled axis-aligned rectangle.
	FastRect2D
)

func (s Strategy) String() string {
	switch s {
	case GenericND:
		return "generic-nd"
	case FastRect2D:
		return "fast-rect-2d"
	default:
		return "unknown"
	}
}
