// SPDX-License-Identifier: MIT
// Package: gray
//
// dispatch.go — per-call choice between the 2-D fast path and the
// generic N-D reducer.
//
// Contract:
//   - The decision is a pure function of (rank, offset set); nothing is
//     persisted between calls.
//   - Both strategies honor the same reduction semantics exactly; the
//     fast path exists purely for performance and is verified against the
//     generic reducer by a property test.

package gray

import "github.com/katalvlaran/graymorph/ndarray"

// chooseStrategy picks the reducer for a pass.
func chooseStrategy(rank int, offs [][]int) (Strategy, rect2D) {
	if rank == 2 {
		if r, ok := rectBounds(offs); ok {
			return FastRect2D, r
		}
	}
	return GenericND, rect2D{}
}

// runReduce dispatches one reduction pass of src into the scratch dst
// and reports which strategy ran.
func runReduce[T ndarray.Number](src *ndarray.Array[T], offs [][]int, kind ReduceKind, dst *ndarray.Array[T]) Strategy {
	strat, r := chooseStrategy(src.NDim(), offs)
	switch strat {
	case FastRect2D:
		reduceFastRect2D(src, r, kind, dst)
	default:
		reduceGeneric(src, offs, kind, dst)
	}
	return strat
}
