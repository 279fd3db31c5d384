// Package ndarray provides a minimal N-dimensional dense numeric array,
// the carrier type of the graymorph kernel.
//
// 🚀 What is ndarray?
//
//	A generic, row-major array over fixed-width numeric element types:
//	  • Arbitrary rank ≥ 1, explicit element strides and offset
//	  • Strided sub-views (Step) that share backing storage, so a caller
//	    can address every other cell of a larger buffer as an output
//	  • Deterministic odometer iteration over indices (EachIndex)
//	  • Deep, compacting Clone for scratch buffers
//
// ⚙️ Usage:
//
//	a, _ := ndarray.FromFlat([]uint8{5, 6, 2, 7, 2, 2, 3, 5, 1}, 3, 3)
//	v := a.At(1, 2)      // element access
//	a.Set(9, 0, 0)       // element write
//	view, _ := a.Step(2, 2) // every other row and column, shares storage
//
// Element access panics on out-of-range indices, mirroring Go slice
// semantics: index arithmetic is the caller's contract, while shape-level
// validation is performed once at operation entry by the gray package.
//
// Performance:
//
//   - At/Set: O(rank)
//   - Clone/Equal/EachIndex: O(size · rank)
package ndarray
