// SPDX-License-Identifier: MIT
// Package: gray
//
// reduce.go — the generic N-dimensional neighborhood reducer.
//
// Contract:
//   - dst is a freshly allocated contiguous scratch of the source shape;
//     it never aliases src, so the pass may write in any order.
//   - For every output index p: dst[p] = reduce over src[p+o] for each
//     offset o landing in bounds, seeded with the identity value. An
//     entirely out-of-range neighborhood yields the identity itself.
//   - Total for every rank >= 1 and every offset set.
//
// Determinism & Performance:
//   - Row-major output order, offset order as emitted by the footprint.
//   - Time O(size · offsets · rank), space O(rank) beyond dst.

package gray

import "github.com/katalvlaran/graymorph/ndarray"

// negate returns the point reflection of an offset set. Used by the
// composite operations for their second stage.
func negate(offs [][]int) [][]int {
	out := make([][]int, len(offs))
	for i, off := range offs {
		n := make([]int, len(off))
		for d, o := range off {
			n[d] = -o
		}
		out[i] = n
	}
	return out
}

// reduceGeneric runs the direct reduction of src into dst.
func reduceGeneric[T ndarray.Number](src *ndarray.Array[T], offs [][]int, kind ReduceKind, dst *ndarray.Array[T]) {
	id := identityValue[T](kind)
	shape := src.Shape()
	rank := len(shape)
	q := make([]int, rank) // reused neighbor index

	dst.EachIndex(func(ix []int) {
		acc := id
		for _, off := range offs {
			in := true
			for d := 0; d < rank; d++ {
				q[d] = ix[d] + off[d]
				if q[d] < 0 || q[d] >= shape[d] {
					in = false
					break
				}
			}
			if !in {
				continue
			}
			v := src.At(q...)
			if kind == MinReduce {
				if v < acc {
					acc = v
				}
			} else if v > acc {
				acc = v
			}
		}
		dst.Set(acc, ix...)
	})
}
