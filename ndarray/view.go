// SPDX-License-Identifier: MIT
// Package: ndarray
//
// view.go — strided views, iteration, cloning and comparison.
//
// Contract:
//   - Step shares backing storage with the receiver: writes through the
//     view land exactly on the addressed cells, untouched cells keep their
//     prior contents.
//   - EachIndex visits indices in row-major order and reuses one index
//     slice across calls; callbacks must not retain it.

package ndarray

import "fmt"

// Step returns a view selecting every steps[d]-th index along each
// dimension, starting at index zero. The view shares storage with a.
// Returns ErrBadStep when len(steps) != rank or any step < 1.
// Complexity: O(rank).
func (a *Array[T]) Step(steps ...int) (*Array[T], error) {
	if len(steps) != len(a.shape) {
		return nil, fmt.Errorf("Step(%v): rank %d: %w", steps, len(a.shape), ErrBadStep)
	}
	shape := make([]int, len(a.shape))
	strides := make([]int, len(a.shape))
	for d, st := range steps {
		if st < 1 {
			return nil, fmt.Errorf("Step(%v): axis %d: %w", steps, d, ErrBadStep)
		}
		// ceil division: number of reachable indices along d
		shape[d] = (a.shape[d] + st - 1) / st
		strides[d] = a.strides[d] * st
	}

	return &Array[T]{shape: shape, strides: strides, offset: a.offset, data: a.data}, nil
}

// EachIndex calls fn for every multi-index of the array in row-major
// order. The slice passed to fn is reused between calls.
// Complexity: O(size · rank).
func (a *Array[T]) EachIndex(fn func(ix []int)) {
	ix := make([]int, len(a.shape))
	for {
		fn(ix)
		// odometer increment, last axis fastest
		d := len(ix) - 1
		for ; d >= 0; d-- {
			ix[d]++
			if ix[d] < a.shape[d] {
				break
			}
			ix[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// Clone returns a compact contiguous deep copy of the array, regardless of
// the receiver's strides. Complexity: O(size · rank).
func (a *Array[T]) Clone() *Array[T] {
	out, _ := New[T](a.shape...) // shape of a live Array is always valid
	i := 0
	a.EachIndex(func(ix []int) {
		out.data[i] = a.At(ix...)
		i++
	})
	return out
}

// Equal reports whether b has the same shape and identical elements.
// Complexity: O(size · rank).
func (a *Array[T]) Equal(b *Array[T]) bool {
	if b == nil || len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}
	same := true
	a.EachIndex(func(ix []int) {
		if a.At(ix...) != b.At(ix...) {
			same = false
		}
	})
	return same
}
