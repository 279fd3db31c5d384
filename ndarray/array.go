// SPDX-License-Identifier: MIT
// Package: ndarray
//
// array.go — constructors and element access for Array.
//
// Contract:
//   - Constructors validate the shape once and return sentinel errors;
//     element access assumes valid indices and panics otherwise, like a
//     Go slice.
//   - FromFlat adopts the caller's slice without copying; callers that
//     need isolation clone first.
//
// Determinism:
//   - No randomness, no global state; strides are always computed
//     row-major from the shape.

package ndarray

import "fmt"

// validateShape checks rank and extents, returning a sentinel error.
func validateShape(shape []int) error {
	if len(shape) == 0 {
		return ErrEmptyShape
	}
	for _, n := range shape {
		if n < 1 {
			return ErrInvalidShape
		}
	}
	return nil
}

// contiguousStrides computes row-major element strides for shape.
func contiguousStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}
	return strides
}

// shapeSize returns the number of addressable elements of shape.
func shapeSize(shape []int) int {
	size := 1
	for _, n := range shape {
		size *= n
	}
	return size
}

// New allocates a zero-filled contiguous Array with the given shape.
// Returns ErrEmptyShape or ErrInvalidShape on malformed shapes.
// Complexity: O(size) time and memory.
func New[T Number](shape ...int) (*Array[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("New(%v): %w", shape, err)
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Array[T]{
		shape:   s,
		strides: contiguousStrides(s),
		data:    make([]T, shapeSize(s)),
	}, nil
}

// Full allocates a contiguous Array with every element set to v.
// Complexity: O(size).
func Full[T Number](v T, shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = v
	}

	return a, nil
}

// FromFlat wraps an existing row-major slice as an Array of the given
// shape. The slice is adopted, not copied. Returns ErrSizeMismatch when
// len(data) differs from the shape size.
// Complexity: O(rank).
func FromFlat[T Number](data []T, shape ...int) (*Array[T], error) {
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("FromFlat(%v): %w", shape, err)
	}
	if len(data) != shapeSize(shape) {
		return nil, fmt.Errorf("FromFlat(%v): len=%d: %w", shape, len(data), ErrSizeMismatch)
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Array[T]{shape: s, strides: contiguousStrides(s), data: data}, nil
}

// NDim returns the rank of the array. Complexity: O(1).
func (a *Array[T]) NDim() int { return len(a.shape) }

// Size returns the number of addressable elements. Complexity: O(rank).
func (a *Array[T]) Size() int { return shapeSize(a.shape) }

// Shape returns a copy of the extents per dimension.
func (a *Array[T]) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Strides returns a copy of the element strides per dimension.
func (a *Array[T]) Strides() []int {
	s := make([]int, len(a.strides))
	copy(s, a.strides)
	return s
}

// IsContiguous reports whether the array is a dense row-major block
// starting at the head of its backing storage.
func (a *Array[T]) IsContiguous() bool {
	if a.offset != 0 {
		return false
	}
	want := contiguousStrides(a.shape)
	for d := range want {
		if a.strides[d] != want[d] {
			return false
		}
	}
	return true
}

// flat maps a multi-index to a flat position in the backing slice.
// Panics on rank or range violations (programmer error, like slices).
func (a *Array[T]) flat(ix []int) int {
	if len(ix) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: index rank %d does not match array rank %d", len(ix), len(a.shape)))
	}
	pos := a.offset
	for d, i := range ix {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range [0,%d) on axis %d", i, a.shape[d], d))
		}
		pos += i * a.strides[d]
	}
	return pos
}

// At returns the element at the given multi-index. Complexity: O(rank).
func (a *Array[T]) At(ix ...int) T { return a.data[a.flat(ix)] }

// Set writes v at the given multi-index. Complexity: O(rank).
func (a *Array[T]) Set(v T, ix ...int) { a.data[a.flat(ix)] = v }

// InBounds reports whether the multi-index addresses a valid element.
func (a *Array[T]) InBounds(ix []int) bool {
	if len(ix) != len(a.shape) {
		return false
	}
	for d, i := range ix {
		if i < 0 || i >= a.shape[d] {
			return false
		}
	}
	return true
}
