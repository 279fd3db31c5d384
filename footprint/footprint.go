// SPDX-License-Identifier: MIT
// Package: footprint
//
// footprint.go — the Footprint type, offset geometry and sentinel errors.
//
// Contract:
//   - A Footprint is immutable once constructed; accessors never expose
//     internal slices.
//   - Center is floor(extent/2) per axis; Offsets are cell − center for
//     every set cell, emitted in row-major cell order (deterministic).
//   - Mirror returns a footprint whose offset set is the exact negation of
//     the receiver's. For even extents plain mask reversal would keep the
//     same offset set (the floor center moves with it), so Mirror rebuilds
//     the mask on the minimal odd bounding box instead.

package footprint

import (
	"errors"
	"fmt"
)

// Sentinel errors for footprint construction.
var (
	// ErrBadSize indicates a factory parameter below its minimum.
	ErrBadSize = errors.New("footprint: size parameter too small")
	// ErrMaskSize indicates New received a mask whose length differs from the shape size.
	ErrMaskSize = errors.New("footprint: mask length must equal the shape size")
	// ErrEmptyMask indicates a footprint with no set cells.
	ErrEmptyMask = errors.New("footprint: at least one cell must be set")
	// ErrBadShape indicates an empty shape or a non-positive extent.
	ErrBadShape = errors.New("footprint: every extent must be >= 1")
)

// Footprint is an N-dimensional boolean neighborhood mask.
type Footprint struct {
	shape []int
	mask  []bool // row-major, len == product(shape)
}

// New constructs a Footprint from a shape and a row-major mask.
// Returns ErrBadShape, ErrMaskSize or ErrEmptyMask on invalid input.
// Complexity: O(size).
func New(shape []int, mask []bool) (*Footprint, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("New(%v): %w", shape, ErrBadShape)
	}
	size := 1
	for _, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("New(%v): %w", shape, ErrBadShape)
		}
		size *= n
	}
	if len(mask) != size {
		return nil, fmt.Errorf("New(%v): len=%d: %w", shape, len(mask), ErrMaskSize)
	}
	active := 0
	for _, b := range mask {
		if b {
			active++
		}
	}
	if active == 0 {
		return nil, fmt.Errorf("New(%v): %w", shape, ErrEmptyMask)
	}
	s := make([]int, len(shape))
	copy(s, shape)
	m := make([]bool, len(mask))
	copy(m, mask)

	return &Footprint{shape: s, mask: m}, nil
}

// Rank returns the number of dimensions.
func (f *Footprint) Rank() int { return len(f.shape) }

// Shape returns a copy of the extents per dimension.
func (f *Footprint) Shape() []int {
	s := make([]int, len(f.shape))
	copy(s, f.shape)
	return s
}

// NumActive returns the number of set cells.
func (f *Footprint) NumActive() int {
	n := 0
	for _, b := range f.mask {
		if b {
			n++
		}
	}
	return n
}

// Center returns the implicit center, floor(extent/2) per axis.
func (f *Footprint) Center() []int {
	c := make([]int, len(f.shape))
	for d, n := range f.shape {
		c[d] = n / 2
	}
	return c
}

// At reports whether the cell at the given multi-index is set.
// Panics on out-of-range indices, mirroring ndarray element access.
func (f *Footprint) At(ix ...int) bool {
	if len(ix) != len(f.shape) {
		panic(fmt.Sprintf("footprint: index rank %d does not match footprint rank %d", len(ix), len(f.shape)))
	}
	pos := 0
	for d, i := range ix {
		if i < 0 || i >= f.shape[d] {
			panic(fmt.Sprintf("footprint: index %d out of range [0,%d) on axis %d", i, f.shape[d], d))
		}
		pos = pos*f.shape[d] + i
	}
	return f.mask[pos]
}

// IsFull reports whether every cell of the footprint is set (the filled
// box shapes the 2-D fast path decomposes).
func (f *Footprint) IsFull() bool {
	for _, b := range f.mask {
		if !b {
			return false
		}
	}
	return true
}

// Offsets returns the offset vector (cell − center) of every set cell,
// in row-major cell order. Complexity: O(size · rank).
func (f *Footprint) Offsets() [][]int {
	center := f.Center()
	offs := make([][]int, 0, f.NumActive())
	ix := make([]int, len(f.shape))
	for pos := 0; ; pos++ {
		if f.mask[pos] {
			off := make([]int, len(ix))
			for d := range ix {
				off[d] = ix[d] - center[d]
			}
			offs = append(offs, off)
		}
		d := len(ix) - 1
		for ; d >= 0; d-- {
			ix[d]++
			if ix[d] < f.shape[d] {
				break
			}
			ix[d] = 0
		}
		if d < 0 {
			return offs
		}
	}
}

// Mirror returns the point reflection of the footprint: a footprint whose
// offset set is exactly the negation of f.Offsets(). The result lives on
// the minimal odd bounding box of the negated offsets, so floor-centering
// reproduces them exactly even when f has even extents.
// Complexity: O(size · rank).
func (f *Footprint) Mirror() *Footprint {
	offs := f.Offsets()
	rank := len(f.shape)
	// extent per axis: widest reach of the negated offsets
	reach := make([]int, rank)
	for _, off := range offs {
		for d, o := range off {
			if o < 0 {
				o = -o
			}
			if o > reach[d] {
				reach[d] = o
			}
		}
	}
	shape := make([]int, rank)
	for d := range shape {
		shape[d] = 2*reach[d] + 1
	}
	size := 1
	for _, n := range shape {
		size *= n
	}
	mask := make([]bool, size)
	for _, off := range offs {
		pos := 0
		for d := range off {
			pos = pos*shape[d] + (reach[d] - off[d]) // center + negated offset
		}
		mask[pos] = true
	}

	return &Footprint{shape: shape, mask: mask}
}
