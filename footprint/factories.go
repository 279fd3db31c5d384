// SPDX-License-Identifier: MIT
// Package: footprint
//
// factories.go — the shipped structuring-element constructors.
//
// Contract:
//   - Every factory validates its parameter domain first and returns only
//     sentinel errors (never panics at runtime).
//   - Every returned footprint has at least one set cell.
//   - Masks are generated deterministically in row-major order.
//
// Complexity: O(cells) time and memory for each factory.

package footprint

import "fmt"

// File-local method tags and minima (no magic numbers at call sites).
const (
	methodSquare    = "Square"
	methodRectangle = "Rectangle"
	methodDiamond   = "Diamond"
	methodDisk      = "Disk"
	methodStar      = "Star"
	methodCube      = "Cube"
	methodCross     = "Cross"

	minBoxSide   = 1
	minRadius    = 0
	minStarWidth = 1
	minRank      = 1
)

// full returns an all-set footprint of the given shape.
func full(shape ...int) *Footprint {
	size := 1
	for _, n := range shape {
		size *= n
	}
	mask := make([]bool, size)
	for i := range mask {
		mask[i] = true
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Footprint{shape: s, mask: mask}
}

// Square returns an n×n filled 2-D footprint. n must be >= 1.
func Square(n int) (*Footprint, error) {
	if n < minBoxSide {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSquare, n, minBoxSide, ErrBadSize)
	}
	return full(n, n), nil
}

// Rectangle returns a rows×cols filled 2-D footprint. Both extents must
// be >= 1.
func Rectangle(rows, cols int) (*Footprint, error) {
	if rows < minBoxSide || cols < minBoxSide {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodRectangle, rows, cols, ErrBadSize)
	}
	return full(rows, cols), nil
}

// Cube returns an n×n×n filled 3-D footprint. n must be >= 1.
func Cube(n int) (*Footprint, error) {
	if n < minBoxSide {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCube, n, minBoxSide, ErrBadSize)
	}
	return full(n, n, n), nil
}

// Diamond returns the (2r+1)×(2r+1) footprint with |dy|+|dx| <= r.
// r must be >= 0; Diamond(0) is the single center cell.
func Diamond(r int) (*Footprint, error) {
	if r < minRadius {
		return nil, fmt.Errorf("%s: r=%d: %w", methodDiamond, r, ErrBadSize)
	}
	side := 2*r + 1
	mask := make([]bool, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			mask[y*side+x] = abs(y-r)+abs(x-r) <= r
		}
	}

	return &Footprint{shape: []int{side, side}, mask: mask}, nil
}

// Disk returns the (2r+1)×(2r+1) footprint with dy²+dx² <= r².
// r must be >= 0.
func Disk(r int) (*Footprint, error) {
	if r < minRadius {
		return nil, fmt.Errorf("%s: r=%d: %w", methodDisk, r, ErrBadSize)
	}
	side := 2*r + 1
	mask := make([]bool, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dy, dx := y-r, x-r
			mask[y*side+x] = dy*dy+dx*dx <= r*r
		}
	}

	return &Footprint{shape: []int{side, side}, mask: mask}, nil
}

// Star returns the star-shaped footprint of width parameter a: the union
// of a centered square of side 2a+1 with the convex hull of the four
// mid-edge points of the bounding box (a diamond), on a box of side
// 2a+1+2*(a/2). Star(1) degenerates to the full 3×3 square.
func Star(a int) (*Footprint, error) {
	if a < minStarWidth {
		return nil, fmt.Errorf("%s: a=%d < min=%d: %w", methodStar, a, minStarWidth, ErrBadSize)
	}
	if a == 1 {
		return full(3, 3), nil
	}
	m := 2*a + 1     // inner square side
	pad := a / 2     // diamond overhang beyond the square
	side := m + 2*pad
	c := (side - 1) / 2 // box center, also the diamond radius
	mask := make([]bool, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			inSquare := y >= pad && y < m+pad && x >= pad && x < m+pad
			inDiamond := abs(y-c)+abs(x-c) <= c
			mask[y*side+x] = inSquare || inDiamond
		}
	}

	return &Footprint{shape: []int{side, side}, mask: mask}, nil
}

// Cross returns the radius-1 cross of the given rank: a 3^rank box with
// the center and its 2·rank axis neighbors set. This is the default
// footprint of every gray operation. rank must be >= 1.
func Cross(rank int) (*Footprint, error) {
	if rank < minRank {
		return nil, fmt.Errorf("%s: rank=%d < min=%d: %w", methodCross, rank, minRank, ErrBadSize)
	}
	size := 1
	for d := 0; d < rank; d++ {
		size *= 3
	}
	shape := make([]int, rank)
	mask := make([]bool, size)
	ix := make([]int, rank)
	for d := range shape {
		shape[d] = 3
	}
	for pos := 0; pos < size; pos++ {
		dist := 0
		for _, i := range ix {
			dist += abs(i - 1)
		}
		mask[pos] = dist <= 1
		// odometer increment over the 3^rank box
		for d := rank - 1; d >= 0; d-- {
			ix[d]++
			if ix[d] < 3 {
				break
			}
			ix[d] = 0
		}
	}

	return &Footprint{shape: shape, mask: mask}, nil
}

// abs returns |x| for ints.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
