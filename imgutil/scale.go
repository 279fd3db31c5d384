// SPDX-License-Identifier: MIT
// Package: imgutil
//
// scale.go — image downscaling collaborators.
//
// Two flavors are provided: Resize resamples a rank-2 uint8 image with
// the Catmull-Rom scaler of golang.org/x/image/draw (quality resampling
// for display pipelines), while DownscaleLocalMean is the N-dimensional
// block mean typically applied as preprocessing ahead of morphology
// (integer factors, zero padding up to a factor multiple).

package imgutil

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/graymorph/ndarray"
)

// ErrBadFactor indicates a downscale factor below one or a wrong factor
// count.
var ErrBadFactor = errors.New("imgutil: factors must be >= 1, one per dimension")

// Resize resamples a rank-2 uint8 image to rows×cols with Catmull-Rom
// interpolation. Complexity: O(pixels) with a constant-size kernel.
func Resize(src *ndarray.Array[uint8], rows, cols int) (*ndarray.Array[uint8], error) {
	if src.NDim() != 2 {
		return nil, fmt.Errorf("Resize: rank %d: %w", src.NDim(), ErrNot2D)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Resize: %dx%d: %w", rows, cols, ErrBadFactor)
	}
	shape := src.Shape()
	in := image.NewGray(image.Rect(0, 0, shape[1], shape[0]))
	for y := 0; y < shape[0]; y++ {
		for x := 0; x < shape[1]; x++ {
			in.Pix[y*in.Stride+x] = src.At(y, x)
		}
	}
	out := image.NewGray(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)

	dst, err := ndarray.New[uint8](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Resize: %w", err)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dst.Set(out.Pix[y*out.Stride+x], y, x)
		}
	}
	return dst, nil
}

// DownscaleLocalMean reduces an N-D float64 array by the given integer
// factors: each output cell is the mean of the corresponding block, with
// the array conceptually zero-padded up to a factor multiple (so edge
// blocks divide by the full block size). Complexity: O(size).
func DownscaleLocalMean(src *ndarray.Array[float64], factors ...int) (*ndarray.Array[float64], error) {
	shape := src.Shape()
	if len(factors) != len(shape) {
		return nil, fmt.Errorf("DownscaleLocalMean(%v): rank %d: %w", factors, len(shape), ErrBadFactor)
	}
	outShape := make([]int, len(shape))
	blockSize := 1
	for d, f := range factors {
		if f < 1 {
			return nil, fmt.Errorf("DownscaleLocalMean(%v): axis %d: %w", factors, d, ErrBadFactor)
		}
		outShape[d] = (shape[d] + f - 1) / f
		blockSize *= f
	}
	dst, err := ndarray.New[float64](outShape...)
	if err != nil {
		return nil, fmt.Errorf("DownscaleLocalMean: %w", err)
	}

	rank := len(shape)
	cell := make([]int, rank) // block-local odometer
	q := make([]int, rank)    // source index
	dst.EachIndex(func(ix []int) {
		for d := range cell {
			cell[d] = 0
		}
		sum := 0.0
		for {
			in := true
			for d := 0; d < rank; d++ {
				q[d] = ix[d]*factors[d] + cell[d]
				if q[d] >= shape[d] {
					in = false
					break
				}
			}
			if in {
				sum += src.At(q...)
			}
			d := rank - 1
			for ; d >= 0; d-- {
				cell[d]++
				if cell[d] < factors[d] {
					break
				}
				cell[d] = 0
			}
			if d < 0 {
				break
			}
		}
		dst.Set(sum/float64(blockSize), ix...)
	})
	return dst, nil
}
