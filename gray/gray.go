// SPDX-License-Identifier: MIT
// Package: gray
//
// gray.go — the six morphology operations.
//
// Contract (shared by all operations):
//   - image: N-dimensional numeric array, rank >= 1. Never mutated unless
//     it is also the designated output buffer.
//   - fp: optional footprint; nil selects the radius-1 cross of the image
//     rank. A non-nil footprint must match the image rank.
//   - out: optional output buffer of exactly the image shape (possibly a
//     non-contiguous strided view); nil allocates a fresh contiguous
//     array. The result is always returned, and also written into out
//     when supplied.
//   - Aliasing safety: every pass reduces into a fresh scratch buffer and
//     only then copies into out, so out may alias the image (including
//     strided overlap) without corrupting the pass. No aliasing detection
//     happens inside the hot loop.
//   - Validation is complete before any reduction starts: fail fast or
//     produce a full result, never a partial one.
//
// Complexity: O(size · active-cells) per reduction pass.

package gray

import (
	"fmt"

	"github.com/katalvlaran/graymorph/footprint"
	"github.com/katalvlaran/graymorph/ndarray"
)

// Method tags used in wrapped errors.
const (
	methodErosion     = "Erosion"
	methodDilation    = "Dilation"
	methodOpening     = "Opening"
	methodClosing     = "Closing"
	methodWhiteTophat = "WhiteTophat"
	methodBlackTophat = "BlackTophat"
)

// prepare validates an operation's inputs and resolves the footprint
// offsets. It is the single validation gate of the package.
func prepare[T ndarray.Number](method string, image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) ([][]int, error) {
	if image == nil {
		return nil, fmt.Errorf("%s: nil image: %w", method, ErrUnsupportedInput)
	}
	if out != nil {
		same := out.NDim() == image.NDim()
		if same {
			os, is := out.Shape(), image.Shape()
			for d := range is {
				if os[d] != is[d] {
					same = false
					break
				}
			}
		}
		if !same {
			return nil, fmt.Errorf("%s: out %v vs image %v: %w", method, out.Shape(), image.Shape(), ErrShapeMismatch)
		}
	}
	if fp == nil {
		def, err := footprint.Cross(image.NDim())
		if err != nil {
			return nil, fmt.Errorf("%s: default footprint: %w", method, err)
		}
		fp = def
	}
	if fp.Rank() != image.NDim() {
		return nil, fmt.Errorf("%s: footprint rank %d vs image rank %d: %w", method, fp.Rank(), image.NDim(), ErrRankMismatch)
	}
	if fp.NumActive() == 0 {
		return nil, fmt.Errorf("%s: empty footprint: %w", method, ErrUnsupportedInput)
	}
	return fp.Offsets(), nil
}

// scratchFor allocates the contiguous scratch buffer of one pass.
func scratchFor[T ndarray.Number](image *ndarray.Array[T]) *ndarray.Array[T] {
	s, _ := ndarray.New[T](image.Shape()...) // image shape already validated
	return s
}

// deliver hands the finished scratch to the caller: directly when no out
// buffer was supplied, otherwise copied element-wise through the out
// strides.
func deliver[T ndarray.Number](out, scratch *ndarray.Array[T]) *ndarray.Array[T] {
	if out == nil {
		return scratch
	}
	out.EachIndex(func(ix []int) {
		out.Set(scratch.At(ix...), ix...)
	})
	return out
}

// Erosion returns the neighborhood minimum of image under the footprint.
// Out-of-range neighbors contribute the maximum representable value of
// the element type (+Inf for floats) and so never constrain the result.
func Erosion[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	offs, err := prepare(methodErosion, image, fp, out)
	if err != nil {
		return nil, err
	}
	scratch := scratchFor(image)
	runReduce(image, offs, MinReduce, scratch)

	return deliver(out, scratch), nil
}

// Dilation returns the neighborhood maximum of image under the footprint.
// The footprint offsets are used directly (no reflection); out-of-range
// neighbors contribute the minimum representable value (0 for unsigned
// types, −Inf for floats).
func Dilation[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	offs, err := prepare(methodDilation, image, fp, out)
	if err != nil {
		return nil, err
	}
	scratch := scratchFor(image)
	runReduce(image, offs, MaxReduce, scratch)

	return deliver(out, scratch), nil
}

// Opening erodes with the footprint, then dilates with its point mirror.
// The mirrored second stage keeps opening anti-extensive at the borders
// for even-sized footprints; for symmetric footprints it is a no-op.
func Opening[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	offs, err := prepare(methodOpening, image, fp, out)
	if err != nil {
		return nil, err
	}
	eroded := scratchFor(image)
	runReduce(image, offs, MinReduce, eroded)
	opened := scratchFor(image)
	runReduce(eroded, negate(offs), MaxReduce, opened)

	return deliver(out, opened), nil
}

// Closing dilates with the footprint, then erodes with its point mirror.
func Closing[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	offs, err := prepare(methodClosing, image, fp, out)
	if err != nil {
		return nil, err
	}
	dilated := scratchFor(image)
	runReduce(image, offs, MaxReduce, dilated)
	closed := scratchFor(image)
	runReduce(dilated, negate(offs), MinReduce, closed)

	return deliver(out, closed), nil
}

// WhiteTophat returns image − opening(image), highlighting bright
// features smaller than the footprint. Subtraction saturates at zero for
// unsigned element types instead of wrapping.
func WhiteTophat[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	offs, err := prepare(methodWhiteTophat, image, fp, out)
	if err != nil {
		return nil, err
	}
	eroded := scratchFor(image)
	runReduce(image, offs, MinReduce, eroded)
	opened := scratchFor(image)
	runReduce(eroded, negate(offs), MaxReduce, opened)

	diff := scratchFor(image)
	diff.EachIndex(func(ix []int) {
		diff.Set(subSaturate(image.At(ix...), opened.At(ix...)), ix...)
	})

	return deliver(out, diff), nil
}

// BlackTophat returns closing(image) − image, highlighting dark features
// smaller than the footprint. Subtraction saturates at zero for unsigned
// element types instead of wrapping.
func BlackTophat[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	offs, err := prepare(methodBlackTophat, image, fp, out)
	if err != nil {
		return nil, err
	}
	dilated := scratchFor(image)
	runReduce(image, offs, MaxReduce, dilated)
	closed := scratchFor(image)
	runReduce(dilated, negate(offs), MinReduce, closed)

	diff := scratchFor(image)
	diff.EachIndex(func(ix []int) {
		diff.Set(subSaturate(closed.At(ix...), image.At(ix...)), ix...)
	})

	return deliver(out, diff), nil
}
