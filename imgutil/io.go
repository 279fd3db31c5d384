// SPDX-License-Identifier: MIT
// Package: imgutil
//
// io.go — grayscale image decode/encode.
//
// Decoding converts any registered image format (PNG and JPEG are
// registered here) to a rank-2 Array[uint8] using BT.601 luminance
// weights, the same coefficients the standard library uses for
// image.Gray conversion.

package imgutil

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	// registered decoders
	_ "image/jpeg"

	"github.com/katalvlaran/graymorph/ndarray"
)

// ErrNot2D indicates an array whose rank is not 2 where an image was
// required.
var ErrNot2D = errors.New("imgutil: a rank-2 array is required")

// DecodeGray decodes a PNG or JPEG stream into a rows×cols Array[uint8]
// of luminance values. Complexity: O(pixels).
func DecodeGray(r io.Reader) (*ndarray.Array[uint8], error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeGray: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst, err := ndarray.New[uint8](h, w)
	if err != nil {
		return nil, fmt.Errorf("DecodeGray: %dx%d: %w", h, w, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// BT.601 luminance on 16-bit channels, folded down to 8 bits
			lum := uint8((19595*r16 + 38470*g16 + 7471*b16 + 1<<15) >> 24)
			dst.Set(lum, y, x)
		}
	}
	return dst, nil
}

// EncodePNG writes a rank-2 Array[uint8] as an 8-bit grayscale PNG.
func EncodePNG(w io.Writer, src *ndarray.Array[uint8]) error {
	if src.NDim() != 2 {
		return fmt.Errorf("EncodePNG: rank %d: %w", src.NDim(), ErrNot2D)
	}
	shape := src.Shape()
	img := image.NewGray(image.Rect(0, 0, shape[1], shape[0]))
	for y := 0; y < shape[0]; y++ {
		for x := 0; x < shape[1]; x++ {
			img.Pix[y*img.Stride+x] = src.At(y, x)
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("EncodePNG: %w", err)
	}
	return nil
}
