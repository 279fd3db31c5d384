// SPDX-License-Identifier: MIT
// Package: imgutil
//
// convert.go — element-type conversion between float and fixed-width
// unsigned representations.
//
// Contract:
//   - AsUbyte/AsUint16 accept values in [0,1] only (ErrValueRange
//     otherwise) and round half away from zero. Rounding is monotone, so
//     erosion/dilation commute with the encoding: encode(min(S)) ==
//     min(encode(S)).
//   - FromBool produces the 0/1 uint8 view of boolean data and warns once
//     per process: boolean morphology inherits the unsigned zero-padding
//     boundary convention, which differs from set-theoretic morphology at
//     image borders.

package imgutil

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graymorph/ndarray"
)

// Sentinel errors for conversions.
var (
	// ErrValueRange indicates a float value outside [0,1].
	ErrValueRange = errors.New("imgutil: float values must lie in [0,1]")
)

const (
	maxUbyte  = 255
	maxUint16 = 65535
)

var boolViewOnce sync.Once

// AsUbyte converts a float64 array with values in [0,1] to uint8 by
// monotone rounding. Complexity: O(size).
func AsUbyte(src *ndarray.Array[float64]) (*ndarray.Array[uint8], error) {
	dst, err := ndarray.New[uint8](src.Shape()...)
	if err != nil {
		return nil, fmt.Errorf("AsUbyte: %w", err)
	}
	var rangeErr error
	src.EachIndex(func(ix []int) {
		v := src.At(ix...)
		if v < 0 || v > 1 {
			rangeErr = fmt.Errorf("AsUbyte: value %v at %v: %w", v, ix, ErrValueRange)
			return
		}
		dst.Set(uint8(math.Round(v*maxUbyte)), ix...)
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return dst, nil
}

// AsUint16 converts a float64 array with values in [0,1] to uint16 by
// monotone rounding. Complexity: O(size).
func AsUint16(src *ndarray.Array[float64]) (*ndarray.Array[uint16], error) {
	dst, err := ndarray.New[uint16](src.Shape()...)
	if err != nil {
		return nil, fmt.Errorf("AsUint16: %w", err)
	}
	var rangeErr error
	src.EachIndex(func(ix []int) {
		v := src.At(ix...)
		if v < 0 || v > 1 {
			rangeErr = fmt.Errorf("AsUint16: value %v at %v: %w", v, ix, ErrValueRange)
			return
		}
		dst.Set(uint16(math.Round(v*maxUint16)), ix...)
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return dst, nil
}

// UbyteToFloat64 rescales uint8 values into [0,1].
func UbyteToFloat64(src *ndarray.Array[uint8]) *ndarray.Array[float64] {
	dst, _ := ndarray.New[float64](src.Shape()...) // shape of a live Array is valid
	src.EachIndex(func(ix []int) {
		dst.Set(float64(src.At(ix...))/maxUbyte, ix...)
	})
	return dst
}

// Uint16ToFloat64 rescales uint16 values into [0,1].
func Uint16ToFloat64(src *ndarray.Array[uint16]) *ndarray.Array[float64] {
	dst, _ := ndarray.New[float64](src.Shape()...)
	src.EachIndex(func(ix []int) {
		dst.Set(float64(src.At(ix...))/maxUint16, ix...)
	})
	return dst
}

// FromBool wraps boolean data as a uint8 0/1 array of the given shape and
// emits the one-time precision notice about the implicit integer view.
func FromBool(data []bool, shape ...int) (*ndarray.Array[uint8], error) {
	raw := make([]uint8, len(data))
	for i, b := range data {
		if b {
			raw[i] = 1
		}
	}
	a, err := ndarray.FromFlat(raw, shape...)
	if err != nil {
		return nil, fmt.Errorf("FromBool: %w", err)
	}
	boolViewOnce.Do(func() {
		logrus.WithField("package", "imgutil").
			Warn("boolean image handled as uint8 view; borders follow the unsigned zero-padding convention")
	})
	return a, nil
}
