// SPDX-License-Identifier: MIT
// Package: gray
//
// identity.go — BoundaryPolicy: the identity (padding) value of a
// reduction for each element type.
//
// Contract:
//   - identityValue is a pure function of (element type, reduction kind);
//     it is queried per call, never cached in mutable state.
//   - MIN reduction seeds with the maximum representable value (+Inf for
//     floats) so out-of-range reads never constrain a minimum.
//   - MAX reduction seeds with the minimum representable value: 0 for
//     unsigned types (the legacy zero-padding convention for boolean and
//     small unsigned images), the most negative value for signed types,
//     −Inf for floats.

package gray

import (
	"math"

	"github.com/katalvlaran/graymorph/ndarray"
)

// identityValue returns the reduction seed for element type T. The type
// switch is total because ndarray.Number enumerates exact types.
func identityValue[T ndarray.Number](kind ReduceKind) T {
	var v T
	min := kind == MinReduce
	switch p := any(&v).(type) {
	case *uint8:
		if min {
			*p = math.MaxUint8
		}
	case *uint16:
		if min {
			*p = math.MaxUint16
		}
	case *uint32:
		if min {
			*p = math.MaxUint32
		}
	case *uint64:
		if min {
			*p = math.MaxUint64
		}
	case *int8:
		if min {
			*p = math.MaxInt8
		} else {
			*p = math.MinInt8
		}
	case *int16:
		if min {
			*p = math.MaxInt16
		} else {
			*p = math.MinInt16
		}
	case *int32:
		if min {
			*p = math.MaxInt32
		} else {
			*p = math.MinInt32
		}
	case *int64:
		if min {
			*p = math.MaxInt64
		} else {
			*p = math.MinInt64
		}
	case *float32:
		if min {
			*p = float32(math.Inf(1))
		} else {
			*p = float32(math.Inf(-1))
		}
	case *float64:
		if min {
			*p = math.Inf(1)
		} else {
			*p = math.Inf(-1)
		}
	}
	return v
}

// subSaturate returns a − b, clamped at zero for unsigned element types
// so tophat results never wrap. Signed and float types subtract plainly.
func subSaturate[T ndarray.Number](a, b T) T {
	var zero, one T = 0, 1
	if zero-one > zero { // unsigned: subtraction would wrap
		if b >= a {
			return 0
		}
	}
	return a - b
}
