// Package ndarray defines the element-type constraint, the Array container
// and the sentinel errors of the ndarray package.
package ndarray

import "errors"

// Sentinel errors for ndarray constructors and views.
var (
	// ErrEmptyShape indicates a constructor received no dimensions at all.
	ErrEmptyShape = errors.New("ndarray: shape must have at least one dimension")
	// ErrInvalidShape indicates a dimension extent smaller than one.
	ErrInvalidShape = errors.New("ndarray: every dimension extent must be >= 1")
	// ErrSizeMismatch indicates the provided flat data does not match the shape size.
	ErrSizeMismatch = errors.New("ndarray: data length must equal the shape size")
	// ErrBadStep indicates a Step view received a step below one or a wrong step count.
	ErrBadStep = errors.New("ndarray: steps must be >= 1, one per dimension")
)

// Number is the set of element types the kernel operates on.
//
// The list is exact (no ~type terms): identity values and saturation rules
// are resolved by a runtime type switch, and an exact list keeps that
// switch total. Boolean data enters through imgutil.FromBool as a uint8
// view.
type Number interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Array is a dense N-dimensional array of T backed by a flat slice.
//
// shape holds the extent per dimension, strides the element (not byte)
// distance between consecutive indices per dimension, and offset the flat
// position of the all-zero index. A freshly constructed Array is
// contiguous row-major; Step produces non-contiguous views sharing data.
type Array[T Number] struct {
	shape   []int
	strides []int
	offset  int
	data    []T
}
