package tensor

import (
	"fmt"
	"math"
)

// Dims is a constraint for fixed-rank shape and stride arrays.
// The array length is the tensor rank, so rank is part of the tensor type.
type Dims interface {
	[0]int | [1]int | [2]int | [3]int | [4]int | [5]int | [6]int | [7]int | [8]int
}

// MaxRank is the highest rank expressible by Dims.
const MaxRank = 8

// Shape is a runtime-length view of tensor dimensions.
type Shape []int

// NumElements returns the total number of elements.
// It does not check for overflow; use Validate first for untrusted input.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and the element count fits in an int.
// Zero-length dimensions are legal.
func (s Shape) Validate() error {
	_, err := checkedProduct(len(s), func(i int) int { return s[i] })
	return err
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// DefaultStrides calculates the densely packed strides for the shape.
// The first axis varies fastest: stride[0] = 1, stride[i] = stride[i-1] * shape[i-1].
func (s Shape) DefaultStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i, dim := range s {
		strides[i] = stride
		stride *= dim
	}
	return strides
}

// DefaultStrides calculates the densely packed strides for a fixed-rank shape,
// using the same first-axis-fastest rule as Shape.DefaultStrides.
//
// A zero-length axis is not special-cased: every later stride becomes 0.
//
//	DefaultStrides([2]int{2, 3}) // [1, 2]
//	DefaultStrides([2]int{0, 5}) // [1, 0]
func DefaultStrides[D Dims](shape D) D {
	var strides D
	stride := 1
	for i := 0; i < len(shape); i++ {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

// NumElements returns the number of elements described by shape.
// The empty shape of a rank-0 tensor has one element.
func NumElements[D Dims](shape D) (int, error) {
	return checkedProduct(len(shape), func(i int) int { return shape[i] })
}

// ShapeOf copies a fixed-rank shape into a Shape.
func ShapeOf[D Dims](shape D) Shape {
	s := make(Shape, len(shape))
	for i := range s {
		s[i] = shape[i]
	}
	return s
}

// DimsOf converts a Shape into a fixed-rank array.
// It fails if len(s) is not the rank of D.
func DimsOf[D Dims](s Shape) (D, error) {
	var dims D
	if len(s) != len(dims) {
		return dims, fmt.Errorf("%w: shape %v has rank %d, want %d", ErrRankMismatch, s, len(s), len(dims))
	}
	for i := range s {
		dims[i] = s[i]
	}
	return dims, nil
}

// checkedProduct multiplies n dimensions, rejecting negatives and overflow.
func checkedProduct(n int, dim func(i int) int) (int, error) {
	total := 1
	for i := 0; i < n; i++ {
		d := dim(i)
		if d < 0 {
			return 0, fmt.Errorf("%w: index %d: %d", ErrNegativeDimension, i, d)
		}
		if d != 0 && total > math.MaxInt/d {
			return 0, fmt.Errorf("%w: at dimension %d", ErrShapeOverflow, i)
		}
		total *= d
	}
	return total, nil
}
