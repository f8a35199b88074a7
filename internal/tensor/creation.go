package tensor

import "fmt"

// Dense is a tensor backed by the reference heap storage.
type Dense[T Scalar, D Dims] = Tensor[T, D, *HeapStorage[T]]

// Zeros creates a tensor filled with zeros, allocated by a, with default strides.
//
// Example:
//
//	t, err := tensor.Zeros[float32, [3]int, *tensor.HeapStorage[float32]](tensor.Heap[float32](), [3]int{2, 3, 4})
func Zeros[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) (*Tensor[T, D, S], error) {
	n, err := NumElements(shape)
	if err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	storage, err := a.Zeros(n)
	if err != nil {
		return nil, err
	}
	return New[T](storage, shape, DefaultStrides(shape))
}

// Uninitialized creates a tensor whose elements are indeterminate until written.
// Allocators without a cheaper path zero-fill, see AllocUninitialized.
func Uninitialized[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) (*Tensor[T, D, S], error) {
	n, err := NumElements(shape)
	if err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	storage, err := AllocUninitialized(a, n)
	if err != nil {
		return nil, err
	}
	return New[T](storage, shape, DefaultStrides(shape))
}

// MustZeros is like Zeros but panics on error.
func MustZeros[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) *Tensor[T, D, S] {
	t, err := Zeros(a, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// MustUninitialized is like Uninitialized but panics on error.
func MustUninitialized[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) *Tensor[T, D, S] {
	t, err := Uninitialized(a, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// DenseZeros creates a zero-filled heap-backed tensor.
//
// Example:
//
//	t, err := tensor.DenseZeros[int32]([2]int{2, 3})
func DenseZeros[T Scalar, D Dims](shape D) (*Dense[T, D], error) {
	return Zeros[T, D, *HeapStorage[T]](Heap[T](), shape)
}

// DenseUninitialized creates a heap-backed tensor through the uninitialized path.
// The heap allocator zero-fills, so the result equals DenseZeros.
func DenseUninitialized[T Scalar, D Dims](shape D) (*Dense[T, D], error) {
	return Uninitialized[T, D, *HeapStorage[T]](Heap[T](), shape)
}

// FromSlice creates a heap-backed tensor that takes ownership of data.
// len(data) must equal the shape's element count.
func FromSlice[T Scalar, D Dims](data []T, shape D) (*Dense[T, D], error) {
	return New[T](NewHeapStorage(data), shape, DefaultStrides(shape))
}
