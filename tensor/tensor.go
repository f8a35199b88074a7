// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for fixed-rank tensors.
//
// The package defines:
//   - Tensor[T, D, S]: generic tensor over element type, rank and storage
//   - Storage and Allocator: the backing buffer contract
//   - Shape, Dims, DataType: core type definitions
package tensor

import (
	"github.com/born-ml/pessimal/internal/tensor"
)

// Type aliases for public API

// Scalar is a constraint for tensor element types.
// Supported: signed and unsigned integers of every width, float32, float64.
type Scalar = tensor.Scalar

// Dims is a constraint for fixed-rank shape arrays, [0]int through [8]int.
type Dims = tensor.Dims

// MaxRank is the highest supported rank.
const MaxRank = tensor.MaxRank

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Uint    DataType = tensor.Uint
	Uintptr DataType = tensor.Uintptr
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents tensor dimensions with a runtime length.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Storage is the contract for a fixed-length buffer of one scalar type.
type Storage[T Scalar, S any] = tensor.Storage[T, S]

// Allocator creates zero-filled storages.
type Allocator[T Scalar, S Storage[T, S]] = tensor.Allocator[T, S]

// UninitializedAllocator is an Allocator that can skip zero-filling.
type UninitializedAllocator[T Scalar, S Storage[T, S]] = tensor.UninitializedAllocator[T, S]

// HeapStorage is the reference storage: one contiguous Go slice.
type HeapStorage[T Scalar] = tensor.HeapStorage[T]

// HeapAllocator allocates HeapStorage. It always zero-fills.
type HeapAllocator[T Scalar] = tensor.HeapAllocator[T]

// PoolAllocator recycles HeapStorage buffers. Its uninitialized path skips zeroing.
type PoolAllocator[T Scalar] = tensor.PoolAllocator[T]

// PoolStats counts buffer reuse in a PoolAllocator.
type PoolStats = tensor.PoolStats

// MmapStorage is a buffer backed by an anonymous memory mapping.
type MmapStorage[T Scalar] = tensor.MmapStorage[T]

// MmapAllocator allocates MmapStorage.
type MmapAllocator[T Scalar] = tensor.MmapAllocator[T]

// Tensor is a fixed-rank tensor.
//
// T is the element type, D the shape array ([N]int, N is the rank) and S the storage.
//
// Example:
//
//	t, err := tensor.Zeros[float32, [2]int, *tensor.HeapStorage[float32]](
//	    tensor.Heap[float32](), [2]int{3, 4})
type Tensor[T Scalar, D Dims, S Storage[T, S]] = tensor.Tensor[T, D, S]

// Dense is a tensor backed by HeapStorage.
type Dense[T Scalar, D Dims] = tensor.Dense[T, D]

// Errors returned by constructors and allocators.
var (
	ErrNegativeLength    = tensor.ErrNegativeLength
	ErrNegativeDimension = tensor.ErrNegativeDimension
	ErrShapeOverflow     = tensor.ErrShapeOverflow
	ErrLengthMismatch    = tensor.ErrLengthMismatch
	ErrRankMismatch      = tensor.ErrRankMismatch
	ErrAllocationFailed  = tensor.ErrAllocationFailed
	ErrUnsupported       = tensor.ErrUnsupported
	ErrUnknownDataType   = tensor.ErrUnknownDataType
)

// Allocators

// Heap returns the reference heap allocator.
func Heap[T Scalar]() HeapAllocator[T] {
	return tensor.Heap[T]()
}

// NewPool creates a buffer-recycling allocator.
func NewPool[T Scalar]() *PoolAllocator[T] {
	return tensor.NewPool[T]()
}

// Mmap returns the memory-mapped allocator. Allocation fails with
// ErrUnsupported on platforms other than Unix and Windows.
func Mmap[T Scalar]() MmapAllocator[T] {
	return tensor.Mmap[T]()
}

// NewHeapStorage wraps data in a HeapStorage without copying.
func NewHeapStorage[T Scalar](data []T) *HeapStorage[T] {
	return tensor.NewHeapStorage(data)
}

// AllocUninitialized allocates n indeterminate elements, falling back to
// zero-fill for allocators without an uninitialized path.
func AllocUninitialized[T Scalar, S Storage[T, S]](a Allocator[T, S], n int) (S, error) {
	return tensor.AllocUninitialized(a, n)
}

// Creation functions

// New creates a tensor from a storage, shape and strides.
//
// This is a low-level function. Most users should use Zeros or DenseZeros instead.
func New[T Scalar, D Dims, S Storage[T, S]](storage S, shape, strides D) (*Tensor[T, D, S], error) {
	return tensor.New[T](storage, shape, strides)
}

// Zeros creates a zero-filled tensor with default strides.
//
// Example:
//
//	pool := tensor.NewPool[float64]()
//	x, err := tensor.Zeros[float64, [3]int, *tensor.HeapStorage[float64]](pool, [3]int{2, 3, 4})
func Zeros[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) (*Tensor[T, D, S], error) {
	return tensor.Zeros(a, shape)
}

// Uninitialized creates a tensor with indeterminate elements and default strides.
func Uninitialized[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) (*Tensor[T, D, S], error) {
	return tensor.Uninitialized(a, shape)
}

// MustZeros is like Zeros but panics on error.
func MustZeros[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) *Tensor[T, D, S] {
	return tensor.MustZeros(a, shape)
}

// MustUninitialized is like Uninitialized but panics on error.
func MustUninitialized[T Scalar, D Dims, S Storage[T, S]](a Allocator[T, S], shape D) *Tensor[T, D, S] {
	return tensor.MustUninitialized(a, shape)
}

// DenseZeros creates a zero-filled heap-backed tensor.
//
// Example:
//
//	x, err := tensor.DenseZeros[int32]([2]int{2, 3})
func DenseZeros[T Scalar, D Dims](shape D) (*Dense[T, D], error) {
	return tensor.DenseZeros[T](shape)
}

// DenseUninitialized creates a heap-backed tensor through the uninitialized path.
func DenseUninitialized[T Scalar, D Dims](shape D) (*Dense[T, D], error) {
	return tensor.DenseUninitialized[T](shape)
}

// FromSlice creates a heap-backed tensor that takes ownership of data.
func FromSlice[T Scalar, D Dims](data []T, shape D) (*Dense[T, D], error) {
	return tensor.FromSlice(data, shape)
}

// Utility functions

// DefaultStrides computes densely packed strides, first axis fastest.
//
// Example:
//
//	tensor.DefaultStrides([3]int{2, 3, 4}) // [1, 2, 6]
func DefaultStrides[D Dims](shape D) D {
	return tensor.DefaultStrides(shape)
}

// NumElements returns the element count of shape (1 for rank 0).
func NumElements[D Dims](shape D) (int, error) {
	return tensor.NumElements(shape)
}

// ShapeOf copies a fixed-rank shape into a Shape.
func ShapeOf[D Dims](shape D) Shape {
	return tensor.ShapeOf(shape)
}

// DimsOf converts a Shape to a fixed-rank array, failing with ErrRankMismatch.
func DimsOf[D Dims](s Shape) (D, error) {
	return tensor.DimsOf[D](s)
}

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Scalar]() DataType {
	return tensor.DataTypeOf[T]()
}

// ParseDataType returns the DataType with the given name.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}
