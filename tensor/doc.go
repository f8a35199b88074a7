// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-rank, N-dimensional tensors over pluggable storage.
//
// # Overview
//
// A tensor pairs a flat storage buffer with a shape (elements per axis) and
// strides (elements to skip per axis step). This package provides:
//   - Generic tensors (Tensor[T, D, S]) whose rank is part of the type
//   - A storage contract with heap, pooled and memory-mapped implementations
//   - Default densely packed strides
//
// There is no arithmetic, broadcasting or slicing: tensors are a data layout only.
//
// # Basic Usage
//
//	import "github.com/born-ml/pessimal/tensor"
//
//	func main() {
//	    t, err := tensor.DenseZeros[int32]([2]int{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    t.Strides() // [1, 2]
//
//	    data := t.StorageMut().Data()
//	    data[0] = 7
//	    data[5] = 42
//	}
//
// # Rank
//
// The shape type D is a Go array, [0]int through [8]int. A rank-0 tensor
// holds a single element.
//
// # Strides
//
// Default strides make the first axis vary fastest:
//
//	stride[0] = 1
//	stride[i] = stride[i-1] * shape[i-1]
//
// so shape [2, 3] has strides [1, 2]. Indexing is left to the caller: the
// flat offset of an index is the sum of index[i] * stride[i].
//
// # Storage
//
// Storage implementations:
//   - HeapStorage: one contiguous Go slice (Heap, NewPool)
//   - MmapStorage: an anonymous memory mapping on Unix and Windows (Mmap)
//
// Allocators that cannot skip initialization zero-fill on the uninitialized path.
//
// # Errors
//
// Constructors return errors matching the Err* variables via errors.Is.
// The storage/shape length check is always performed.
package tensor
