package tensor

import "fmt"

// HeapStorage is a single contiguous heap buffer owned by one storage value.
type HeapStorage[T Scalar] struct {
	data []T
	pool *PoolAllocator[T] // allocator that may recycle data, nil if none
}

// NewHeapStorage wraps data without copying. The caller must not keep
// using data afterwards; the storage owns it.
func NewHeapStorage[T Scalar](data []T) *HeapStorage[T] {
	return &HeapStorage[T]{data: data}
}

// Len returns the number of elements.
func (h *HeapStorage[T]) Len() int {
	return len(h.data)
}

// Data returns the backing slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the storage.
func (h *HeapStorage[T]) Data() []T {
	return h.data
}

// Clone creates a deep copy of the storage.
func (h *HeapStorage[T]) Clone() (*HeapStorage[T], error) {
	data, err := makeSlice[T](len(h.data))
	if err != nil {
		return nil, err
	}
	copy(data, h.data)
	return &HeapStorage[T]{data: data}, nil
}

// HeapAllocator allocates HeapStorage buffers.
//
// It has no cheaper uninitialized path, so AllocUninitialized zero-fills.
type HeapAllocator[T Scalar] struct{}

// Heap returns the reference heap allocator for T.
func Heap[T Scalar]() HeapAllocator[T] {
	return HeapAllocator[T]{}
}

// Zeros allocates n zeroed elements.
func (HeapAllocator[T]) Zeros(n int) (*HeapStorage[T], error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	data, err := makeSlice[T](n)
	if err != nil {
		return nil, err
	}
	return &HeapStorage[T]{data: data}, nil
}

// makeSlice allocates n elements, converting the runtime's
// "len out of range" panic into ErrAllocationFailed.
// Exhausting memory is still fatal to the process.
func makeSlice[T Scalar](n int) (data []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocationFailed, n, r)
		}
	}()
	return make([]T, n), nil
}
