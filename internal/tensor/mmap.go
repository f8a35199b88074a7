package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

const maxMappableBytes = math.MaxInt

// MmapStorage is a buffer backed by an anonymous private memory mapping.
// The mapping lives outside the Go heap and must be released with Close.
type MmapStorage[T Scalar] struct {
	region []byte // mapped bytes, nil for zero-length storages
	data   []T
}

// Len returns the number of elements.
func (m *MmapStorage[T]) Len() int {
	return len(m.data)
}

// Data returns the mapped elements (zero-copy).
//
// WARNING: The slice is invalid after Close.
func (m *MmapStorage[T]) Data() []T {
	return m.data
}

// Clone maps a new region and copies the elements into it.
func (m *MmapStorage[T]) Clone() (*MmapStorage[T], error) {
	clone, err := newMmapStorage[T](len(m.data))
	if err != nil {
		return nil, err
	}
	copy(clone.data, m.data)
	return clone, nil
}

// Close unmaps the region. Calling Close more than once is safe.
func (m *MmapStorage[T]) Close() error {
	if m.region == nil {
		m.data = nil
		return nil
	}
	err := unmapAnonymous(m.region)
	m.region = nil
	m.data = nil
	if err != nil {
		return fmt.Errorf("munmap failed: %w", err)
	}
	return nil
}

// MmapAllocator allocates storages from anonymous memory mappings.
// The kernel hands out zero-filled pages, so Uninitialized costs the same as Zeros.
type MmapAllocator[T Scalar] struct{}

// Mmap returns the memory-mapped allocator for T.
func Mmap[T Scalar]() MmapAllocator[T] {
	return MmapAllocator[T]{}
}

// Zeros maps n zeroed elements.
func (MmapAllocator[T]) Zeros(n int) (*MmapStorage[T], error) {
	return newMmapStorage[T](n)
}

// Uninitialized maps n elements. Fresh mappings are always zero-filled.
func (MmapAllocator[T]) Uninitialized(n int) (*MmapStorage[T], error) {
	return newMmapStorage[T](n)
}

func newMmapStorage[T Scalar](n int) (*MmapStorage[T], error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if n == 0 {
		return &MmapStorage[T]{data: []T{}}, nil
	}

	size := DataTypeOf[T]().Size()
	if n > maxMappableBytes/size {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrAllocationFailed, n, size)
	}

	region, err := mapAnonymous(n * size)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrAllocationFailed, n*size, err)
	}

	//nolint:gosec // unsafe.Slice over a page-aligned mapping sized for n elements
	data := unsafe.Slice((*T)(unsafe.Pointer(&region[0])), n)
	return &MmapStorage[T]{region: region, data: data}, nil
}
