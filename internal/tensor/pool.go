package tensor

// PoolStats counts buffer reuse in a PoolAllocator.
type PoolStats struct {
	Hits     int // Allocations served from a released buffer.
	Misses   int // Allocations that needed a fresh buffer.
	Released int // Buffers returned via Release.
	Rejected int // Release calls for storages this pool did not allocate.
}

// PoolAllocator recycles released buffers, bucketed by exact length.
//
// Uninitialized hands out recycled buffers as-is, so their elements hold
// whatever the previous owner wrote. Only storages allocated by the pool
// itself are recycled. PoolAllocator is not safe for concurrent use.
type PoolAllocator[T Scalar] struct {
	free  map[int][][]T
	stats PoolStats
}

// NewPool creates an empty pool allocator.
func NewPool[T Scalar]() *PoolAllocator[T] {
	return &PoolAllocator[T]{free: make(map[int][][]T)}
}

// Zeros allocates n elements set to zero, reusing a released buffer if one fits.
func (p *PoolAllocator[T]) Zeros(n int) (*HeapStorage[T], error) {
	data, err := p.take(n)
	if err != nil {
		return nil, err
	}
	clear(data)
	return &HeapStorage[T]{data: data, pool: p}, nil
}

// Uninitialized allocates n elements without clearing recycled buffers.
// Fresh buffers are still zeroed by the runtime.
func (p *PoolAllocator[T]) Uninitialized(n int) (*HeapStorage[T], error) {
	data, err := p.take(n)
	if err != nil {
		return nil, err
	}
	return &HeapStorage[T]{data: data, pool: p}, nil
}

// Release returns the storage's buffer to the pool and reports whether it
// was accepted. Storages from another allocator, clones, and storages
// wrapping caller slices are rejected and left untouched, so a recycled
// buffer never aliases memory someone else still holds.
//
// An accepted storage is left empty. Any tensor owning it must be
// discarded before Release: its shape no longer matches the storage.
func (p *PoolAllocator[T]) Release(s *HeapStorage[T]) bool {
	if s == nil || s.data == nil {
		return false
	}
	if s.pool != p {
		p.stats.Rejected++
		return false
	}
	n := len(s.data)
	p.free[n] = append(p.free[n], s.data)
	s.data = nil
	s.pool = nil
	p.stats.Released++
	return true
}

// Stats returns the pool's reuse counters.
func (p *PoolAllocator[T]) Stats() PoolStats {
	return p.stats
}

// Len returns the number of buffers waiting to be reused.
func (p *PoolAllocator[T]) Len() int {
	total := 0
	for _, bufs := range p.free {
		total += len(bufs)
	}
	return total
}

func (p *PoolAllocator[T]) take(n int) ([]T, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if bufs := p.free[n]; len(bufs) > 0 {
		data := bufs[len(bufs)-1]
		bufs[len(bufs)-1] = nil
		p.free[n] = bufs[:len(bufs)-1]
		p.stats.Hits++
		return data, nil
	}
	p.stats.Misses++
	return makeSlice[T](n)
}
