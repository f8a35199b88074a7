package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocator_Zeros(t *testing.T) {
	s, err := Heap[float64]().Zeros(5)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, s.Data())

	empty, err := Heap[float64]().Zeros(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestHeapAllocator_NegativeLength(t *testing.T) {
	_, err := Heap[int8]().Zeros(-1)
	require.ErrorIs(t, err, ErrNegativeLength)

	_, err = AllocUninitialized[int8, *HeapStorage[int8]](Heap[int8](), -3)
	require.ErrorIs(t, err, ErrNegativeLength)
}

func TestHeapAllocator_FreshBuffers(t *testing.T) {
	a, err := Heap[int32]().Zeros(3)
	require.NoError(t, err)
	b, err := Heap[int32]().Zeros(3)
	require.NoError(t, err)

	a.Data()[0] = 1
	assert.Equal(t, int32(0), b.Data()[0], "storages must not alias")
}

func TestHeapStorage_Clone(t *testing.T) {
	s := NewHeapStorage([]uint16{1, 2, 3})

	clone, err := s.Clone()
	require.NoError(t, err)
	assert.Equal(t, s.Data(), clone.Data())

	clone.Data()[0] = 100
	assert.Equal(t, []uint16{1, 2, 3}, s.Data())
	assert.Equal(t, 3, clone.Len())

	empty, err := NewHeapStorage[uint16](nil).Clone()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestMakeSlice_AllocationFailure(t *testing.T) {
	_, err := makeSlice[float64](int(^uint(0) >> 1))
	require.ErrorIs(t, err, ErrAllocationFailed)
}

func TestAllocUninitialized_FallsBackToZeros(t *testing.T) {
	s, err := AllocUninitialized[float32, *HeapStorage[float32]](Heap[float32](), 4)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float32{0, 0, 0, 0}, s.Data())
}

func TestPoolAllocator(t *testing.T) {
	pool := NewPool[int32]()

	first, err := pool.Zeros(4)
	require.NoError(t, err)
	copy(first.Data(), []int32{1, 2, 3, 4})
	pool.Release(first)

	assert.Equal(t, 0, first.Len(), "released storage is emptied")
	assert.Equal(t, 1, pool.Len())

	t.Run("uninitialized reuses without clearing", func(t *testing.T) {
		s, err := AllocUninitialized[int32, *HeapStorage[int32]](pool, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, s.Len())
		assert.Equal(t, []int32{1, 2, 3, 4}, s.Data())
		pool.Release(s)
	})

	t.Run("zeros clears a reused buffer", func(t *testing.T) {
		s, err := pool.Zeros(4)
		require.NoError(t, err)
		assert.Equal(t, []int32{0, 0, 0, 0}, s.Data())
	})

	t.Run("length mismatch allocates fresh", func(t *testing.T) {
		s, err := pool.Uninitialized(7)
		require.NoError(t, err)
		assert.Equal(t, 7, s.Len())
	})

	stats := pool.Stats()
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
	assert.Equal(t, 2, stats.Released)
	assert.Equal(t, 0, pool.Len())
}

func TestPoolAllocator_ReleaseNil(t *testing.T) {
	pool := NewPool[float32]()
	assert.False(t, pool.Release(nil))
	assert.False(t, pool.Release(&HeapStorage[float32]{}))

	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, PoolStats{}, pool.Stats())
}

func TestPoolAllocator_RejectsForeignStorage(t *testing.T) {
	pool := NewPool[int32]()
	other := NewPool[int32]()

	user := make([]int32, 4)
	wrapped := NewHeapStorage(user)
	fromOther, err := other.Zeros(4)
	require.NoError(t, err)
	owned, err := pool.Zeros(4)
	require.NoError(t, err)
	clone, err := owned.Clone()
	require.NoError(t, err)

	assert.False(t, pool.Release(wrapped), "caller slice")
	assert.False(t, pool.Release(fromOther), "other pool")
	assert.False(t, pool.Release(clone), "clone of a pool storage")

	assert.Equal(t, 4, wrapped.Len(), "rejected storage is left intact")
	assert.Equal(t, 4, fromOther.Len())
	assert.Equal(t, 0, pool.Len())
	assert.Equal(t, 3, pool.Stats().Rejected)
	assert.Equal(t, 0, pool.Stats().Released)

	fresh, err := pool.Zeros(4)
	require.NoError(t, err)
	user[0] = 99
	assert.Equal(t, []int32{0, 0, 0, 0}, fresh.Data(), "fresh storage must not alias the caller slice")
}

func TestPoolAllocator_ReleaseTwice(t *testing.T) {
	pool := NewPool[uint8]()
	s, err := pool.Zeros(2)
	require.NoError(t, err)

	assert.True(t, pool.Release(s))
	assert.False(t, pool.Release(s))
	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, 1, pool.Stats().Released)
}

func TestPoolAllocator_NegativeLength(t *testing.T) {
	_, err := NewPool[float32]().Zeros(-1)
	require.ErrorIs(t, err, ErrNegativeLength)
}
