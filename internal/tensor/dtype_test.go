package tensor

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Int8, DataTypeOf[int8]())
	assert.Equal(t, Int16, DataTypeOf[int16]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, Int, DataTypeOf[int]())
	assert.Equal(t, Uint8, DataTypeOf[uint8]())
	assert.Equal(t, Uint16, DataTypeOf[uint16]())
	assert.Equal(t, Uint32, DataTypeOf[uint32]())
	assert.Equal(t, Uint64, DataTypeOf[uint64]())
	assert.Equal(t, Uint, DataTypeOf[uint]())
	assert.Equal(t, Uintptr, DataTypeOf[uintptr]())
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Int8, 1}, {Uint8, 1},
		{Int16, 2}, {Uint16, 2},
		{Int32, 4}, {Uint32, 4}, {Float32, 4},
		{Int64, 8}, {Uint64, 8}, {Float64, 8},
		{Int, strconv.IntSize / 8}, {Uint, strconv.IntSize / 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), tt.dtype.String())
	}

	assert.Panics(t, func() { DataType(99).Size() })
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "int8", Int8.String())
	assert.Equal(t, "uintptr", Uintptr.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "unknown", DataType(-1).String())
	assert.Equal(t, "unknown", DataType(99).String())

	assert.True(t, Float32.IsFloat())
	assert.False(t, Int32.IsFloat())
}

func TestParseDataType(t *testing.T) {
	for dt := Int8; dt <= Float64; dt++ {
		parsed, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}

	_, err := ParseDataType("complex64")
	require.ErrorIs(t, err, ErrUnknownDataType)
}

func TestZero(t *testing.T) {
	assert.Equal(t, float32(0), Zero[float32]())
	assert.Equal(t, uint64(0), Zero[uint64]())
}
