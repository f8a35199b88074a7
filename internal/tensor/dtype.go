// Package tensor provides the fixed-rank tensor type and its backing storages.
package tensor

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"
)

// Scalar is a constraint for tensor element types.
// Every member supports +, -, *, / and is copied by value.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported data types.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
)

var dataTypeNames = [...]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int:     "int",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint:    "uint",
	Uintptr: "uintptr",
	Float32: "float32",
	Float64: "float64",
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Int, Uint:
		return strconv.IntSize / 8
	case Uintptr:
		return int(unsafe.Sizeof(uintptr(0)))
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// ParseDataType returns the DataType with the given name.
func ParseDataType(name string) (DataType, error) {
	for dt, n := range dataTypeNames {
		if n == name {
			return DataType(dt), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, name)
}

// DataTypeOf returns the DataType of T.
// Named types resolve to the tag of their underlying type.
func DataTypeOf[T Scalar]() DataType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		panic("unsupported type")
	}
}

// Zero returns the zero value of T.
func Zero[T Scalar]() T {
	var zero T
	return zero
}
