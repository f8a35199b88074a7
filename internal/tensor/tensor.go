package tensor

import "fmt"

// Tensor is an N-dimensional view over a flat storage buffer.
//
// Type Parameters:
//   - T: Element type (must satisfy Scalar)
//   - D: Shape/stride array; its length is the rank (must satisfy Dims)
//   - S: Backing storage (must implement Storage[T, S])
//
// A tensor exclusively owns its storage. Shape and strides are fixed at
// construction; element data changes only through StorageMut or Data.
//
// Example:
//
//	t, _ := tensor.Zeros[int32, [2]int, *tensor.HeapStorage[int32]](tensor.Heap[int32](), [2]int{2, 3})
//	t.Strides() // [1, 2]
type Tensor[T Scalar, D Dims, S Storage[T, S]] struct {
	storage S
	shape   D
	strides D
}

// New creates a tensor from a storage, shape and strides.
// It takes ownership of storage without copying it.
//
// storage.Len() must equal the shape's element count; a mismatch is reported
// as ErrLengthMismatch. Strides are used as given.
func New[T Scalar, D Dims, S Storage[T, S]](storage S, shape, strides D) (*Tensor[T, D, S], error) {
	n, err := NumElements(shape)
	if err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	if storage.Len() != n {
		return nil, fmt.Errorf("%w: storage has %d elements, shape %v requires %d",
			ErrLengthMismatch, storage.Len(), shape, n)
	}

	return &Tensor[T, D, S]{
		storage: storage,
		shape:   shape,
		strides: strides,
	}, nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T, D, S]) Shape() D {
	return t.shape
}

// Strides returns a copy of the tensor's strides, in elements.
func (t *Tensor[T, D, S]) Strides() D {
	return t.strides
}

// Rank returns the number of axes.
func (t *Tensor[T, D, S]) Rank() int {
	return len(t.shape)
}

// Dims returns the shape as a runtime-length Shape.
func (t *Tensor[T, D, S]) Dims() Shape {
	return ShapeOf(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T, D, S]) NumElements() int {
	return t.storage.Len()
}

// DType returns the tensor's data type.
func (t *Tensor[T, D, S]) DType() DataType {
	return DataTypeOf[T]()
}

// ByteSize returns the total element size in bytes.
func (t *Tensor[T, D, S]) ByteSize() int {
	return t.NumElements() * t.DType().Size()
}

// Storage returns the backing storage for reading.
func (t *Tensor[T, D, S]) Storage() S {
	return t.storage
}

// StorageMut returns the backing storage for writing.
// Callers translate multi-axis indices to flat offsets with Strides.
func (t *Tensor[T, D, S]) StorageMut() S {
	return t.storage
}

// Data returns the storage's element slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, D, S]) Data() []T {
	return t.storage.Data()
}

// Clone creates a deep copy of the tensor, storage included.
func (t *Tensor[T, D, S]) Clone() (*Tensor[T, D, S], error) {
	storage, err := t.storage.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone storage: %w", err)
	}
	return &Tensor[T, D, S]{
		storage: storage,
		shape:   t.shape,
		strides: t.strides,
	}, nil
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, D, S]) String() string {
	return fmt.Sprintf("Tensor[%s]%v strides=%v", t.DType(), t.shape, t.strides)
}
