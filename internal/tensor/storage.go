package tensor

import "fmt"

// Storage is a fixed-length, mutable buffer of one scalar type.
//
// S is the concrete storage type itself, so Clone can return it without
// a type assertion. Len never changes after the storage is created.
type Storage[T Scalar, S any] interface {
	// Len returns the number of elements.
	Len() int

	// Data returns the element slice. Writes through it modify the storage.
	Data() []T

	// Clone returns an independent storage with equal contents.
	Clone() (S, error)
}

// Allocator creates storages of type S.
type Allocator[T Scalar, S Storage[T, S]] interface {
	// Zeros allocates n elements, all set to the zero value.
	// The result never aliases another storage.
	Zeros(n int) (S, error)
}

// UninitializedAllocator is implemented by allocators that can skip
// zero-filling. Elements of the result are indeterminate until written.
type UninitializedAllocator[T Scalar, S Storage[T, S]] interface {
	Allocator[T, S]
	Uninitialized(n int) (S, error)
}

// AllocUninitialized allocates n elements with indeterminate contents.
// Allocators without an Uninitialized method fall back to Zeros.
func AllocUninitialized[T Scalar, S Storage[T, S]](a Allocator[T, S], n int) (S, error) {
	if u, ok := a.(UninitializedAllocator[T, S]); ok {
		return u.Uninitialized(n)
	}
	return a.Zeros(n)
}

// checkLength validates a requested storage length.
func checkLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return nil
}
