package tensor

import "errors"

// Common errors.
var (
	ErrNegativeLength    = errors.New("negative storage length")
	ErrNegativeDimension = errors.New("negative dimension")
	ErrShapeOverflow     = errors.New("shape element count overflows int")
	ErrLengthMismatch    = errors.New("storage length does not match shape")
	ErrRankMismatch      = errors.New("rank mismatch")
	ErrAllocationFailed  = errors.New("allocation failed")
	ErrUnsupported       = errors.New("storage not supported on this platform")
	ErrUnknownDataType   = errors.New("unknown data type")
)
