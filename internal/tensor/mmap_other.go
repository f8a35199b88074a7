//go:build !unix && !windows

package tensor

// mapAnonymous is not implemented on this platform.
func mapAnonymous(_ int) ([]byte, error) {
	return nil, ErrUnsupported
}

// unmapAnonymous is not implemented on this platform.
func unmapAnonymous(_ []byte) error {
	return ErrUnsupported
}
