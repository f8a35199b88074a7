//go:build unix

package tensor

import "golang.org/x/sys/unix"

// mapAnonymous maps size bytes of private, zero-filled memory (Unix implementation).
func mapAnonymous(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapAnonymous releases a region returned by mapAnonymous (Unix implementation).
func unmapAnonymous(region []byte) error {
	return unix.Munmap(region)
}
