//go:build windows

package tensor

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapAnonymous commits size bytes of private, zero-filled memory (Windows implementation).
func mapAnonymous(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// unmapAnonymous releases a region returned by mapAnonymous (Windows implementation).
func unmapAnonymous(region []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(region))), 0, windows.MEM_RELEASE)
}
