//go:build !windows

package alloc

import "unsafe"

// MAPI is the production Allocator bound to mapi32.dll. On non-Windows
// platforms every call fails with ErrUnavailable; use Slab instead.
type MAPI struct{}

func (MAPI) Allocate(byteCount uint32) (unsafe.Pointer, error) {
	return nil, ErrUnavailable
}

func (MAPI) AllocateMore(byteCount uint32, root unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrUnavailable
}

func (MAPI) Free(root unsafe.Pointer) error {
	return ErrUnavailable
}

func (MAPI) FreeRows(rows unsafe.Pointer) error {
	return ErrUnavailable
}
