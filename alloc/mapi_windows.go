//go:build windows

package alloc

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modMAPI32 = windows.NewLazySystemDLL("mapi32.dll")

	procMAPIAllocateBuffer = modMAPI32.NewProc("MAPIAllocateBuffer")
	procMAPIAllocateMore   = modMAPI32.NewProc("MAPIAllocateMore")
	procMAPIFreeBuffer     = modMAPI32.NewProc("MAPIFreeBuffer")
	procFreeProws          = modMAPI32.NewProc("FreeProws")
)

// MAPI is the production Allocator bound to mapi32.dll. The zero value is
// ready to use; the DLL is resolved lazily on the first call.
type MAPI struct{}

func (MAPI) Allocate(byteCount uint32) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	scode, _, _ := procMAPIAllocateBuffer.Call(
		uintptr(byteCount),
		uintptr(unsafe.Pointer(&out)),
	)
	if scode != 0 {
		return nil, fmt.Errorf("%w: MAPIAllocateBuffer scode 0x%08x", ErrCallFailed, scode)
	}
	if out == nil {
		// The documented contract has no failure conditions, but a null
		// handle on success can only mean the allocation did not happen.
		return nil, ErrOutOfMemory
	}
	return out, nil
}

func (MAPI) AllocateMore(byteCount uint32, root unsafe.Pointer) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	scode, _, _ := procMAPIAllocateMore.Call(
		uintptr(byteCount),
		uintptr(root),
		uintptr(unsafe.Pointer(&out)),
	)
	if scode != 0 {
		return nil, fmt.Errorf("%w: MAPIAllocateMore scode 0x%08x", ErrCallFailed, scode)
	}
	if out == nil {
		return nil, ErrOutOfMemory
	}
	return out, nil
}

func (MAPI) Free(root unsafe.Pointer) error {
	scode, _, _ := procMAPIFreeBuffer.Call(uintptr(root))
	if scode != 0 {
		return fmt.Errorf("%w: MAPIFreeBuffer scode 0x%08x", ErrCallFailed, scode)
	}
	return nil
}

func (MAPI) FreeRows(rows unsafe.Pointer) error {
	scode, _, _ := procFreeProws.Call(uintptr(rows))
	if scode != 0 {
		return fmt.Errorf("%w: FreeProws scode 0x%08x", ErrCallFailed, scode)
	}
	return nil
}
