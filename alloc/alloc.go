package alloc

import "unsafe"

// Allocator is the interface to the MAPI buffer allocator.
//
// Handles returned by Allocate and AllocateMore point at memory the Go
// runtime knows nothing about; the contents are uninitialized unless the
// implementation documents otherwise.
type Allocator interface {
	// Allocate requests a root allocation of byteCount bytes.
	// A successful call never returns a nil handle.
	Allocate(byteCount uint32) (unsafe.Pointer, error)

	// AllocateMore requests an allocation chained to root. The result is
	// released as a side effect of freeing root and must never be passed
	// to Free itself.
	AllocateMore(byteCount uint32, root unsafe.Pointer) (unsafe.Pointer, error)

	// Free releases a root allocation and every allocation chained to it.
	// Must be called exactly once per root.
	Free(root unsafe.Pointer) error

	// FreeRows releases a row set structure: each row's property array
	// that is still attached to the set, then the outer array itself.
	// rows must point at the wire layout described in the rows package.
	FreeRows(rows unsafe.Pointer) error
}
