package buffer

import (
	"unsafe"

	"github.com/openmapi/mapikit/alloc"
)

// OutParam holds an out-pointer for foreign calls that perform their own
// root allocation and fill a caller-provided pointer. Unlike Buffer, no size
// is known here, so the typed accessors only guard against nil.
type OutParam[T any] struct {
	a   alloc.Allocator
	ptr *T
}

// NewOutParam returns an empty OutParam that will release any adopted
// allocation through a.
func NewOutParam[T any](a alloc.Allocator) *OutParam[T] {
	return &OutParam[T]{a: a}
}

// Out returns the location a foreign call fills with a newly allocated
// buffer. Close the OutParam before reusing it for a second call; letting a
// new allocation overwrite a held one leaks the first.
func (o *OutParam[T]) Out() **T {
	return &o.ptr
}

// Ptr returns the held element, or nil when the foreign call never filled
// the out-pointer. No capacity validation is possible for foreign-sized
// allocations; the caller must trust the producing call's contract.
func (o *OutParam[T]) Ptr() *T {
	return o.ptr
}

// Slice returns count elements over the held allocation, or nil when the
// out-pointer was never filled. count comes from the producing call's
// contract and is not validated here.
func (o *OutParam[T]) Slice(count int) []T {
	if o.ptr == nil || count <= 0 {
		return nil
	}
	return unsafe.Slice(o.ptr, count)
}

// Close releases the held allocation, if any, exactly once.
func (o *OutParam[T]) Close() error {
	p := o.ptr
	o.ptr = nil
	if p == nil {
		return nil
	}
	return o.a.Free(unsafe.Pointer(p))
}
