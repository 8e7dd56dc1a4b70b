package alloc

import "errors"

var (
	// ErrUnavailable indicates the MAPI allocator is not present on this platform.
	ErrUnavailable = errors.New("alloc: mapi allocator unavailable on this platform")

	// ErrOutOfMemory indicates the allocation call reported success but returned
	// a null handle.
	ErrOutOfMemory = errors.New("alloc: allocation returned null handle")

	// ErrCallFailed indicates the foreign allocation or free call reported an error.
	ErrCallFailed = errors.New("alloc: foreign call failed")

	// ErrUnknownRoot indicates a handle that is not a live root allocation:
	// never allocated here, chained rather than root, or already freed.
	ErrUnknownRoot = errors.New("alloc: unknown or already freed root handle")
)
