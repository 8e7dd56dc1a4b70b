package buffer

import "errors"

var (
	// ErrSizeOverflow indicates the requested byte count does not fit the
	// allocator's 32-bit size parameter.
	ErrSizeOverflow = errors.New("buffer: byte count exceeds allocator size parameter")

	// ErrAllocationFailed indicates the allocator call failed or reported
	// success with a null handle.
	ErrAllocationFailed = errors.New("buffer: allocation failed")

	// ErrOutOfBounds indicates a typed view larger than the buffer's byte
	// capacity.
	ErrOutOfBounds = errors.New("buffer: typed view exceeds buffer capacity")

	// ErrAlreadyInitialized indicates a second Commit, or an uninit view
	// requested after Commit.
	ErrAlreadyInitialized = errors.New("buffer: buffer already committed")

	// ErrNotInitialized indicates typed access before Commit.
	ErrNotInitialized = errors.New("buffer: buffer not committed")

	// ErrClosed indicates use of a buffer after Close or after it was
	// consumed by Reinterpret.
	ErrClosed = errors.New("buffer: buffer closed or moved")
)
