package buffer

import (
	"fmt"
	"unsafe"

	"github.com/openmapi/mapikit/alloc"
	"github.com/openmapi/mapikit/internal/buf"
)

type state uint8

const (
	stateUninit state = iota
	stateReady
)

// treeRef is the capability every node of one allocation tree shares. It
// holds the root handle chaining and freeing resolve against; the root's
// Close nils it, which revokes chaining for every surviving node at once.
type treeRef struct {
	root unsafe.Pointer
}

// Buffer is one node of an allocation tree, typed as T. A node created by New
// is a root and owns the single Free call for the whole tree; a node created
// by Chain is released as a side effect of its root's Close.
type Buffer[T any] struct {
	a   alloc.Allocator
	ptr unsafe.Pointer // nil once closed or moved by Reinterpret
	cap int            // byte capacity of this node

	// tree is shared by every node chained from the same root. Chained
	// nodes never see a raw root handle; they go through the capability,
	// which the root's Close revokes.
	tree *treeRef

	// owns marks the root node, the one whose Close frees the tree.
	owns bool

	st state
}

// New requests a root allocation with room for count elements of type T.
// The returned buffer starts Uninitialized. Close releases the allocation
// and everything later chained from it.
func New[T any](a alloc.Allocator, count int) (*Buffer[T], error) {
	n, err := byteCount[T](count)
	if err != nil {
		return nil, err
	}
	p, err := a.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, alloc.ErrOutOfMemory)
	}
	return &Buffer[T]{a: a, ptr: p, cap: int(n), tree: &treeRef{root: p}, owns: true}, nil
}

// Chain requests an allocation with room for count elements of type P,
// chained to b's allocation tree. Whichever node Chain is called on, the new
// node is linked to the ultimate root and carries no free responsibility of
// its own: it lives exactly as long as the root. Once the root has closed,
// Chain fails with ErrClosed even when called on a still-open chained node;
// a freed root handle never reaches the allocator.
func Chain[P, T any](b *Buffer[T], count int) (*Buffer[P], error) {
	if b.ptr == nil || b.tree.root == nil {
		return nil, ErrClosed
	}
	n, err := byteCount[P](count)
	if err != nil {
		return nil, err
	}
	p, err := b.a.AllocateMore(n, b.tree.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, alloc.ErrOutOfMemory)
	}
	return &Buffer[P]{a: b.a, ptr: p, cap: int(n), tree: b.tree}, nil
}

// Reinterpret converts an Uninitialized buffer of element type T into one of
// element type P without allocating, preserving byte capacity and the
// chain/root relationship. b is consumed: its Close becomes a no-op and the
// returned buffer takes over the node. Fails with ErrAlreadyInitialized once
// b has been committed.
func Reinterpret[P, T any](b *Buffer[T]) (*Buffer[P], error) {
	if b.ptr == nil {
		return nil, ErrClosed
	}
	if b.st != stateUninit {
		return nil, ErrAlreadyInitialized
	}
	nb := &Buffer[P]{a: b.a, ptr: b.ptr, cap: b.cap, tree: b.tree, owns: b.owns}
	b.ptr = nil
	b.owns = false
	return nb, nil
}

// Uninit returns a writable pointer sized for one T before Commit has run.
// The memory it points at has not been initialized.
func (b *Buffer[T]) Uninit() (*T, error) {
	if err := b.checkUninit(1); err != nil {
		return nil, err
	}
	return (*T)(b.ptr), nil
}

// UninitSlice returns a writable slice of count elements before Commit has
// run. The memory it covers has not been initialized.
func (b *Buffer[T]) UninitSlice(count int) ([]T, error) {
	if err := b.checkUninit(count); err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(b.ptr), count), nil
}

// Commit asserts the buffer has been fully written and transitions it to
// Ready, returning the typed element. This is the package's single trust
// boundary: reading a T whose bytes were never written is undefined from the
// caller's point of view and cannot be detected here. A second Commit fails
// with ErrAlreadyInitialized.
func (b *Buffer[T]) Commit() (*T, error) {
	if err := b.checkUninit(1); err != nil {
		return nil, err
	}
	b.st = stateReady
	return (*T)(b.ptr), nil
}

// CommitSlice is Commit for a slice of count elements. The same trust
// contract applies to every element.
func (b *Buffer[T]) CommitSlice(count int) ([]T, error) {
	if err := b.checkUninit(count); err != nil {
		return nil, err
	}
	b.st = stateReady
	return unsafe.Slice((*T)(b.ptr), count), nil
}

// Ptr returns the typed element once the buffer is Ready.
func (b *Buffer[T]) Ptr() (*T, error) {
	if err := b.checkReady(1); err != nil {
		return nil, err
	}
	return (*T)(b.ptr), nil
}

// Slice returns a typed slice of count elements once the buffer is Ready.
func (b *Buffer[T]) Slice(count int) ([]T, error) {
	if err := b.checkReady(count); err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(b.ptr), count), nil
}

// ByteCapacity returns the node's capacity in bytes.
func (b *Buffer[T]) ByteCapacity() int {
	return b.cap
}

// Close releases the buffer. For a root node this performs the single Free
// covering the whole chain and revokes the shared tree capability, so later
// Chain calls on surviving nodes fail instead of touching freed memory. The
// handles are swapped to nil first, so a second Close is inert. For a
// chained node Close never calls the allocator: the memory is released when
// the root closes.
func (b *Buffer[T]) Close() error {
	p := b.ptr
	b.ptr = nil
	if p == nil || !b.owns {
		return nil
	}
	root := b.tree.root
	b.tree.root = nil
	if root == nil {
		return nil
	}
	return b.a.Free(root)
}

func (b *Buffer[T]) checkUninit(count int) error {
	if b.ptr == nil {
		return ErrClosed
	}
	if b.st != stateUninit {
		return ErrAlreadyInitialized
	}
	return b.checkBounds(count)
}

func (b *Buffer[T]) checkReady(count int) error {
	if b.ptr == nil {
		return ErrClosed
	}
	if b.st != stateReady {
		return ErrNotInitialized
	}
	return b.checkBounds(count)
}

func (b *Buffer[T]) checkBounds(count int) error {
	var zero T
	if !buf.Fits(count, int(unsafe.Sizeof(zero)), b.cap) {
		return fmt.Errorf("%w: %d elements of %d bytes in %d-byte buffer",
			ErrOutOfBounds, count, unsafe.Sizeof(zero), b.cap)
	}
	return nil
}

// byteCount sizes count elements of T in the allocator's 32-bit parameter,
// surfacing overflow instead of truncating.
func byteCount[T any](count int) (uint32, error) {
	var zero T
	n, ok := buf.ElemBytes(count, int(unsafe.Sizeof(zero)))
	if !ok {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrSizeOverflow, count, unsafe.Sizeof(zero))
	}
	u, ok := buf.U32(n)
	if !ok {
		return 0, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, n)
	}
	return u, nil
}
