package alloc

import (
	"fmt"
	"unsafe"
)

// Wire layout of a row set, mirrored from the rows package so that Slab can
// honor the FreeRows contract without importing it. The foreign allocator
// knows this layout natively.
const (
	rowSetRowsOffset = 8  // offset of the first row within the set
	rowStride        = 16 // size of one row record
	rowPropsOffset   = 8  // offset of the property array pointer within a row
)

// Slab is a portable Allocator backed by Go memory. It honors the chaining
// and exactly-once release contract of the MAPI allocator and additionally
// detects contract violations (double free, freeing a chained handle), which
// makes it the allocator of choice for tests.
//
// Unlike the foreign allocator, Slab memory is zeroed. Callers must not rely
// on that.
type Slab struct {
	// blocks pins the backing array of every live allocation, keyed by its
	// base pointer. Entries are removed on release so the Go collector can
	// reclaim them.
	blocks map[unsafe.Pointer][]uint64

	// chains maps a root handle to the handles chained to it.
	chains map[unsafe.Pointer][]unsafe.Pointer
}

// NewSlab returns an empty Slab allocator.
func NewSlab() *Slab {
	return &Slab{
		blocks: make(map[unsafe.Pointer][]uint64),
		chains: make(map[unsafe.Pointer][]unsafe.Pointer),
	}
}

// Allocate creates a root allocation.
func (s *Slab) Allocate(byteCount uint32) (unsafe.Pointer, error) {
	p := s.block(byteCount)
	s.chains[p] = nil
	return p, nil
}

// AllocateMore creates an allocation chained to root. root must be a live
// root handle previously returned by Allocate.
func (s *Slab) AllocateMore(byteCount uint32, root unsafe.Pointer) (unsafe.Pointer, error) {
	if _, ok := s.chains[root]; !ok {
		return nil, fmt.Errorf("%w: AllocateMore root %p", ErrUnknownRoot, root)
	}
	p := s.block(byteCount)
	s.chains[root] = append(s.chains[root], p)
	return p, nil
}

// Free releases root and everything chained to it. Freeing a handle that is
// not a live root fails with ErrUnknownRoot.
func (s *Slab) Free(root unsafe.Pointer) error {
	chained, ok := s.chains[root]
	if !ok {
		return fmt.Errorf("%w: Free %p", ErrUnknownRoot, root)
	}
	for _, p := range chained {
		delete(s.blocks, p)
	}
	delete(s.chains, root)
	delete(s.blocks, root)
	return nil
}

// FreeRows walks the row set at rows, releases the property array of every
// row still attached to it, then releases the outer array. Rows whose
// property pointer was zeroed by adoption are skipped.
func (s *Slab) FreeRows(rows unsafe.Pointer) error {
	if _, ok := s.chains[rows]; !ok {
		return fmt.Errorf("%w: FreeRows %p", ErrUnknownRoot, rows)
	}
	count := *(*uint32)(rows)
	for i := uintptr(0); i < uintptr(count); i++ {
		row := unsafe.Add(rows, rowSetRowsOffset+i*rowStride)
		props := *(*unsafe.Pointer)(unsafe.Add(row, rowPropsOffset))
		if props == nil {
			continue
		}
		if err := s.Free(props); err != nil {
			return err
		}
	}
	return s.Free(rows)
}

// Live returns the number of allocations still outstanding.
func (s *Slab) Live() int {
	return len(s.blocks)
}

// block allocates zeroed, 8-byte-aligned backing memory and pins it.
func (s *Slab) block(byteCount uint32) unsafe.Pointer {
	words := (int(byteCount) + 7) / 8
	if words == 0 {
		words = 1 // zero-byte allocations still need a unique handle
	}
	backing := make([]uint64, words)
	p := unsafe.Pointer(&backing[0])
	s.blocks[p] = backing
	return p
}
