package rows

import (
	"unsafe"

	"github.com/openmapi/mapikit/alloc"
)

// RowSet owns the outer row array of a table query result. Each row's record
// array is a separate allocation owned by the Row that adopts it; the set
// owns only the outer structure and whatever rows were never adopted.
type RowSet struct {
	a   alloc.Allocator
	raw *RawRowSet
}

// NewRowSet returns an empty RowSet whose Out location can be filled by a
// foreign call. Releases go through a.
func NewRowSet(a alloc.Allocator) *RowSet {
	return &RowSet{a: a}
}

// AdoptRowSet takes ownership of an already-populated row set structure.
func AdoptRowSet(a alloc.Allocator, raw *RawRowSet) *RowSet {
	return &RowSet{a: a, raw: raw}
}

// Out returns the location a foreign call fills with the row set it
// allocates.
func (s *RowSet) Out() **RawRowSet {
	return &s.raw
}

// Len returns the number of rows. A set never filled in has length 0.
func (s *RowSet) Len() int {
	if s.raw == nil {
		return 0
	}
	return int(s.raw.Count)
}

// IsEmpty reports whether the set holds no rows.
func (s *RowSet) IsEmpty() bool {
	return s.Len() == 0
}

// Take adopts every row out of the set, zeroing each raw row, and returns
// the owned Rows. Each Row must be closed independently; the set still owns
// the outer array until Close. Taking twice returns rows that are all empty,
// since adoption already zeroed the sources.
func (s *RowSet) Take() []*Row {
	raw := s.rawRows()
	if raw == nil {
		return nil
	}
	out := make([]*Row, len(raw))
	for i := range raw {
		out[i] = AdoptRow(s.a, &raw[i])
	}
	return out
}

// Close releases any rows never adopted and then the outer array, in a
// single foreign call. The handle is swapped to nil first, so a second Close
// performs no foreign call.
func (s *RowSet) Close() error {
	raw := s.raw
	s.raw = nil
	if raw == nil {
		return nil
	}
	return s.a.FreeRows(unsafe.Pointer(raw))
}

func (s *RowSet) rawRows() []RawRow {
	if s.raw == nil || s.raw.Count == 0 {
		return nil
	}
	return unsafe.Slice(&s.raw.Rows[0], s.raw.Count)
}
