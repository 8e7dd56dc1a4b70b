package rows

import (
	"iter"
	"unsafe"

	"github.com/openmapi/mapikit/alloc"
	"github.com/openmapi/mapikit/prop"
)

// Row owns one row's array of tagged records and releases it exactly once.
type Row struct {
	a     alloc.Allocator
	count int
	props *prop.RawValue
}

// AdoptRow takes ownership of src's record array, zeroing src's count and
// pointer so the source can be dropped or released without a second free.
// Adopting an already-adopted (zeroed) row yields an empty Row whose Close
// performs no foreign call.
func AdoptRow(a alloc.Allocator, src *RawRow) *Row {
	r := &Row{a: a, count: int(src.Count), props: src.Props}
	src.Count = 0
	src.Props = nil
	if r.props == nil {
		r.count = 0
	}
	return r
}

// Len returns the number of records in the row.
func (r *Row) Len() int {
	return r.count
}

// IsEmpty reports whether the row has no records.
func (r *Row) IsEmpty() bool {
	return r.count == 0
}

// Raw returns the i'th raw record, or nil when i is out of range.
func (r *Row) Raw(i int) *prop.RawValue {
	if r.props == nil || i < 0 || i >= r.count {
		return nil
	}
	recs := unsafe.Slice(r.props, r.count)
	return &recs[i]
}

// Value decodes the i'th record. ok is false when i is out of range.
func (r *Row) Value(i int) (prop.Value, bool) {
	raw := r.Raw(i)
	if raw == nil {
		return prop.Value{}, false
	}
	return prop.Decode(raw), true
}

// Values returns a restartable sequence over the row's records, decoded on
// demand. A released or empty row yields nothing. The yielded values borrow
// the row's storage and must not be retained past Close.
func (r *Row) Values() iter.Seq[prop.Value] {
	return func(yield func(prop.Value) bool) {
		if r.props == nil {
			return
		}
		recs := unsafe.Slice(r.props, r.count)
		for i := range recs {
			if !yield(prop.Decode(&recs[i])) {
				return
			}
		}
	}
}

// Close releases the record array. The pointer is swapped to nil first, so a
// second Close performs no foreign call.
func (r *Row) Close() error {
	p := r.props
	r.props = nil
	r.count = 0
	if p == nil {
		return nil
	}
	return r.a.Free(unsafe.Pointer(p))
}
