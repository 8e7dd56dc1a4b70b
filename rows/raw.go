package rows

import "github.com/openmapi/mapikit/prop"

// RawRow mirrors the foreign row layout: a reserved word, a record count,
// and a pointer to this row's own allocation of tagged records.
type RawRow struct {
	_     uint32
	Count uint32
	Props *prop.RawValue
}

// RawRowSet mirrors the foreign row set layout: a row count followed by the
// rows inline. Rows is declared with one element; the real length is Count
// and the array continues past the struct.
type RawRowSet struct {
	Count uint32
	_     uint32
	Rows  [1]RawRow
}
