// Package rows gives exactly-once-release semantics to row and row set
// structures allocated by the foreign table machinery.
//
// # Overview
//
// A table query fills an out-parameter with a row set: an outer array of
// rows, each of which carries its own independently allocated array of
// tagged property records. Ownership of the whole structure passes to the
// caller, who must release every piece exactly once or leak it.
//
// Adoption is the ownership transfer: AdoptRow moves a row's record array
// into a Row and zeroes the source, so the source can be dropped or released
// without a double free. Taking the rows out of a RowSet adopts each of them
// the same way; the set keeps the outer array until its own Close.
//
// Row.Close releases the record array; RowSet.Close releases any rows never
// adopted plus the outer array. The two releases are distinct foreign calls
// on disjoint memory.
//
// # Iteration
//
// Row.Values decodes records on demand and is restartable; a nil record
// pointer yields an empty sequence. Malformed records decode to error
// variants (see prop.Decode) so one bad record never aborts the row.
package rows
