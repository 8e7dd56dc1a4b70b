// Package prop models property tags and tagged property values.
//
// # Overview
//
// A property is identified by a 32-bit Tag: a 16-bit property identifier in
// the high word and a 16-bit type code in the low word. The value travels as
// a RawValue, a C-layout record whose payload is a union discriminated by
// that type code.
//
// Decode converts a borrowed RawValue into a Value, a sum type that can be
// switched on without touching the union. Decoding is total: a nil payload
// pointer becomes ErrorCode(CodePointer) and an unrecognized type code
// becomes ErrorCode(CodeInvalidArgument); there is no panic path for a
// malformed record.
//
// # Ownership
//
// Pointer-carrying variants (Binary, the array variants, AnsiString,
// WideString) borrow from the row storage the RawValue lives in. They are
// valid only while that storage is alive; see the rows package.
package prop
