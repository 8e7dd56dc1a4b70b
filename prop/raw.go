package prop

import "unsafe"

// RawValue mirrors the foreign tagged record layout: a 32-bit tag, a
// pointer-sized alignment pad, and a 16-byte union payload whose valid
// member is selected by the tag's type code. The pad is ULONG_PTR on the
// foreign side, so the union sits at offset 16 and the record strides 32
// bytes on 64-bit platforms. Arrays of RawValue coming back from table
// queries are read in place; the Set accessors exist for filling buffers
// before handing them to the foreign API.
type RawValue struct {
	Tag  Tag
	_    uintptr
	data [16]byte
}

// RawBinary mirrors the foreign counted byte buffer (SBinary shape): a
// 32-bit count, padding, and a pointer to the bytes.
type RawBinary struct {
	Count uint32
	_     uint32
	Data  *byte
}

// Bytes returns the counted bytes, or nil when the pointer is nil. The slice
// borrows from the storage the RawBinary points into.
func (b RawBinary) Bytes() []byte {
	if b.Data == nil {
		return nil
	}
	return unsafe.Slice(b.Data, b.Count)
}

// rawAs reinterprets the union payload as T. T must be at most 16 bytes.
func rawAs[T any](v *RawValue) T {
	return *(*T)(unsafe.Pointer(&v.data))
}

// put writes x into the union payload.
func put[T any](v *RawValue, x T) {
	*(*T)(unsafe.Pointer(&v.data)) = x
}

// mvPtr reads the counted-array form of the union: a 32-bit count followed
// by a pointer at offset 8.
func (v *RawValue) mvPtr() (count uint32, ptr unsafe.Pointer) {
	count = rawAs[uint32](v)
	ptr = *(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(&v.data), 8))
	return count, ptr
}

func (v *RawValue) SetShort(x int16)            { put(v, x) }
func (v *RawValue) SetLong(x int32)             { put(v, x) }
func (v *RawValue) SetFloat(x float32)          { put(v, x) }
func (v *RawValue) SetDouble(x float64)         { put(v, x) }
func (v *RawValue) SetCurrency(x Currency)      { put(v, x) }
func (v *RawValue) SetAppTime(x float64)        { put(v, x) }
func (v *RawValue) SetFileTime(x FileTime)      { put(v, x) }
func (v *RawValue) SetLargeInteger(x int64)     { put(v, x) }
func (v *RawValue) SetErrorCode(x ErrorCode)    { put(v, x) }
func (v *RawValue) SetObject(x int32)           { put(v, x) }
func (v *RawValue) SetPointer(p unsafe.Pointer) { put(v, p) }

// SetBoolean stores the foreign 16-bit boolean representation.
func (v *RawValue) SetBoolean(x bool) {
	var b uint16
	if x {
		b = 1
	}
	put(v, b)
}

// SetAnsiString stores a pointer to a NUL-terminated 8-bit string.
func (v *RawValue) SetAnsiString(p *byte) { put(v, p) }

// SetWideString stores a pointer to a NUL-terminated UTF-16LE string.
func (v *RawValue) SetWideString(p *uint16) { put(v, p) }

// SetGUID stores a pointer to a GUID.
func (v *RawValue) SetGUID(p *GUID) { put(v, p) }

// SetBinary stores the counted byte buffer form.
func (v *RawValue) SetBinary(b RawBinary) { put(v, b) }

// SetMultiValue stores the counted-array form shared by every multi-value
// type: count, padding, element pointer.
func (v *RawValue) SetMultiValue(count uint32, elems unsafe.Pointer) {
	put(v, count)
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(&v.data), 8)) = elems
}
