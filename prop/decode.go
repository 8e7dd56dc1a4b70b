package prop

import "unsafe"

// Decode converts a borrowed RawValue into a Value without exposing the
// union. It is total: every type code, recognized or not, terminates in a
// valid variant. Payload pointers are checked for null before a view is
// materialized; a null pointer decodes to ErrorCode(CodePointer), an
// unrecognized type code to ErrorCode(CodeInvalidArgument).
//
// Pointer-carrying variants borrow from the storage v lives in.
func Decode(v *RawValue) Value {
	var d Data
	switch v.Tag.Type().Base() {
	case TypeShort:
		d = Short(rawAs[int16](v))
	case TypeLong:
		d = Long(rawAs[int32](v))
	case TypeFloat:
		d = Float(rawAs[float32](v))
	case TypeDouble:
		d = Double(rawAs[float64](v))
	case TypeBoolean:
		d = Boolean(rawAs[uint16](v) != 0)
	case TypeCurrency:
		d = Currency(rawAs[int64](v))
	case TypeAppTime:
		d = AppTime(rawAs[float64](v))
	case TypeSysTime:
		d = rawAs[FileTime](v)
	case TypeLongLong:
		d = LargeInteger(rawAs[int64](v))
	case TypePointer:
		d = Pointer(rawAs[uintptr](v))
	case TypeAnsiString:
		if p := rawAs[*byte](v); p != nil {
			d = AnsiString{ptr: p}
		} else {
			d = CodePointer
		}
	case TypeWideString:
		if p := rawAs[*uint16](v); p != nil {
			d = WideString{ptr: p}
		} else {
			d = CodePointer
		}
	case TypeBinary:
		if bin := rawAs[RawBinary](v); bin.Data != nil {
			d = Binary(unsafe.Slice(bin.Data, bin.Count))
		} else {
			d = CodePointer
		}
	case TypeGUID:
		if p := rawAs[*GUID](v); p != nil {
			d = *p
		} else {
			d = CodePointer
		}
	case TypeMVShort:
		d = decodeMV[int16, ShortArray](v)
	case TypeMVLong:
		d = decodeMV[int32, LongArray](v)
	case TypeMVFloat:
		d = decodeMV[float32, FloatArray](v)
	case TypeMVDouble:
		d = decodeMV[float64, DoubleArray](v)
	case TypeMVCurrency:
		d = decodeMV[Currency, CurrencyArray](v)
	case TypeMVAppTime:
		d = decodeMV[float64, AppTimeArray](v)
	case TypeMVSysTime:
		d = decodeMV[FileTime, FileTimeArray](v)
	case TypeMVBinary:
		d = decodeMV[RawBinary, BinaryArray](v)
	case TypeMVAnsiString:
		d = decodeMV[AnsiString, AnsiStringArray](v)
	case TypeMVWideString:
		d = decodeMV[WideString, WideStringArray](v)
	case TypeMVGUID:
		d = decodeMV[GUID, GUIDArray](v)
	case TypeMVLongLong:
		d = decodeMV[int64, LargeIntegerArray](v)
	case TypeError:
		d = ErrorCode(rawAs[int32](v))
	case TypeNull, TypeObject:
		d = Object(rawAs[int32](v))
	default:
		d = CodeInvalidArgument
	}
	return Value{Tag: v.Tag, Data: d}
}

// decodeMV materializes a counted-array payload as variant A, or
// ErrorCode(CodePointer) when the element pointer is null. E is the element
// layout; A's element type must share it.
func decodeMV[E any, A interface {
	~[]E
	Data
}](v *RawValue) Data {
	count, ptr := v.mvPtr()
	if ptr == nil {
		return CodePointer
	}
	return A(unsafe.Slice((*E)(ptr), count))
}
