package prop

import "fmt"

// Tag identifies one property: a 16-bit property identifier in the high word
// and a 16-bit type code in the low word.
type Tag uint32

// NewTag combines a property identifier and a type code.
func NewTag(id uint16, typ Type) Tag {
	return Tag(uint32(id)<<16 | uint32(typ))
}

// ID extracts the property identifier.
func (t Tag) ID() uint16 {
	return uint16(t >> 16)
}

// Type extracts the type code.
func (t Tag) Type() Type {
	return Type(t)
}

func (t Tag) String() string {
	return fmt.Sprintf("0x%04X:%s", t.ID(), t.Type())
}

// Type is the 16-bit type code portion of a Tag. It discriminates which
// union member of a RawValue payload is valid.
type Type uint16

// Base type codes, matching the foreign property type space.
const (
	TypeUnspecified Type = 0x0000
	TypeNull        Type = 0x0001
	TypeShort       Type = 0x0002 // 16-bit signed
	TypeLong        Type = 0x0003 // 32-bit signed
	TypeFloat       Type = 0x0004
	TypeDouble      Type = 0x0005
	TypeCurrency    Type = 0x0006 // 64-bit, fixed 4 decimal places
	TypeAppTime     Type = 0x0007 // OLE automation date
	TypeError       Type = 0x000A // 32-bit status code
	TypeBoolean     Type = 0x000B
	TypeObject      Type = 0x000D
	TypeLongLong    Type = 0x0014
	TypeAnsiString  Type = 0x001E // NUL-terminated 8-bit string
	TypeWideString  Type = 0x001F // NUL-terminated UTF-16LE string
	TypeSysTime     Type = 0x0040 // 64-bit FILETIME
	TypeGUID        Type = 0x0048
	TypeBinary      Type = 0x0102
	TypePointer     Type = 0x0103
)

// Flag bits combined into type codes.
const (
	// MultiValueFlag marks the payload as a counted array of the base type.
	MultiValueFlag Type = 0x1000

	// InstanceFlag marks a single instance of a multi-valued column in a
	// table row. It does not change the payload layout and is masked off
	// before decoding.
	InstanceFlag Type = 0x2000
)

// Multi-value type codes for every array-capable base type.
const (
	TypeMVShort      = MultiValueFlag | TypeShort
	TypeMVLong       = MultiValueFlag | TypeLong
	TypeMVFloat      = MultiValueFlag | TypeFloat
	TypeMVDouble     = MultiValueFlag | TypeDouble
	TypeMVCurrency   = MultiValueFlag | TypeCurrency
	TypeMVAppTime    = MultiValueFlag | TypeAppTime
	TypeMVLongLong   = MultiValueFlag | TypeLongLong
	TypeMVAnsiString = MultiValueFlag | TypeAnsiString
	TypeMVWideString = MultiValueFlag | TypeWideString
	TypeMVSysTime    = MultiValueFlag | TypeSysTime
	TypeMVGUID       = MultiValueFlag | TypeGUID
	TypeMVBinary     = MultiValueFlag | TypeBinary
)

// Base strips the instance flag, so flagged and unflagged variants of the
// same type decode identically.
func (t Type) Base() Type {
	return t &^ InstanceFlag
}

// IsMultiValue reports whether the payload is a counted array.
func (t Type) IsMultiValue() bool {
	return t&MultiValueFlag != 0
}

func (t Type) String() string {
	switch t.Base() {
	case TypeUnspecified:
		return "PT_UNSPECIFIED"
	case TypeNull:
		return "PT_NULL"
	case TypeShort:
		return "PT_SHORT"
	case TypeLong:
		return "PT_LONG"
	case TypeFloat:
		return "PT_FLOAT"
	case TypeDouble:
		return "PT_DOUBLE"
	case TypeCurrency:
		return "PT_CURRENCY"
	case TypeAppTime:
		return "PT_APPTIME"
	case TypeError:
		return "PT_ERROR"
	case TypeBoolean:
		return "PT_BOOLEAN"
	case TypeObject:
		return "PT_OBJECT"
	case TypeLongLong:
		return "PT_LONGLONG"
	case TypeAnsiString:
		return "PT_STRING8"
	case TypeWideString:
		return "PT_UNICODE"
	case TypeSysTime:
		return "PT_SYSTIME"
	case TypeGUID:
		return "PT_CLSID"
	case TypeBinary:
		return "PT_BINARY"
	case TypePointer:
		return "PT_PTR"
	case TypeMVShort:
		return "PT_MV_SHORT"
	case TypeMVLong:
		return "PT_MV_LONG"
	case TypeMVFloat:
		return "PT_MV_FLOAT"
	case TypeMVDouble:
		return "PT_MV_DOUBLE"
	case TypeMVCurrency:
		return "PT_MV_CURRENCY"
	case TypeMVAppTime:
		return "PT_MV_APPTIME"
	case TypeMVLongLong:
		return "PT_MV_LONGLONG"
	case TypeMVAnsiString:
		return "PT_MV_STRING8"
	case TypeMVWideString:
		return "PT_MV_UNICODE"
	case TypeMVSysTime:
		return "PT_MV_SYSTIME"
	case TypeMVGUID:
		return "PT_MV_CLSID"
	case TypeMVBinary:
		return "PT_MV_BINARY"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_0x%04X", uint16(t))
	}
}
