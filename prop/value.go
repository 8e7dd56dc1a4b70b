package prop

import (
	"time"

	"github.com/google/uuid"
)

// Value is a decoded property: the tag it arrived under and a variant of
// Data selected by the tag's type code.
type Value struct {
	Tag  Tag
	Data Data
}

// Data is the sum of every payload variant. Variants carrying pointers or
// slices borrow from the row storage the RawValue was decoded from and must
// not outlive it.
type Data interface {
	isData()
}

// ErrorCode is a 32-bit foreign status code. It doubles as the payload of
// genuine PT_ERROR properties and as the decoder's way of reporting a
// malformed record as data instead of failing the whole row.
type ErrorCode int32

const (
	// CodePointer reports a payload whose pointer was null. (E_POINTER)
	CodePointer ErrorCode = -2147467261

	// CodeInvalidArgument reports an unrecognized type code. (E_INVALIDARG)
	CodeInvalidArgument ErrorCode = -2147024809
)

type (
	Short        int16
	Long         int32
	Float        float32
	Double       float64
	Boolean      bool
	AppTime      float64
	LargeInteger int64

	// Pointer is an opaque foreign handle. It is carried as a number, not
	// dereferenced by this package.
	Pointer uintptr

	// Object is the placeholder payload of null and object properties.
	Object int32

	// Binary borrows the counted bytes of a PT_BINARY payload.
	Binary []byte
)

// Currency is a 64-bit fixed-point number with 4 decimal places.
type Currency int64

// Float64 returns the currency amount as a float.
func (c Currency) Float64() float64 {
	return float64(c) / 10000
}

// FileTime is the foreign 64-bit timestamp: 100ns intervals since
// 1601-01-01 UTC, split into two 32-bit halves.
type FileTime struct {
	Low  uint32
	High uint32
}

// fileTimeEpochDelta is the interval count between 1601-01-01 and the Unix
// epoch.
const fileTimeEpochDelta = 116444736000000000

// Int64 returns the raw interval count.
func (ft FileTime) Int64() int64 {
	return int64(ft.High)<<32 | int64(ft.Low)
}

// Time converts to a time.Time in UTC.
func (ft FileTime) Time() time.Time {
	return time.Unix(0, (ft.Int64()-fileTimeEpochDelta)*100).UTC()
}

// GUID is the foreign 16-byte identifier in its native mixed-endian layout.
type GUID [16]byte

// UUID converts the mixed-endian foreign layout to an RFC 4122 UUID: the
// first three fields are stored little-endian and must be byte-swapped.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = g[3], g[2], g[1], g[0]
	u[4], u[5] = g[5], g[4]
	u[6], u[7] = g[7], g[6]
	copy(u[8:], g[8:])
	return u
}

func (g GUID) String() string {
	return g.UUID().String()
}

// Multi-value variants. Each borrows the foreign element array in place.
type (
	ShortArray        []int16
	LongArray         []int32
	FloatArray        []float32
	DoubleArray       []float64
	CurrencyArray     []Currency
	AppTimeArray      []float64
	FileTimeArray     []FileTime
	BinaryArray       []RawBinary
	AnsiStringArray   []AnsiString
	WideStringArray   []WideString
	GUIDArray         []GUID
	LargeIntegerArray []int64
)

func (Short) isData()             {}
func (Long) isData()              {}
func (Float) isData()             {}
func (Double) isData()            {}
func (Boolean) isData()           {}
func (AppTime) isData()           {}
func (LargeInteger) isData()      {}
func (Pointer) isData()           {}
func (Object) isData()            {}
func (Binary) isData()            {}
func (Currency) isData()          {}
func (FileTime) isData()          {}
func (GUID) isData()              {}
func (AnsiString) isData()        {}
func (WideString) isData()        {}
func (ErrorCode) isData()         {}
func (ShortArray) isData()        {}
func (LongArray) isData()         {}
func (FloatArray) isData()        {}
func (DoubleArray) isData()       {}
func (CurrencyArray) isData()     {}
func (AppTimeArray) isData()      {}
func (FileTimeArray) isData()     {}
func (BinaryArray) isData()       {}
func (AnsiStringArray) isData()   {}
func (WideStringArray) isData()   {}
func (GUIDArray) isData()         {}
func (LargeIntegerArray) isData() {}
