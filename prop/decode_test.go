package prop

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestRawValue_WireLayout(t *testing.T) {
	// The record pads its tag with a pointer-sized word, so the union lands
	// at offset 16 and the stride is 32 on 64-bit platforms (24 on 32-bit).
	ptrSize := unsafe.Sizeof(uintptr(0))
	var v RawValue
	require.Equal(t, 2*ptrSize, unsafe.Offsetof(v.data))
	require.Equal(t, 2*ptrSize+16, unsafe.Sizeof(RawValue{}))
	require.Equal(t, uintptr(16), unsafe.Sizeof(RawBinary{}))
}

func TestDecode_Scalars(t *testing.T) {
	var v RawValue

	v.Tag = NewTag(0x0001, TypeShort)
	v.SetShort(-12)
	require.Equal(t, Short(-12), Decode(&v).Data)

	v.Tag = NewTag(0x0002, TypeLong)
	v.SetLong(1 << 30)
	require.Equal(t, Long(1<<30), Decode(&v).Data)

	v.Tag = NewTag(0x0003, TypeDouble)
	v.SetDouble(3.5)
	require.Equal(t, Double(3.5), Decode(&v).Data)

	v.Tag = NewTag(0x0004, TypeBoolean)
	v.SetBoolean(true)
	require.Equal(t, Boolean(true), Decode(&v).Data)

	v.Tag = NewTag(0x0005, TypeCurrency)
	v.SetCurrency(Currency(12345))
	got := Decode(&v)
	require.Equal(t, Currency(12345), got.Data)
	require.InDelta(t, 1.2345, got.Data.(Currency).Float64(), 1e-9)

	v.Tag = NewTag(0x0006, TypeLongLong)
	v.SetLargeInteger(-1 << 40)
	require.Equal(t, LargeInteger(-1<<40), Decode(&v).Data)

	v.Tag = NewTag(0x0007, TypeError)
	v.SetErrorCode(CodePointer)
	require.Equal(t, CodePointer, Decode(&v).Data)

	v.Tag = NewTag(0x0008, TypeNull)
	v.SetObject(0)
	require.Equal(t, Object(0), Decode(&v).Data)

	// The decoded value carries the original tag.
	require.Equal(t, NewTag(0x0008, TypeNull), Decode(&v).Tag)
}

func TestDecode_FileTime(t *testing.T) {
	var v RawValue
	v.Tag = NewTag(0x0010, TypeSysTime)
	// 116444736000000000 intervals = Unix epoch.
	v.SetFileTime(FileTime{Low: 0xD53E8000, High: 0x019DB1DE})

	d := Decode(&v).Data
	ft, ok := d.(FileTime)
	require.True(t, ok)
	require.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), ft.Time())
}

func TestDecode_Binary(t *testing.T) {
	payload := []byte{0xCA, 0xFE, 0xBA, 0xBE}

	var v RawValue
	v.Tag = NewTag(0x0011, TypeBinary)
	v.SetBinary(RawBinary{Count: uint32(len(payload)), Data: &payload[0]})

	d := Decode(&v).Data
	require.Equal(t, Binary(payload), d)
}

func TestDecode_NullBinaryIsErrorNotEmptySlice(t *testing.T) {
	var v RawValue
	v.Tag = NewTag(0x0011, TypeBinary)
	v.SetBinary(RawBinary{Count: 4, Data: nil})

	d := Decode(&v).Data
	require.Equal(t, CodePointer, d)
}

func TestDecode_NullStringAndGUID(t *testing.T) {
	var v RawValue

	v.Tag = NewTag(0x0012, TypeAnsiString)
	v.SetAnsiString(nil)
	require.Equal(t, CodePointer, Decode(&v).Data)

	v.Tag = NewTag(0x0013, TypeWideString)
	v.SetWideString(nil)
	require.Equal(t, CodePointer, Decode(&v).Data)

	v.Tag = NewTag(0x0014, TypeGUID)
	v.SetGUID(nil)
	require.Equal(t, CodePointer, Decode(&v).Data)
}

func TestDecode_GUID(t *testing.T) {
	// {00112233-4455-6677-8899-AABBCCDDEEFF} in native mixed-endian layout.
	g := GUID{0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}

	var v RawValue
	v.Tag = NewTag(0x0015, TypeGUID)
	v.SetGUID(&g)

	d := Decode(&v).Data
	require.Equal(t, g, d)
	require.Equal(t, "00112233-4455-6677-8899-aabbccddeeff", d.(GUID).String())
}

func TestDecode_UnknownTypeCode(t *testing.T) {
	var v RawValue
	v.Tag = NewTag(0x0016, Type(0x0777))
	require.Equal(t, CodeInvalidArgument, Decode(&v).Data)
}

func TestDecode_MultiValue(t *testing.T) {
	longs := []int32{10, -20, 30}

	var v RawValue
	v.Tag = NewTag(0x0017, TypeMVLong)
	v.SetMultiValue(uint32(len(longs)), unsafe.Pointer(&longs[0]))

	d := Decode(&v).Data
	require.Equal(t, LongArray(longs), d)
}

func TestDecode_InstanceFlagMasked(t *testing.T) {
	longs := []int32{7}

	var v RawValue
	v.Tag = NewTag(0x0018, TypeMVLong|InstanceFlag)
	v.SetMultiValue(1, unsafe.Pointer(&longs[0]))

	d := Decode(&v).Data
	require.Equal(t, LongArray(longs[:1]), d)
}

func TestDecode_MultiValueNullPointer(t *testing.T) {
	var v RawValue
	v.Tag = NewTag(0x0019, TypeMVBinary)
	v.SetMultiValue(3, nil)
	require.Equal(t, CodePointer, Decode(&v).Data)
}

func TestDecode_MultiValueBinary(t *testing.T) {
	one := []byte{1}
	two := []byte{2, 2}
	bins := []RawBinary{
		{Count: 1, Data: &one[0]},
		{Count: 2, Data: &two[0]},
		{Count: 5, Data: nil},
	}

	var v RawValue
	v.Tag = NewTag(0x001A, TypeMVBinary)
	v.SetMultiValue(uint32(len(bins)), unsafe.Pointer(&bins[0]))

	d := Decode(&v).Data
	arr, ok := d.(BinaryArray)
	require.True(t, ok)
	require.Len(t, arr, 3)
	require.Equal(t, []byte{1}, arr[0].Bytes())
	require.Equal(t, []byte{2, 2}, arr[1].Bytes())
	require.Nil(t, arr[2].Bytes(), "a null element stays nil rather than becoming a bogus slice")
}
