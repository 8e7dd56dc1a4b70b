package prop

import (
	"strings"
	"unsafe"

	"golang.org/x/text/encoding/charmap"
)

// AnsiString borrows a NUL-terminated 8-bit string in Windows-1252 encoding.
type AnsiString struct {
	ptr *byte
}

// NewAnsiString wraps a pointer to a NUL-terminated 8-bit string.
func NewAnsiString(p *byte) AnsiString {
	return AnsiString{ptr: p}
}

// String decodes the string to UTF-8. The walk to the terminator trusts the
// producer's contract that the string is NUL-terminated.
func (s AnsiString) String() string {
	if s.ptr == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(s.ptr), n)) != 0 {
		n++
	}
	raw := unsafe.Slice(s.ptr, n)
	if isASCII(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// WideString borrows a NUL-terminated UTF-16LE string.
type WideString struct {
	ptr *uint16
}

// NewWideString wraps a pointer to a NUL-terminated UTF-16LE string.
func NewWideString(p *uint16) WideString {
	return WideString{ptr: p}
}

// String decodes the string to UTF-8, pairing surrogates. The walk to the
// terminator trusts the producer's contract that the string is
// NUL-terminated.
func (s WideString) String() string {
	if s.ptr == nil {
		return ""
	}
	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(s.ptr), 2*n)) != 0 {
		n++
	}
	return decodeUTF16(unsafe.Slice(s.ptr, n))
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// decodeUTF16 decodes UTF-16 code units to a UTF-8 string without an
// intermediate rune slice.
func decodeUTF16(units []uint16) string {
	if len(units) == 0 {
		return ""
	}

	// Fast path: all ASCII, the common case for property strings.
	allASCII := true
	for _, u := range units {
		if u >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(units))
		for _, u := range units {
			b.WriteByte(byte(u))
		}
		return b.String()
	}

	var b strings.Builder
	b.Grow(len(units) * 2)
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if r >= 0xD800 && r <= 0xDBFF && i+1 < len(units) {
			r2 := rune(units[i+1])
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00))
				i++
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
