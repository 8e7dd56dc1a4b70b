// Package buf contains overflow-safe size arithmetic for typed views over
// foreign allocations.
package buf

import "math"

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This is essential for count * elementSize calculations.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// ElemBytes returns count * elemSize, with ok = false on negative input or
// overflow. This is the required check before constructing a typed slice over
// a raw buffer.
func ElemBytes(count, elemSize int) (int, bool) {
	if count < 0 || elemSize < 0 {
		return 0, false
	}
	return MulOverflowSafe(count, elemSize)
}

// U32 narrows n to the 32-bit size parameter the foreign allocator takes.
// ok = false when n is negative or does not fit.
func U32(n int) (uint32, bool) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

// Fits reports whether count elements of elemSize bytes fit in capacity
// bytes. The check is sufficient-capacity (<=), so the equality case passes.
func Fits(count, elemSize, capacity int) bool {
	n, ok := ElemBytes(count, elemSize)
	return ok && n <= capacity
}
