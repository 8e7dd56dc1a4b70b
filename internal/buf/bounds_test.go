package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElemBytes(t *testing.T) {
	n, ok := ElemBytes(3, 24)
	require.True(t, ok)
	require.Equal(t, 72, n)

	n, ok = ElemBytes(0, 24)
	require.True(t, ok)
	require.Equal(t, 0, n)

	_, ok = ElemBytes(-1, 24)
	require.False(t, ok)

	_, ok = ElemBytes(math.MaxInt/2, 4)
	require.False(t, ok)
}

func TestU32(t *testing.T) {
	v, ok := U32(0)
	require.True(t, ok)
	require.Equal(t, uint32(0), v)

	v, ok = U32(math.MaxUint32)
	require.True(t, ok)
	require.Equal(t, uint32(math.MaxUint32), v)

	_, ok = U32(math.MaxUint32 + 1)
	require.False(t, ok)

	_, ok = U32(-1)
	require.False(t, ok)
}

func TestFits(t *testing.T) {
	require.True(t, Fits(2, 8, 16)) // equality case passes
	require.True(t, Fits(1, 8, 16))
	require.False(t, Fits(3, 8, 16))
	require.False(t, Fits(math.MaxInt/4, 8, math.MaxInt))
}

func TestMulOverflowSafe(t *testing.T) {
	n, ok := MulOverflowSafe(6, 7)
	require.True(t, ok)
	require.Equal(t, 42, n)

	_, ok = MulOverflowSafe(math.MaxInt, 2)
	require.False(t, ok)
}
