package rows

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/openmapi/mapikit/alloc"
	"github.com/openmapi/mapikit/buffer"
	"github.com/openmapi/mapikit/prop"
)

// Exercises the whole path a table query takes: build a tag array in an
// allocation tree, consume a row set, and verify the allocator ends
// balanced.
func TestEndToEnd_TagArrayAndRowSet(t *testing.T) {
	const (
		idInstanceKey = 0x0FF6
		idSubject     = 0x0037
	)

	slab := alloc.NewSlab()
	a := alloc.NewRecorder(slab)

	// Root sized for two tag entries, with a chained scratch buffer on the
	// same tree.
	tags, err := buffer.New[prop.Tag](a, 2)
	require.NoError(t, err)

	scratch, err := buffer.Chain[byte](tags, 32)
	require.NoError(t, err)

	s, err := tags.CommitSlice(2)
	require.NoError(t, err)
	s[0] = prop.NewTag(idInstanceKey, prop.TypeBinary)
	s[1] = prop.NewTag(idSubject, prop.TypeWideString)

	// The committed view returns the written values unchanged.
	got, err := tags.Slice(2)
	require.NoError(t, err)
	require.Equal(t, prop.NewTag(idInstanceKey, prop.TypeBinary), got[0])
	require.Equal(t, prop.NewTag(idSubject, prop.TypeWideString), got[1])

	// Stand in for the foreign call that fills a row set out-parameter.
	subject := []uint16{'h', 'i', 0}
	rawVals, err := a.Allocate(uint32(2 * rawValueSize))
	require.NoError(t, err)
	recs := unsafe.Slice((*prop.RawValue)(rawVals), 2)
	recs[0].Tag = prop.NewTag(idInstanceKey, prop.TypeBinary)
	recs[0].SetBinary(prop.RawBinary{Count: 0, Data: nil})
	recs[1].Tag = prop.NewTag(idSubject, prop.TypeWideString)
	recs[1].SetWideString(&subject[0])

	set := NewRowSet(a)
	*set.Out() = newRawRowSet(t, a, RawRow{Count: 2, Props: &recs[0]})
	require.Equal(t, 1, set.Len())

	rows := set.Take()
	require.Len(t, rows, 1)

	var decoded []prop.Value
	for v := range rows[0].Values() {
		decoded = append(decoded, v)
	}
	require.Len(t, decoded, 2)
	require.Equal(t, prop.CodePointer, decoded[0].Data, "null binary pointer decodes to an error variant")
	require.Equal(t, "hi", decoded[1].Data.(prop.WideString).String())

	// Teardown: each owner releases exactly its own piece.
	require.NoError(t, rows[0].Close())
	require.NoError(t, set.Close())
	require.NoError(t, scratch.Close())
	require.NoError(t, tags.Close())

	// One root allocation, one chained, one record array, one outer array.
	require.Equal(t, 3, a.Allocates)
	require.Equal(t, 1, a.Mores)
	// One free for the tag tree (the chain rides along), one for the record
	// array, one row set release.
	require.Equal(t, 2, a.Frees)
	require.Equal(t, 1, a.RowFrees)
	require.Equal(t, 0, slab.Live(), "no allocation may survive teardown")
}
