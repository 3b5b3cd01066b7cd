package mate_test

import (
	"testing"

	"github.com/frontiergo/frontier/mate"
	"github.com/stretchr/testify/require"
)

func TestArena_WriteGetAcrossBlocks(t *testing.T) {
	a := mate.NewArena[int64](4)
	var idx []int64
	for i := int64(0); i < 20; i++ {
		idx = append(idx, a.WriteAndAdvanceHead(i*10))
	}
	for i, id := range idx {
		require.Equal(t, int64(i)*10, a.Get(id))
	}
}

func TestArena_BackHeadUndoesWrites(t *testing.T) {
	a := mate.NewArena[int64](8)
	a.WriteAndAdvanceHead(1)
	a.WriteAndAdvanceHead(2)
	head := a.Head()
	a.WriteAndAdvanceHead(3)
	a.BackHead(1)
	require.Equal(t, head, a.Head())
}

func TestArena_AdvanceTailReleasesBlocks(t *testing.T) {
	a := mate.NewArena[int64](4)
	for i := int64(0); i < 12; i++ {
		a.WriteAndAdvanceHead(i)
	}
	a.AdvanceTail(8)
	require.Equal(t, int64(8), a.ValueFromTail(0))
	require.Equal(t, int64(11), a.Get(11))
}

func TestMate_PackUnpackRoundTrip(t *testing.T) {
	a := mate.NewArena[int64](16)
	m := &mate.Mate{SDDCursor: 7, F: []int64{1, 2, 3}, Scalar: 42, Aux: []int64{9, 8}}
	ref, count := m.Pack(a)
	require.Equal(t, int64(len(m.F)+4+len(m.Aux)), count)

	out := &mate.Mate{}
	out.Unpack(a, ref)
	require.True(t, m.Equal(out))
	require.Equal(t, m.SDDCursor, out.SDDCursor)
}

func TestMate_HashEqualIgnoresCursor(t *testing.T) {
	a := &mate.Mate{SDDCursor: 1, F: []int64{1, 2}, Scalar: 3, Aux: []int64{4}}
	b := &mate.Mate{SDDCursor: 99, F: []int64{1, 2}, Scalar: 3, Aux: []int64{4}}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestMate_HashDiffersOnF(t *testing.T) {
	a := &mate.Mate{F: []int64{1, 2}}
	b := &mate.Mate{F: []int64{2, 1}}
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestMate_Revert(t *testing.T) {
	a := mate.NewArena[int64](16)
	before := a.Head()
	m := &mate.Mate{F: []int64{1, 2, 3}}
	_, count := m.Pack(a)
	m.Revert(a, count)
	require.Equal(t, before, a.Head())
}
