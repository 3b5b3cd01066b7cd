package zdd_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/frontiergo/frontier/zdd"
	"github.com/stretchr/testify/require"
)

func TestStreamWriter_RoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	sw, err := zdd.NewStreamWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, sw.StartLevel(0))
	id, err := sw.WriteNode(zdd.Zero, zdd.One)
	require.NoError(t, err)
	require.Equal(t, zdd.NodeID(2), id)

	require.NoError(t, sw.StartLevel(1))
	handle, err := sw.Finish(id, 1)
	require.NoError(t, err)
	require.Equal(t, id, handle.Root)
	require.Equal(t, 1, handle.NumNodes)

	sr, err := zdd.NewStreamReader(&buf)
	require.NoError(t, err)
	defer sr.Close()

	var records []zdd.Record
	for {
		rec, err := sr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		records = append(records, rec)
	}

	require.Len(t, records, 3)
	require.True(t, records[0].IsLevel)
	require.Equal(t, 0, records[0].Level)
	require.False(t, records[1].IsLevel)
	require.Equal(t, zdd.NodeID(2), records[1].ID)
	require.Equal(t, zdd.Zero, records[1].Lo)
	require.Equal(t, zdd.One, records[1].Hi)
	require.True(t, records[2].IsLevel)
	require.Equal(t, 1, records[2].Level)
}

func TestStreamWriter_PanicsOnOutOfOrderLevel(t *testing.T) {
	var buf bytes.Buffer
	sw, err := zdd.NewStreamWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, sw.StartLevel(1))
	require.Panics(t, func() { _ = sw.StartLevel(0) })
}
