package zdd_test

import (
	"bytes"
	"testing"

	"github.com/frontiergo/frontier/zdd"
	"github.com/stretchr/testify/require"
)

func simpleZDD() *zdd.ZDD {
	b := zdd.NewBuilder(2)
	b.StartLevel(0)
	root := b.AddNode()
	b.StartLevel(1)
	mid := b.AddNode()
	b.StartLevel(2)
	b.SetArc(root, mid, mid)
	b.SetArc(mid, zdd.Zero, zdd.One)
	return b.Finish(2, root)
}

func TestExportText_RoundTripsThroughImport(t *testing.T) {
	z := simpleZDD()
	var buf bytes.Buffer
	require.NoError(t, zdd.ExportText(&buf, z, zdd.Decimal))
	require.NotEmpty(t, buf.String())

	back, err := zdd.Import(bytes.NewReader(buf.Bytes()), z.NumVars, zdd.Decimal)
	require.NoError(t, err)
	require.Equal(t, z.NumNodes(), back.NumNodes())
}

func TestExportText_HexRadix(t *testing.T) {
	z := simpleZDD()
	var buf bytes.Buffer
	require.NoError(t, zdd.ExportText(&buf, z, zdd.Hex))
	require.Contains(t, buf.String(), "#0")
}

func TestExportGraphviz_ProducesDigraph(t *testing.T) {
	z := simpleZDD()
	var buf bytes.Buffer
	require.NoError(t, zdd.ExportGraphviz(&buf, z, true))
	out := buf.String()
	require.Contains(t, out, "digraph ZDD")
	require.Contains(t, out, "style=dashed")
	require.Contains(t, out, "style=solid")
}

func TestExportSBDD_ProducesOutput(t *testing.T) {
	z := simpleZDD()
	var buf bytes.Buffer
	require.NoError(t, zdd.ExportSBDD(&buf, z))
	require.NotEmpty(t, buf.String())
}
