package graph_test

import (
	"strings"
	"testing"

	"github.com/frontiergo/frontier/graph"
	"github.com/stretchr/testify/require"
)

func TestLoadEdgeList_ExplicitVertexCount(t *testing.T) {
	r := strings.NewReader("4\n1 2\n2 3 5\n3 4\n")
	g, err := graph.LoadEdgeList(r)
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, int64(5), g.Edges()[1].Weight)
}

func TestLoadEdgeList_InferredVertexCount(t *testing.T) {
	r := strings.NewReader("1 2\n2 3\n")
	g, err := graph.LoadEdgeList(r)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
}

func TestLoadEdgeList_RejectsOutOfRangeVertex(t *testing.T) {
	r := strings.NewReader("2\n1 5\n")
	_, err := graph.LoadEdgeList(r)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestLoadAdjacencyList_UndirectedDedup(t *testing.T) {
	// vertex 1: {2}; vertex 2: {1,3}; vertex 3: {2}
	r := strings.NewReader("2\n1 3\n2\n")
	g, err := graph.LoadAdjacencyList(r, false)
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestLoadAdjacencyList_DropsSelfLoops(t *testing.T) {
	r := strings.NewReader("1 2\n1\n")
	g, err := graph.LoadAdjacencyList(r, false)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestLoadWeights_Truncated(t *testing.T) {
	g, err := graph.LoadEdgeList(strings.NewReader("3\n1 2\n2 3\n"))
	require.NoError(t, err)
	_, err = graph.LoadWeights(g, strings.NewReader("7"))
	require.ErrorIs(t, err, graph.ErrWeightSidecarTruncated)
}

func TestLoadWeights_Applies(t *testing.T) {
	g, err := graph.LoadEdgeList(strings.NewReader("3\n1 2\n2 3\n"))
	require.NoError(t, err)
	g2, err := graph.LoadWeights(g, strings.NewReader("7 9"))
	require.NoError(t, err)
	require.Equal(t, int64(7), g2.Edges()[0].Weight)
	require.Equal(t, int64(9), g2.Edges()[1].Weight)
}

func TestBFSReorder_PreservesEdgeMultiset(t *testing.T) {
	g, err := graph.LoadEdgeList(strings.NewReader("4\n3 4\n1 2\n2 3\n"))
	require.NoError(t, err)
	reordered, err := graph.BFSReorder(g, 1)
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), reordered.EdgeCount())

	count := func(gg *graph.Graph) map[[2]int]int {
		m := map[[2]int]int{}
		for _, e := range gg.Edges() {
			k := [2]int{e.Src, e.Dest}
			if k[0] > k[1] {
				k[0], k[1] = k[1], k[0]
			}
			m[k]++
		}
		return m
	}
	require.Equal(t, count(g), count(reordered))
}

func TestBFSReorder_UnknownStart(t *testing.T) {
	g, err := graph.LoadEdgeList(strings.NewReader("2\n1 2\n"))
	require.NoError(t, err)
	_, err = graph.BFSReorder(g, 99)
	require.ErrorIs(t, err, graph.ErrStartVertexNotFound)
}

func TestPadDummyTerminal(t *testing.T) {
	g, err := graph.LoadEdgeList(strings.NewReader("3\n1 2\n2 3\n"))
	require.NoError(t, err)
	padded, dummy, err := graph.PadDummyTerminal(g, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 4, dummy)
	require.Equal(t, 4, padded.N())
	require.Equal(t, 4, padded.EdgeCount())
}

func TestLoadHypergraphEdgeList(t *testing.T) {
	h, err := graph.LoadHypergraphEdgeList(strings.NewReader("4\n1 2 3\n2 4\n"))
	require.NoError(t, err)
	require.Equal(t, 4, h.N())
	require.Equal(t, 2, h.EdgeCount())
	require.Equal(t, []int{1, 2, 3}, h.Edges()[0].Vertices)
}

func TestLoadIncidenceMatrix(t *testing.T) {
	h, err := graph.LoadIncidenceMatrix(strings.NewReader("2 3\n1 1 0\n0 1 1\n"))
	require.NoError(t, err)
	require.Equal(t, 3, h.N())
	require.Equal(t, []int{1, 2}, h.Edges()[0].Vertices)
	require.Equal(t, []int{2, 3}, h.Edges()[1].Vertices)
}

func TestLoadTerminalPairs(t *testing.T) {
	pairs, err := graph.LoadTerminalPairs(strings.NewReader("1 1\n5 1\n2 2\n8 2\n"))
	require.NoError(t, err)
	require.Len(t, pairs, 4)
	require.Equal(t, graph.TerminalPair{Vertex: 5, Terminal: 1}, pairs[1])
}
