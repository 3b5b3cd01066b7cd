package frontier_test

import (
	"strings"
	"testing"

	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/graph"
	"github.com/stretchr/testify/require"
)

func TestManager_Advance_PathGraph(t *testing.T) {
	// 1-2, 2-3, 3-4: a simple path; frontier should never exceed 2 vertices.
	g, err := graph.LoadEdgeList(strings.NewReader("4\n1 2\n2 3\n3 4\n"))
	require.NoError(t, err)

	m := frontier.New(g)

	m.Advance(0) // edge 1-2: both enter; vertex 1 has no later edge, so it leaves at once
	require.ElementsMatch(t, []int{2}, m.Next)
	require.ElementsMatch(t, []int{1, 2}, m.Entering)
	require.ElementsMatch(t, []int{1}, m.Leaving)

	m.Advance(1) // edge 2-3: 3 enters, vertex 2 leaves (last seen at edge 1)
	require.ElementsMatch(t, []int{2}, m.Leaving)
	require.ElementsMatch(t, []int{3}, m.Entering)
	require.ElementsMatch(t, []int{3}, m.Next)

	m.Advance(2) // edge 3-4: 4 enters, then 3 and 4 both leave on the last edge
	require.ElementsMatch(t, []int{3, 4}, m.Leaving)
	require.Empty(t, m.Next)
}

func TestManager_AdvanceOutOfOrderPanics(t *testing.T) {
	g, err := graph.LoadEdgeList(strings.NewReader("3\n1 2\n2 3\n"))
	require.NoError(t, err)
	m := frontier.New(g)
	m.Advance(1)
	require.Panics(t, func() { m.Advance(0) })
}

func TestManager_IsAnyUnprocessedVertexMissingFromFrontier(t *testing.T) {
	// Hamiltonian-relevant graph: edge 0 touches 1,2; vertex 3 is untouched
	// so far but appears later, and is not yet on the current frontier.
	g, err := graph.LoadEdgeList(strings.NewReader("3\n1 2\n1 3\n"))
	require.NoError(t, err)
	m := frontier.New(g)
	m.Advance(0)
	require.True(t, m.IsAnyUnprocessedVertexMissingFromFrontier(0))
	m.Advance(1)
	require.False(t, m.IsAnyUnprocessedVertexMissingFromFrontier(1))
}
