package family_test

import (
	"testing"

	"github.com/frontiergo/frontier/family"
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/graph"
	"github.com/frontiergo/frontier/mate"
	"github.com/stretchr/testify/require"
)

func TestHyperCover_PartitionRejectsDoubleCover(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{Src: 1, Dest: 2}, {Src: 2, Dest: 3}})
	require.NoError(t, err)
	mgr := frontier.New(g)
	mgr.Advance(0)

	f := family.NewHyperCover(family.SetPartition, g.EdgeCount())
	m := mate.New(len(mgr.Both))
	for i, v := range mgr.Both {
		m.F[i] = f.NewVertexState(v)
	}
	f.Update(m, family.Hi, 0, mgr)
	for i := range m.F {
		require.Equal(t, int64(1), m.F[i])
	}

	verdict := f.CheckTerminalPre(m, family.Hi, 0, mgr)
	require.Equal(t, family.Reject, verdict, "vertex 2 is already covered")
}

func TestHyperCover_CoverAllowsDoubleCover(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{Src: 1, Dest: 2}, {Src: 2, Dest: 3}})
	require.NoError(t, err)
	mgr := frontier.New(g)
	mgr.Advance(0)

	f := family.NewHyperCover(family.SetCover, g.EdgeCount())
	m := mate.New(len(mgr.Both))
	f.Update(m, family.Hi, 0, mgr)
	verdict := f.CheckTerminalPre(m, family.Hi, 0, mgr)
	require.Equal(t, family.Continue, verdict)
}

func TestHyperCover_PackingTolerateUncovered(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{Src: 1, Dest: 2}, {Src: 2, Dest: 3}})
	require.NoError(t, err)
	mgr := frontier.New(g)
	mgr.Advance(0)

	f := family.NewHyperCover(family.SetPacking, g.EdgeCount())
	m := mate.New(len(mgr.Both))
	verdict := f.CheckTerminalPost(m, 0, mgr)
	require.Equal(t, family.Continue, verdict, "edge 0 is not the last edge, so the candidate stays live")
}

func TestHyperCover_AcceptsOnLastEdge(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{Src: 1, Dest: 2}})
	require.NoError(t, err)
	mgr := frontier.New(g)
	mgr.Advance(0)

	f := family.NewHyperCover(family.SetPacking, g.EdgeCount())
	m := mate.New(len(mgr.Both))
	verdict := f.CheckTerminalPost(m, 0, mgr)
	require.Equal(t, family.Accept, verdict, "edge 0 is the only (and thus last) edge")
}
