package family_test

import (
	"testing"

	"github.com/frontiergo/frontier/family"
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/graph"
	"github.com/frontiergo/frontier/mate"
	"github.com/stretchr/testify/require"
)

// buildPathFixture returns a 3-vertex path graph (1-2, 2-3) with its
// frontier manager, advanced to edge 0.
func buildPathFixture(t *testing.T) (*graph.Graph, *frontier.Manager) {
	t.Helper()
	g, err := graph.New(3, []graph.Edge{{Src: 1, Dest: 2}, {Src: 2, Dest: 3}})
	require.NoError(t, err)
	mgr := frontier.New(g)
	mgr.Advance(0)
	return g, mgr
}

func TestSTPath_MergeTracksOpenSegment(t *testing.T) {
	_, mgr := buildPathFixture(t)
	f := &family.STPath{S: 1, T: 3}

	m := mate.New(len(mgr.Both))
	for i, v := range mgr.Both {
		m.F[i] = f.NewVertexState(v)
	}
	require.Equal(t, int64(3), m.F[0]) // vertex 1 pre-linked to t=3
	require.Equal(t, int64(2), m.F[1]) // vertex 2 isolated

	verdict := f.CheckTerminalPre(m, family.Hi, 0, mgr)
	require.Equal(t, family.Continue, verdict)

	f.Update(m, family.Hi, 0, mgr)
	require.Equal(t, int64(0), m.F[0]) // vertex 1 now "interior" (virtual + real edge)
	require.Equal(t, int64(3), m.F[1]) // vertex 2's segment now ends at 3

	post := f.CheckTerminalPost(m, 0, mgr)
	require.Equal(t, family.Continue, post)
}

func TestSTPath_CycleModeIgnoresStartAndEnd(t *testing.T) {
	_, mgr := buildPathFixture(t)
	f := &family.STPath{S: 1, T: 3, Cycle: true}

	m := mate.New(len(mgr.Both))
	for i, v := range mgr.Both {
		m.F[i] = f.NewVertexState(v)
	}
	// unlike the non-Cycle pre-link (S->T, T->S), every vertex starts
	// self-referencing: S and T have no distinguished role in Cycle mode.
	require.Equal(t, int64(1), m.F[0]) // vertex 1 isolated, not pre-linked to 3
	require.Equal(t, int64(2), m.F[1]) // vertex 2 isolated
}

func TestSTPath_RejectsThirdEdgeAtDegreeTwoVertex(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{Src: 1, Dest: 2}, {Src: 1, Dest: 3}, {Src: 2, Dest: 3}})
	require.NoError(t, err)
	mgr := frontier.New(g)
	f := &family.STPath{S: 1, T: 3}

	mgr.Advance(0)
	m := mate.New(len(mgr.Both))
	for i, v := range mgr.Both {
		m.F[i] = f.NewVertexState(v)
	}
	f.Update(m, family.Hi, 0, mgr)

	mgr.Advance(1)
	m2 := mate.New(len(mgr.Both))
	for i, v := range mgr.Both {
		idx := mgr.IndexInBoth(v)
		_ = idx
		m2.F[i] = f.NewVertexState(v)
	}
	// vertex 1 already has two "edges" (the virtual s-t link plus edge0),
	// so offering it a second real edge must be rejected.
	m2.F[mgr.IndexInBoth(1)] = 0
	verdict := f.CheckTerminalPre(m2, family.Hi, 1, mgr)
	require.Equal(t, family.Reject, verdict)
}
