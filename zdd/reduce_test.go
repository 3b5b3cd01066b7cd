package zdd_test

import (
	"testing"

	"github.com/frontiergo/frontier/zdd"
	"github.com/stretchr/testify/require"
)

// buildChain constructs a 3-level ZDD with one duplicate pair at level 1
// and one Hi-to-Zero arc at level 2, so Reduce must both zero-suppress
// and dedup.
func buildChain(t *testing.T) *zdd.ZDD {
	t.Helper()
	b := zdd.NewBuilder(3)

	b.StartLevel(0)
	root := b.AddNode()

	b.StartLevel(1)
	a := b.AddNode()
	dup := b.AddNode()

	b.StartLevel(2)
	leaf := b.AddNode()   // hi -> zero, must be zero-suppressed
	leaf2 := b.AddNode()  // identical (lo,hi) to a different level-2 node once suppressed

	b.StartLevel(3)

	b.SetArc(root, a, dup)
	b.SetArc(a, leaf, zdd.One)
	b.SetArc(dup, leaf2, zdd.One)
	b.SetArc(leaf, zdd.Zero, zdd.Zero) // hi==zero: collapses onto lo==Zero
	b.SetArc(leaf2, zdd.Zero, zdd.Zero)

	return b.Finish(3, root)
}

func TestReduce_ZeroSuppressesDeadHiArcs(t *testing.T) {
	z := buildChain(t)
	r := zdd.Reduce(z)

	for level := 0; level <= r.NumVars; level++ {
		start, end := r.LevelRange(level)
		for i := start; i < end; i++ {
			n := r.Nodes[i]
			require.NotEqual(t, zdd.Zero, n.Hi, "hi arc must never point at the reject terminal after reduction")
		}
	}
}

func TestReduce_MergesDuplicateSiblings(t *testing.T) {
	z := buildChain(t)
	r := zdd.Reduce(z)

	for level := 0; level <= r.NumVars; level++ {
		start, end := r.LevelRange(level)
		seen := map[[2]zdd.NodeID]bool{}
		for i := start; i < end; i++ {
			n := r.Nodes[i]
			key := [2]zdd.NodeID{n.Lo, n.Hi}
			require.False(t, seen[key], "level %d has two nodes sharing (lo,hi)=%v", level, key)
			seen[key] = true
		}
	}
}

func TestReduce_Idempotent(t *testing.T) {
	z := buildChain(t)
	once := zdd.Reduce(z)
	twice := zdd.Reduce(once)

	require.Equal(t, once.NumNodes(), twice.NumNodes())
	require.Equal(t, once.LevelFirst, twice.LevelFirst)
}

func TestReduce_CollapsesToEmptyFamily(t *testing.T) {
	b := zdd.NewBuilder(1)
	b.StartLevel(0)
	root := b.AddNode()
	b.SetArc(root, zdd.Zero, zdd.Zero)
	z := b.Finish(1, root)

	r := zdd.Reduce(z)
	require.Equal(t, zdd.Zero, r.Root)
	require.Equal(t, 0, r.NumNodes())
}

func TestZDD_LoHiTerminalPassthrough(t *testing.T) {
	z := &zdd.ZDD{Root: zdd.One, NumVars: 0, Nodes: make([]zdd.Node, 2), LevelFirst: []int{2, 2}}
	require.Equal(t, zdd.One, z.Lo(zdd.One))
	require.Equal(t, zdd.Zero, z.Hi(zdd.Zero))
}
