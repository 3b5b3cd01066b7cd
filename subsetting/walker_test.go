package subsetting_test

import (
	"testing"

	"github.com/frontiergo/frontier/family"
	"github.com/frontiergo/frontier/subsetting"
	"github.com/frontiergo/frontier/zdd"
	"github.com/stretchr/testify/require"
)

// onlyHiAtLevel0 builds a 1-edge ZDD whose sole solution takes the Hi
// branch: Lo collapses to 0, Hi leads to the accept terminal.
func onlyHiAtLevel0() *zdd.ZDD {
	b := zdd.NewBuilder(1)
	b.StartLevel(0)
	root := b.AddNode()
	b.SetArc(root, zdd.Zero, zdd.One)
	b.StartLevel(1)
	return zdd.Reduce(b.Finish(1, root))
}

func TestWalker_ForcesHiWhenLoIsForbidden(t *testing.T) {
	w := subsetting.New(onlyHiAtLevel0())
	cursor := w.Root()

	_, allowed := w.Step(cursor, 0, family.Lo)
	require.False(t, allowed)

	next, allowed := w.Step(cursor, 0, family.Hi)
	require.True(t, allowed)
	require.Equal(t, int64(zdd.One), next)
}

func TestWalker_AbsentLevelForbidsHi(t *testing.T) {
	// A 2-level constraint whose root lives at level 1 (level 0 was
	// zero-suppressed away): edge 0 must be Lo, edge 1 must be Hi.
	b := zdd.NewBuilder(2)
	b.StartLevel(0) // empty: level 0 is absent from this constraint DD
	b.StartLevel(1)
	n := b.AddNode()
	b.SetArc(n, zdd.Zero, zdd.One)
	b.StartLevel(2)
	dd := zdd.Reduce(b.Finish(2, n))

	w := subsetting.New(dd)
	cursor := w.Root()

	_, allowed := w.Step(cursor, 0, family.Hi)
	require.False(t, allowed, "level 0 is absent from the constraint DD, so selecting it is forbidden")

	cursor, allowed = w.Step(cursor, 0, family.Lo)
	require.True(t, allowed)

	_, allowed = w.Step(cursor, 1, family.Hi)
	require.True(t, allowed)
}

func TestWalker_OneCursorForbidsHi(t *testing.T) {
	w := subsetting.New(onlyHiAtLevel0())
	next, allowed := w.Step(int64(zdd.One), 5, family.Hi)
	require.False(t, allowed)
	require.Equal(t, int64(zdd.One), next)
}
