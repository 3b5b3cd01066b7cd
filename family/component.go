package family

import (
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// ComponentKind selects which component-based family Component
// implements, per spec.md §4.4's "Component-based families" paragraph.
type ComponentKind int

const (
	SpanningForest ComponentKind = iota
	SpanningTree
	Partition
	RootedForest
	KCut
	RootedCut
)

// Component implements the forest/tree/partition/rooted-forest/cut
// family group. F[v] is a component id: positive for a free component,
// negative for one that has touched a root vertex. The fixed scalar
// tracks either the finalized-component count (cc) or, for the cut
// variants, the accumulated cut weight.
type Component struct {
	Kind  ComponentKind
	Roots map[int]bool // vertices that count as "roots" for RootedForest/RootedCut
	Range IntRange      // component-count bound for Partition; cut-weight bound for KCut/RootedCut

	lastEdge int
	nextID   int64
}

var _ Family = (*Component)(nil)

// NewComponent prepares a Component family for a construction over
// numEdges edges (0-based, last index numEdges-1).
func NewComponent(kind ComponentKind, numEdges int) *Component {
	return &Component{Kind: kind, lastEdge: numEdges - 1, nextID: 1}
}

// NewVertexState allocates a fresh positive component id, or its negative
// counterpart if v is configured as a root (RootedForest/RootedCut).
func (c *Component) NewVertexState(v int) int64 {
	id := c.nextID
	c.nextID++
	if c.Roots[v] {
		return -id
	}
	return id
}

func winningID(a, b int64) (win, lose int64) {
	aNeg, bNeg := a < 0, b < 0
	if aNeg != bNeg {
		if aNeg {
			return a, b
		}
		return b, a
	}
	// same sign: canonical winner is the smaller magnitude so ids trend
	// toward the lowest-numbered representative, matching spec.md §3's
	// first-appearance canonicalization intent.
	if abs64(a) <= abs64(b) {
		return a, b
	}
	return b, a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// CheckTerminalPre rejects a KCut/RootedCut transition that would push the
// accumulated cut weight past the configured upper bound before Update
// even runs, avoiding a wasted merge. For the forest-shaped kinds
// (SpanningForest, SpanningTree, RootedForest) it also rejects a Hi edge
// whose endpoints already share a component: taking it would close a
// cycle, which none of the three permit.
func (c *Component) CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict {
	switch {
	case c.Kind == KCut && child == Lo:
		if m.Scalar+mgr.EdgeWeight(edge) > int64(c.Range.Hi) {
			return Reject
		}
	case c.Kind == RootedCut && child == Hi:
		if m.Scalar+mgr.EdgeWeight(edge) > int64(c.Range.Hi) {
			return Reject
		}
	}
	if child == Hi && (c.Kind == SpanningForest || c.Kind == SpanningTree || c.Kind == RootedForest) {
		ends := mgr.Endpoints(edge)
		if len(ends) == 2 {
			iu, iv := mgr.IndexInBoth(ends[0]), mgr.IndexInBoth(ends[1])
			if iu >= 0 && iv >= 0 && m.F[iu] == m.F[iv] {
				return Reject
			}
		}
	}
	return Continue
}

// Update merges the two endpoint components on Hi, and accumulates cut
// weight on whichever child the configured Kind tracks it on.
func (c *Component) Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) {
	switch {
	case c.Kind == KCut && child == Lo:
		m.Scalar += mgr.EdgeWeight(edge)
	case c.Kind == RootedCut && child == Hi:
		m.Scalar += mgr.EdgeWeight(edge)
	}
	if child == Lo {
		return
	}
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return
	}
	iu, iv := mgr.IndexInBoth(ends[0]), mgr.IndexInBoth(ends[1])
	if iu < 0 || iv < 0 || m.F[iu] == m.F[iv] {
		return
	}
	win, lose := winningID(m.F[iu], m.F[iv])
	for i, v := range m.F {
		if v == lose {
			m.F[i] = win
		}
	}
}

// CheckTerminalPost finalizes any component whose last frontier member is
// leaving: RootedForest requires the finalized id be negative (a root was
// absorbed); all other kinds simply bump the finalized-component counter.
// On the construction's last edge it applies the family's terminal
// acceptance rule.
func (c *Component) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict {
	for _, v := range mgr.Leaving {
		i := mgr.IndexInBoth(v)
		if i < 0 {
			continue
		}
		id := m.F[i]
		stillShared := false
		for _, w := range mgr.Both {
			if w == v {
				continue
			}
			j := mgr.IndexInBoth(w)
			if j >= 0 && m.F[j] == id {
				stillShared = true
				break
			}
		}
		if stillShared {
			continue
		}
		if c.Kind == RootedForest && id >= 0 {
			return Reject
		}
		m.Scalar++
	}

	if edge != c.lastEdge {
		return Continue
	}

	switch c.Kind {
	case SpanningTree:
		if m.Scalar == 1 {
			return Accept
		}
		return Reject
	case SpanningForest, RootedForest:
		return Accept
	case Partition:
		if c.Range.Contains(int(m.Scalar)) {
			return Accept
		}
		return Reject
	case KCut, RootedCut:
		if m.Scalar <= int64(c.Range.Hi) && m.Scalar >= int64(c.Range.Lo) {
			return Accept
		}
		return Reject
	}
	return Reject
}

// Canonicalize renumbers the live component ids by first appearance, the
// sole reason two structurally equivalent frontier states compare equal
// under hash-consing (spec.md §3).
func (c *Component) Canonicalize(m *mate.Mate) {
	reindexByFirstAppearance(m.F)
}
