package family

import (
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// CoverKind selects which hypergraph covering family HyperCover
// implements.
type CoverKind int

const (
	SetPartition CoverKind = iota // exactly one selected hyperedge covers each vertex
	SetCover                      // at least one
	SetPacking                    // at most one
)

// HyperCover implements the set-partition/cover/packing families
// (spec.md §4.4, "Hypergraph families"). F[v] is a single 0/1 flag: has v
// already been covered by a selected hyperedge.
type HyperCover struct {
	Kind CoverKind

	lastEdge int
}

var _ Family = (*HyperCover)(nil)

// NewHyperCover prepares a HyperCover family for a construction over
// numEdges hyperedges (0-based, last index numEdges-1).
func NewHyperCover(kind CoverKind, numEdges int) *HyperCover {
	return &HyperCover{Kind: kind, lastEdge: numEdges - 1}
}

// NewVertexState starts every vertex uncovered.
func (f *HyperCover) NewVertexState(v int) int64 { return 0 }

// CheckTerminalPre rejects re-covering an already-covered vertex under
// partition/packing semantics, where a vertex may belong to at most one
// selected hyperedge.
func (f *HyperCover) CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict {
	if child == Lo || f.Kind == SetCover {
		return Continue
	}
	for _, v := range mgr.Endpoints(edge) {
		i := mgr.IndexInBoth(v)
		if i >= 0 && m.F[i] != 0 {
			return Reject
		}
	}
	return Continue
}

// Update marks every endpoint of a selected hyperedge as covered.
func (f *HyperCover) Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) {
	if child == Lo {
		return
	}
	for _, v := range mgr.Endpoints(edge) {
		if i := mgr.IndexInBoth(v); i >= 0 {
			m.F[i] = 1
		}
	}
}

// CheckTerminalPost requires every leaving vertex to be covered, except
// under set-packing where zero coverage is also acceptable. On the
// construction's last edge it resolves to the family's terminal verdict
// instead of leaving the candidate live with nothing left to decide.
func (f *HyperCover) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict {
	if f.Kind != SetPacking {
		for _, v := range mgr.Leaving {
			i := mgr.IndexInBoth(v)
			if i >= 0 && m.F[i] == 0 {
				return Reject
			}
		}
	}
	if edge != f.lastEdge {
		return Continue
	}
	return Accept
}

// Canonicalize is a no-op: F is a plain 0/1 flag, already canonical.
func (f *HyperCover) Canonicalize(m *mate.Mate) {}
