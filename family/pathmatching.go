package family

import (
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// PathMatching implements the multi-terminal "number link" family
// (spec.md §4.4, "Path-matching / multi-terminal path"). Like STPath, F[v]
// is mate_t; additionally, Aux carries one int64 per frontier vertex (in
// the same order as F) recording which terminal pair the segment
// containing that vertex currently belongs to, or 0 if it touches no
// terminal yet.
type PathMatching struct {
	// TerminalOf maps a terminal vertex to its 1-based pair number.
	// Exactly two vertices must share each pair number.
	TerminalOf map[int]int

	lastEdge int
}

var _ Family = (*PathMatching)(nil)

// NewPathMatching prepares a PathMatching family for numEdges edges.
func NewPathMatching(terminalOf map[int]int, numEdges int) *PathMatching {
	return &PathMatching{TerminalOf: terminalOf, lastEdge: numEdges - 1}
}

// NewVertexState mirrors STPath's isolated-self default.
func (f *PathMatching) NewVertexState(v int) int64 { return int64(v) }

func (f *PathMatching) auxLabel(m *mate.Mate, i int) int64 {
	if i < len(m.Aux) {
		return m.Aux[i]
	}
	return 0
}

// CheckTerminalPre rejects cross-pair connections and closes a path only
// when both mutually-linked endpoints carry the same terminal label.
func (f *PathMatching) CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict {
	if child == Lo {
		return Continue
	}
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return Continue
	}
	u, v := ends[0], ends[1]
	iu, iv := mgr.IndexInBoth(u), mgr.IndexInBoth(v)
	if iu < 0 || iv < 0 {
		return Continue
	}
	if m.F[iu] == 0 || m.F[iv] == 0 {
		return Reject
	}
	labU, labV := f.auxLabel(m, iu), f.auxLabel(m, iv)
	if labU != 0 && labV != 0 && labU != labV {
		return Reject
	}
	if m.F[iu] != int64(v) {
		return Continue
	}
	// Closing: u and v are mutual segment endpoints.
	if lu, lv := f.TerminalOf[u], f.TerminalOf[v]; lu == 0 || lv == 0 || lu != lv {
		return Reject // only accept when the closure lands exactly on one pair
	}
	return Accept
}

// Update merges segment endpoints exactly as STPath, additionally
// propagating whichever of the two segments carries a nonzero terminal
// label to the merged segment's endpoints.
func (f *PathMatching) Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) {
	if child == Lo {
		return
	}
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return
	}
	u, v := ends[0], ends[1]
	iu, iv := mgr.IndexInBoth(u), mgr.IndexInBoth(v)
	t1, t2 := m.F[iu], m.F[iv]
	label := f.auxLabel(m, iu)
	if label == 0 {
		label = f.auxLabel(m, iv)
	}
	if n, ok := f.TerminalOf[u]; ok {
		label = int64(n)
	}
	if n, ok := f.TerminalOf[v]; ok {
		label = int64(n)
	}

	if it1 := mgr.IndexInBoth(int(t1)); it1 >= 0 {
		m.F[it1] = t2
		f.setAux(m, it1, label)
	}
	if it2 := mgr.IndexInBoth(int(t2)); it2 >= 0 {
		m.F[it2] = t1
		f.setAux(m, it2, label)
	}
	if int(t1) != u {
		m.F[iu] = 0
	}
	if int(t2) != v {
		m.F[iv] = 0
	}
}

func (f *PathMatching) setAux(m *mate.Mate, i int, label int64) {
	for len(m.Aux) <= i {
		m.Aux = append(m.Aux, 0)
	}
	m.Aux[i] = label
}

// CheckTerminalPost mirrors STPath's plain (non-Hamiltonian) leave rule:
// a terminal vertex must never leave the frontier isolated, since that
// would mean its pair was never connected.
func (f *PathMatching) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict {
	for _, v := range mgr.Leaving {
		i := mgr.IndexInBoth(v)
		if i < 0 {
			continue
		}
		val := m.F[i]
		if val == 0 {
			continue
		}
		if val == int64(v) {
			if _, isTerminal := f.TerminalOf[v]; isTerminal {
				return Reject
			}
			continue
		}
		return Reject // dangling open segment, non-terminal vertices must finish
	}
	return Continue
}

// Canonicalize is a no-op: mate_t values are global vertex ids.
func (f *PathMatching) Canonicalize(m *mate.Mate) {}
