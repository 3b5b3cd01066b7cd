package family

import (
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// degShift packs {deg, comp} into one int64 F slot: the low 6 bits hold
// the degree (0..63, ample for any simple graph's frontier), the
// remaining bits hold the signed component id.
const degShift = 6

func packDegComp(deg int, comp int64) int64 { return comp<<degShift | int64(deg&0x3f) }
func unpackDeg(v int64) int                 { return int(v & 0x3f) }
func unpackComp(v int64) int64              { return v >> degShift }

// General implements the configurable-predicate family (spec.md §4.4,
// "General family"): per-vertex degree bounds, forbidden/required vertex
// pairs, a component-count range, an edge-count range, and a
// cycle-permitted flag. Aux[0] holds the running finalized-component
// count (cc); the rest of Aux is unused. No per-component member list is
// kept, so the pair predicates only see vertices that are on the frontier
// when they are checked (see Forbidden and Required).
type General struct {
	DegreeBound    map[int]IntRange // per-vertex allowed degree; absent entries default to [0,2]
	Forbidden      [][2]int         // vertex pairs whose direct edge is never taken; a connection through other vertices is not checked
	Required       [][2]int         // vertex pairs that must share a component; checked when one member's component finalizes, and only if the other member is on the frontier then
	ComponentCount IntRange
	EdgeCount      IntRange
	CyclePermitted bool

	lastEdge int
	nextID   int64
}

var _ Family = (*General)(nil)

// NewGeneral prepares a General family for numEdges edges, starting from
// the same open component-count and edge-count ranges as
// ParseGeneralParams.
func NewGeneral(numEdges int) *General {
	return &General{
		ComponentCount: IntRange{Lo: 0, Hi: 1 << 30},
		EdgeCount:      IntRange{Lo: 0, Hi: 1 << 30},
		lastEdge:       numEdges - 1,
		nextID:         1,
	}
}

// SetEdgeCount fixes the construction's edge count, needed because
// ParseGeneralParams builds a General before the edge source is known.
func (f *General) SetEdgeCount(numEdges int) { f.lastEdge = numEdges - 1 }

func (f *General) degreeRange(v int) IntRange {
	if r, ok := f.DegreeBound[v]; ok {
		return r
	}
	return IntRange{Lo: 0, Hi: 2}
}

// NewVertexState starts v at degree 0 in its own fresh component.
func (f *General) NewVertexState(v int) int64 {
	id := f.nextID
	f.nextID++
	return packDegComp(0, id)
}

func (f *General) inSameComponent(m *mate.Mate, mgr *frontier.Manager, a, b int) bool {
	ia, ib := mgr.IndexInBoth(a), mgr.IndexInBoth(b)
	if ia < 0 || ib < 0 {
		return false
	}
	return unpackComp(m.F[ia]) == unpackComp(m.F[ib])
}

// CheckTerminalPre enforces the forbidden-pair and degree-bound
// predicates before a Hi edge is taken, and the cycle-permitted flag when
// the edge would close a cycle within an existing component.
func (f *General) CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict {
	if child == Lo {
		return Continue
	}
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return Continue
	}
	u, v := ends[0], ends[1]
	for _, pair := range f.Forbidden {
		if (pair[0] == u && pair[1] == v) || (pair[0] == v && pair[1] == u) {
			return Reject
		}
	}
	iu, iv := mgr.IndexInBoth(u), mgr.IndexInBoth(v)
	if iu < 0 || iv < 0 {
		return Continue
	}
	if unpackDeg(m.F[iu])+1 > f.degreeRange(u).Hi || unpackDeg(m.F[iv])+1 > f.degreeRange(v).Hi {
		return Reject
	}
	if !f.CyclePermitted && unpackComp(m.F[iu]) == unpackComp(m.F[iv]) {
		return Reject
	}
	return Continue
}

// Update does nothing on Lo. On Hi it bumps both endpoints' degree, merges
// their components (the smaller-magnitude id wins, matching Component's
// convention) and bumps the running edge count.
func (f *General) Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) {
	if child == Lo {
		return
	}
	m.Scalar++ // total edges taken so far
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return
	}
	u, v := ends[0], ends[1]
	iu, iv := mgr.IndexInBoth(u), mgr.IndexInBoth(v)
	if iu < 0 || iv < 0 {
		return
	}
	degU, degV := unpackDeg(m.F[iu])+1, unpackDeg(m.F[iv])+1
	compU, compV := unpackComp(m.F[iu]), unpackComp(m.F[iv])
	m.F[iu] = packDegComp(degU, compU)
	m.F[iv] = packDegComp(degV, compV)
	if compU == compV {
		return
	}
	win, lose := winningID(compU, compV)
	for i, raw := range m.F {
		if unpackComp(raw) == lose {
			m.F[i] = packDegComp(unpackDeg(raw), win)
		}
	}
}

// CheckTerminalPost finalizes components whose last member is leaving,
// checking the degree bound's lower end and, for each required pair that
// names the leaving vertex, rejecting when the partner is on the frontier
// in another component; a partner that has already left or has not yet
// entered is not checked. On the last edge it applies the
// component-count and edge-count range predicates.
func (f *General) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict {
	for len(m.Aux) == 0 {
		m.Aux = append(m.Aux, 0)
	}
	for _, v := range mgr.Leaving {
		i := mgr.IndexInBoth(v)
		if i < 0 {
			continue
		}
		if unpackDeg(m.F[i]) < f.degreeRange(v).Lo {
			return Reject
		}
		comp := unpackComp(m.F[i])
		stillShared := false
		for _, w := range mgr.Both {
			if w == v {
				continue
			}
			j := mgr.IndexInBoth(w)
			if j >= 0 && unpackComp(m.F[j]) == comp {
				stillShared = true
				break
			}
		}
		if stillShared {
			continue
		}
		m.Aux[0]++
		for _, pair := range f.Required {
			if pair[0] != v && pair[1] != v {
				continue
			}
			other := pair[0]
			if other == v {
				other = pair[1]
			}
			if !f.inSameComponent(m, mgr, v, other) && mgr.IndexInBoth(other) >= 0 {
				return Reject
			}
		}
	}

	if edge != f.lastEdge {
		return Continue
	}
	if !f.ComponentCount.Contains(int(m.Aux[0])) {
		return Reject
	}
	if !f.EdgeCount.Contains(int(m.Scalar)) {
		return Reject
	}
	return Accept
}

// Canonicalize renumbers the component half of every F slot by first
// appearance, leaving the degree bits untouched.
func (f *General) Canonicalize(m *mate.Mate) {
	comps := make([]int64, len(m.F))
	for i, v := range m.F {
		comps[i] = unpackComp(v)
	}
	reindexByFirstAppearance(comps)
	for i, c := range comps {
		m.F[i] = packDegComp(unpackDeg(m.F[i]), c)
	}
}
