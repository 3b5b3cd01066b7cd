package family

import (
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// HyperComponentKind selects between the two multi-way component
// families spec.md §4.4 groups together.
type HyperComponentKind int

const (
	HyperSpanningForest HyperComponentKind = iota
	HyperConnected                         // network-reliability style: accepts only if fully connected
)

// HyperComponent implements hyper-spanning-forest and hyper-reliability
// (spec.md §4.4): on Hi, the component ids of every endpoint of the
// selected hyperedge collapse to their minimum, generalising Component's
// pairwise merge to an arbitrary-arity one.
type HyperComponent struct {
	Kind HyperComponentKind

	lastEdge int
	nextID   int64
}

var _ Family = (*HyperComponent)(nil)

// NewHyperComponent prepares a HyperComponent family for numEdges edges.
func NewHyperComponent(numEdges int) *HyperComponent {
	return &HyperComponent{lastEdge: numEdges - 1, nextID: 1}
}

// NewVertexState allocates a fresh component id.
func (f *HyperComponent) NewVertexState(v int) int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *HyperComponent) CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict {
	return Continue
}

// Update collapses the component ids of every endpoint to the minimum id
// present among them, relabelling every frontier slot that carries one of
// those ids.
func (f *HyperComponent) Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) {
	if child == Lo {
		return
	}
	ends := mgr.Endpoints(edge)
	if len(ends) == 0 {
		return
	}
	ids := map[int64]bool{}
	min := int64(0)
	first := true
	for _, v := range ends {
		i := mgr.IndexInBoth(v)
		if i < 0 {
			continue
		}
		ids[m.F[i]] = true
		if first || m.F[i] < min {
			min = m.F[i]
			first = false
		}
	}
	if first {
		return
	}
	for i, id := range m.F {
		if ids[id] {
			m.F[i] = min
		}
	}
}

// CheckTerminalPost finalizes components as their last member leaves and,
// on the last edge, accepts a spanning-forest instance unconditionally or
// a reliability instance only when it collapsed to a single component.
func (f *HyperComponent) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict {
	for len(m.Aux) == 0 {
		m.Aux = append(m.Aux, 0)
	}
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
			if j := mgr.IndexInBoth(w); j >= 0 && m.F[j] == id {
				stillShared = true
				break
			}
		}
		if !stillShared {
			m.Aux[0]++
		}
	}
	if edge != f.lastEdge {
		return Continue
	}
	if f.Kind == HyperConnected && m.Aux[0] != 1 {
		return Reject
	}
	return Accept
}

// Canonicalize renumbers component ids by first appearance.
func (f *HyperComponent) Canonicalize(m *mate.Mate) {
	reindexByFirstAppearance(m.F)
}
