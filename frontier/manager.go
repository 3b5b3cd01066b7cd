package frontier

// EdgeSource is the minimal view of a graph or hypergraph a Manager needs:
// a fixed edge ordering, per-edge endpoint sets, and each vertex's last
// occurrence index. *graph.Graph and *graph.Hypergraph both satisfy it.
type EdgeSource interface {
	N() int
	EdgeCount() int
	Endpoints(edgeIndex int) []int
	LastOccurrence(vertex int) int
}

// Manager tracks, across successive calls to Advance, the frontier state
// defined in spec.md §3/§4.1: Prev, Entering, Next, Leaving, and Both.
// Next is the only field callers are expected to hold onto between steps;
// the others are step-scoped deltas.
type Manager struct {
	src EdgeSource

	Prev     []int
	Entering []int
	Next     []int
	Leaving  []int
	Both     []int

	inNext   map[int]bool
	curEdge  int
	occupied []bool // scratch reused across Advance calls
}

// New builds a Manager over src. Call Advance once per edge index, in
// increasing order starting at 0.
func New(src EdgeSource) *Manager {
	return &Manager{
		src:      src,
		inNext:   make(map[int]bool),
		curEdge:  -1,
		occupied: make([]bool, src.N()+1),
	}
}

// Advance computes the frontier delta for edge index e (0-based),
// following the contract in spec.md §4.1:
//
//	prev := next; both := prev
//	for each endpoint v not already in next: append to next, both, entering
//	for each endpoint v with no later edge referencing it: remove from
//	    next, append to leaving
//
// Edges must be advanced in strictly increasing order; Advance panics
// otherwise, since the frontier state has no meaning out of sequence.
func (m *Manager) Advance(e int) {
	if e <= m.curEdge {
		panic("frontier: Advance called out of order")
	}
	m.curEdge = e

	m.Prev = append(m.Prev[:0], m.Next...)
	m.Both = append(m.Both[:0], m.Prev...)
	m.Entering = m.Entering[:0]
	m.Leaving = m.Leaving[:0]

	for _, v := range m.src.Endpoints(e) {
		if m.inNext[v] {
			continue
		}
		m.inNext[v] = true
		m.Next = append(m.Next, v)
		m.Both = append(m.Both, v)
		m.Entering = append(m.Entering, v)
	}

	keep := m.Next[:0]
	for _, v := range m.Next {
		if m.src.LastOccurrence(v) <= e {
			m.Leaving = append(m.Leaving, v)
			delete(m.inNext, v)
			continue
		}
		keep = append(keep, v)
	}
	m.Next = keep
}

// weightedSource is the optional capability *graph.Graph and
// *graph.Hypergraph both satisfy; sources with no natural edge weight
// simply don't implement it, and EdgeWeight falls back to 0.
type weightedSource interface {
	EdgeWeight(edgeIndex int) int64
}

// EdgeWeight returns the weight of edge e if src exposes one, else 0.
// Used by cut-style families that accumulate weight as edges are cut.
func (m *Manager) EdgeWeight(e int) int64 {
	if w, ok := m.src.(weightedSource); ok {
		return w.EdgeWeight(e)
	}
	return 0
}

// Endpoints exposes the source's endpoint list for edge index e, so
// families can look up the current edge's vertices without holding their
// own copy of the graph.
func (m *Manager) Endpoints(e int) []int { return m.src.Endpoints(e) }

// IndexOf returns v's position within Next, or -1 if v is not currently in
// the frontier. Families use this to locate a vertex's slot in a mate's F
// slice, which mirrors Next's order.
func (m *Manager) IndexOf(v int) int {
	for i, x := range m.Next {
		if x == v {
			return i
		}
	}
	return -1
}

// IndexInBoth returns v's position within Both, or -1 if absent. Families
// use Both (rather than Next) to look up a vertex's mate slot inside
// CheckTerminalPost, since a vertex in Leaving has already been dropped
// from Next by the time Post runs but its mate slot is still addressable
// through Both's wider index.
func (m *Manager) IndexInBoth(v int) int {
	for i, x := range m.Both {
		if x == v {
			return i
		}
	}
	return -1
}

// IsAnyUnprocessedVertexMissingFromFrontier reports whether some vertex
// incident to a later edge (index > e) is not currently in Next. Used to
// reject non-Hamiltonian candidates early (spec.md §4.1).
func (m *Manager) IsAnyUnprocessedVertexMissingFromFrontier(e int) bool {
	for v := 1; v <= m.src.N(); v++ {
		if m.src.LastOccurrence(v) <= e {
			continue // vertex has no later edge, or never occurs
		}
		if !m.inNext[v] {
			return true
		}
	}
	return false
}

// Reset rewinds the manager to its initial state, for reuse across
// repeated constructions (e.g. subsetting-constrained re-runs) without
// reallocating the scratch buffers.
func (m *Manager) Reset() {
	m.Prev = m.Prev[:0]
	m.Entering = m.Entering[:0]
	m.Next = m.Next[:0]
	m.Leaving = m.Leaving[:0]
	m.Both = m.Both[:0]
	for k := range m.inNext {
		delete(m.inNext, k)
	}
	m.curEdge = -1
}
