package family

import (
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// STPath implements the simple s-t path / cycle / Hamiltonian-path
// families (spec.md §4.4, "Simple s-t path / cycle / Hamiltonian
// variants"). F[v] is mate_t: F[v]==v means v is isolated, F[v]==0 means
// v is interior to a path segment (already degree 2), otherwise F[v] is
// the vertex at the other end of v's segment.
//
// In s-t path mode, S and T are pre-linked (F[S] starts at T and vice
// versa) so that completing an s-t path and closing a cycle are the same
// mate transition. In Cycle mode S and T are ignored entirely (per the
// original implementation's StateSTPath.hpp, "IsCycle()... start_vertex_
// and end_vertex_ are ignored"): every vertex, S and T included, starts
// isolated, and the family accepts a closed loop formed by any two
// frontier vertices, giving the simple-cycle family rather than a path
// anchored at two fixed endpoints. Hamilton additionally requires every
// vertex to be visited. ELimit optionally bounds the number of edges in
// the accepted path/cycle.
type STPath struct {
	S, T     int
	Hamilton bool
	Cycle    bool
	ELimit   *IntRange // optional edge-count bound, spec.md §4 SUPPLEMENTED --elimit
}

var _ Family = (*STPath)(nil)

// NewVertexState returns T for S, S for T (the pre-link trick) in s-t
// path mode, and the vertex's own id otherwise (isolated) — including for
// S and T themselves when f.Cycle is set, since cycle mode has no
// distinguished endpoints.
func (f *STPath) NewVertexState(v int) int64 {
	if !f.Cycle {
		switch v {
		case f.S:
			return int64(f.T)
		case f.T:
			return int64(f.S)
		}
	}
	return int64(v)
}

// CheckTerminalPre implements the cycle-closure short-circuit: connecting
// u and v when they are already each other's segment endpoint closes a
// loop. That loop is only a solution if every other frontier vertex has
// finished its segment (mate 0), in Hamiltonian mode no unprocessed
// vertex remains off the frontier, and — when ELimit is set — the
// resulting total edge count falls within it. ELimit also prunes early:
// a candidate that has already taken too many edges is rejected before
// its closure is even considered, mirroring Component's KCut early bail.
func (f *STPath) CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict {
	if child == Lo {
		return Continue
	}
	if f.ELimit != nil && m.Scalar+1 > int64(f.ELimit.Hi) {
		return Reject
	}
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return Continue // self-loop edges never close anything in this family
	}
	u, v := ends[0], ends[1]
	iu, iv := mgr.IndexInBoth(u), mgr.IndexInBoth(v)
	if iu < 0 || iv < 0 {
		return Continue
	}
	if m.F[iu] == 0 || m.F[iv] == 0 {
		return Reject // both endpoints already have degree 2
	}
	if m.F[iu] != int64(v) {
		return Continue // not closing anything yet
	}
	// u and v are mutual segment endpoints: taking this edge closes a loop.
	for i, x := range mgr.Both {
		if x == u || x == v {
			continue
		}
		if m.F[i] != 0 {
			return Reject // a dangling segment remains elsewhere on the frontier
		}
	}
	if f.Hamilton && mgr.IsAnyUnprocessedVertexMissingFromFrontier(edge) {
		return Reject
	}
	if f.ELimit != nil && !f.ELimit.Contains(int(m.Scalar)+1) {
		return Reject // closing now falls outside the configured edge-count bound
	}
	return Accept
}

// Update applies the standard path-mate merge: the two segment endpoints
// touched by this edge are relinked to each other's far endpoint. It also
// accumulates the taken-edge count in m.Scalar, consulted by ELimit.
func (f *STPath) Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) {
	if child == Lo {
		return
	}
	m.Scalar++
	ends := mgr.Endpoints(edge)
	if len(ends) != 2 {
		return
	}
	u, v := ends[0], ends[1]
	iu, iv := mgr.IndexInBoth(u), mgr.IndexInBoth(v)
	t1, t2 := m.F[iu], m.F[iv]

	if it1 := mgr.IndexInBoth(int(t1)); it1 >= 0 {
		m.F[it1] = t2
	}
	if it2 := mgr.IndexInBoth(int(t2)); it2 >= 0 {
		m.F[it2] = t1
	}
	if int(t1) != u {
		m.F[iu] = 0
	}
	if int(t2) != v {
		m.F[iv] = 0
	}
}

// CheckTerminalPost checks every leaving vertex. A vertex with mate 0
// (degree 2) may always leave. An isolated vertex may leave except in
// Hamiltonian mode, where every vertex must end up on the path. A vertex
// that is still an open segment end is rejected, except S and T in plain
// (non-Hamiltonian, non-Cycle) mode, where the pre-link makes an
// untouched S or T look like a segment end. In Cycle mode S and T carry
// no special status (see NewVertexState), so that exception does not
// apply and every vertex is held to the same dangling-segment check.
func (f *STPath) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict {
	for _, v := range mgr.Leaving {
		i := mgr.IndexInBoth(v)
		if i < 0 {
			continue
		}
		val := m.F[i]
		if val == 0 {
			continue // interior, degree 2: fine to leave
		}
		if val == int64(v) {
			// still isolated: acceptable everywhere except Hamiltonian mode,
			// where every vertex must end up on the path.
			if f.Hamilton {
				return Reject
			}
			continue
		}
		// still has a dangling open segment end; only tolerated for S/T in
		// non-Hamiltonian, non-Cycle mode since the pre-link makes them look
		// "linked" without ever being walked. Cycle mode never pre-links S/T
		// (NewVertexState), so it gets no such exception.
		if !f.Hamilton && !f.Cycle && (v == f.S || v == f.T) {
			continue
		}
		return Reject
	}
	return Continue
}

// Canonicalize is a no-op: mate_t values are global vertex ids, already
// canonical.
func (f *STPath) Canonicalize(m *mate.Mate) {}
