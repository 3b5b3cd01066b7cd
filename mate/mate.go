package mate

// RootSDDCursor is the sentinel subsetting-DD cursor value used before any
// subsetting constraint has been consulted (spec.md §3: "defaults to a
// root sentinel").
const RootSDDCursor int64 = 0

// hashMultiplier is the fixed multiplier spec.md §4.3 specifies for
// combining mate fields, chosen in the original implementation to avoid
// collisions dominated by low-entropy fields.
const hashMultiplier uint64 = 15284356289

// Mate is the working state the construction engine threads through a
// single Lo/Hi expansion: the family-defined per-frontier-vertex record F
// (here a flat []int64, since the construction engine is generic over
// which family owns the layout), an optional fixed Scalar, an optional
// variable-length auxiliary Aux, and the subsetting-DD cursor.
//
// Equality and hashing cover only F, Scalar, and Aux — spec.md §3's "active
// region" — deliberately excluding SDDCursor; two mates differing only in
// subsetting-cursor position are still hash-consed together, since the
// cursor rejoins the frontier state is a side channel consulted by C10
// and not by the family's own terminal predicates.
type Mate struct {
	SDDCursor int64
	F         []int64
	Scalar    int64
	Aux       []int64
}

// New returns a Mate with F sized for n frontier vertices, Scalar zero and Aux empty,
// and the cursor at RootSDDCursor.
func New(n int) *Mate {
	return &Mate{SDDCursor: RootSDDCursor, F: make([]int64, n)}
}

// Clone returns a deep copy, used when a family needs to speculate on a
// transition without corrupting the parent's still-live working mate.
func (m *Mate) Clone() *Mate {
	c := &Mate{SDDCursor: m.SDDCursor, Scalar: m.Scalar}
	c.F = append([]int64(nil), m.F...)
	c.Aux = append([]int64(nil), m.Aux...)
	return c
}

// Pack appends m's encoding to a and returns the absolute offset to give
// Unpack later, plus the element count written (needed by Revert).
//
// Layout, self-describing so Unpack never needs outside bookkeeping:
//
//	[0]            len(F)
//	[1..len(F)]    F values
//	[1+len(F)]     SDDCursor
//	[2+len(F)]     Scalar
//	[3+len(F)]     len(Aux)
//	[4+len(F)..)   Aux values
func (m *Mate) Pack(a *Arena[int64]) (ref int64, count int64) {
	ref = a.Head()
	nF := int64(len(m.F))
	a.WriteAndAdvanceHead(nF)
	for _, v := range m.F {
		a.WriteAndAdvanceHead(v)
	}
	a.WriteAndAdvanceHead(m.SDDCursor)
	a.WriteAndAdvanceHead(m.Scalar)
	nAux := int64(len(m.Aux))
	a.WriteAndAdvanceHead(nAux)
	for _, v := range m.Aux {
		a.WriteAndAdvanceHead(v)
	}
	return ref, nF + 4 + nAux
}

// Unpack decodes the record written at ref back into m, reusing m's
// existing slices' backing arrays where capacity allows.
func (m *Mate) Unpack(a *Arena[int64], ref int64) {
	nF := a.Get(ref)
	m.F = growTo(m.F, int(nF))
	for i := int64(0); i < nF; i++ {
		m.F[i] = a.Get(ref + 1 + i)
	}
	m.SDDCursor = a.Get(ref + 1 + nF)
	m.Scalar = a.Get(ref + 2 + nF)
	nAux := a.Get(ref + 3 + nF)
	m.Aux = growTo(m.Aux, int(nAux))
	for i := int64(0); i < nAux; i++ {
		m.Aux[i] = a.Get(ref + 4 + nF + i)
	}
}

func growTo(s []int64, n int) []int64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int64, n)
}

// Revert undoes the most recent Pack, rolling the arena head back by
// count elements. Called when a speculative allocation turned out to
// lead to a terminal (spec.md §4.3).
func (m *Mate) Revert(a *Arena[int64], count int64) {
	a.BackHead(count)
}

// Hash combines F, Scalar, and Aux with the fixed multiplier from
// spec.md §4.3. SDDCursor is intentionally excluded (see Mate's doc).
func (m *Mate) Hash() uint64 {
	var h uint64
	for _, v := range m.F {
		h = h*hashMultiplier + uint64(v)
	}
	h = h*hashMultiplier + uint64(m.Scalar)
	h = h*hashMultiplier + uint64(len(m.Aux))
	for _, v := range m.Aux {
		h = h*hashMultiplier + uint64(v)
	}
	return h
}

// Equal reports whether m and o have identical active regions (F,
// Scalar, Aux); SDDCursor is not compared, matching Hash.
func (m *Mate) Equal(o *Mate) bool {
	if len(m.F) != len(o.F) || m.Scalar != o.Scalar || len(m.Aux) != len(o.Aux) {
		return false
	}
	for i := range m.F {
		if m.F[i] != o.F[i] {
			return false
		}
	}
	for i := range m.Aux {
		if m.Aux[i] != o.Aux[i] {
			return false
		}
	}
	return true
}
