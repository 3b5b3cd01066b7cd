package hashcons

// MinBuckets is the smallest bucket count a Table allocates or shrinks
// back to on Flush.
const MinBuckets = 16

type slot struct {
	used bool
	hash uint64
	node int32
}

// Table is an open-addressed (linear probing), level-scoped hash-consing
// table. Keys are caller-supplied 64-bit hashes (see mate.Mate.Hash);
// equality is resolved lazily via an EqualFunc so the table never needs
// to own or copy the value being compared.
type Table struct {
	slots   []slot
	count   int
	initCap int
}

// EqualFunc reports whether the candidate already recorded under node id
// candidate equals the value currently being looked up.
type EqualFunc func(candidate int) bool

// New allocates a Table with the given initial bucket count, rounded up
// to a power of two no smaller than MinBuckets.
func New(initialCap int) *Table {
	cap := MinBuckets
	for cap < initialCap {
		cap <<= 1
	}
	return &Table{slots: make([]slot, cap), initCap: cap}
}

func (t *Table) mask() uint64 { return uint64(len(t.slots) - 1) }

// Lookup returns the node id already hash-consed under hash for which eq
// reports true, or (0, false) if none is present.
func (t *Table) Lookup(hash uint64, eq EqualFunc) (int, bool) {
	idx := hash & t.mask()
	for i := 0; i < len(t.slots); i++ {
		s := &t.slots[idx]
		if !s.used {
			return 0, false
		}
		if s.hash == hash && eq(int(s.node)) {
			return int(s.node), true
		}
		idx = (idx + 1) & t.mask()
	}
	return 0, false
}

// Insert records node under hash, growing the table first if occupancy
// would exceed 50% (spec.md §4.5).
func (t *Table) Insert(hash uint64, node int) {
	if (t.count+1)*2 > len(t.slots) {
		t.grow()
	}
	idx := hash & t.mask()
	for t.slots[idx].used {
		idx = (idx + 1) & t.mask()
	}
	t.slots[idx] = slot{used: true, hash: hash, node: int32(node)}
	t.count++
}

func (t *Table) grow() {
	old := t.slots
	t.slots = make([]slot, len(old)*2)
	t.count = 0
	for _, s := range old {
		if !s.used {
			continue
		}
		idx := s.hash & t.mask()
		for t.slots[idx].used {
			idx = (idx + 1) & t.mask()
		}
		t.slots[idx] = s
		t.count++
	}
}

// Flush empties the table for the next level, shrinking back to its
// initial capacity so a single wide level doesn't pin memory forever.
func (t *Table) Flush() {
	t.slots = make([]slot, t.initCap)
	t.count = 0
}

// Len reports the number of entries currently recorded.
func (t *Table) Len() int { return t.count }
