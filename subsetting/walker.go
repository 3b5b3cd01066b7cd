package subsetting

import (
	"github.com/frontiergo/frontier/family"
	"github.com/frontiergo/frontier/zdd"
)

// Walker implements construct.SubsettingConstraint over a second,
// already-built ZDD. Its cursor is simply that ZDD's NodeID, carried in
// mate.Mate.SDDCursor as an int64.
type Walker struct {
	dd *zdd.ZDD
}

// New wraps dd for use as a subsetting constraint. Root returns the
// cursor value Construct should seed new mates with.
func New(dd *zdd.ZDD) *Walker {
	return &Walker{dd: dd}
}

// Root returns the cursor value a fresh mate should start with: the
// subsetting DD's own root.
func (w *Walker) Root() int64 { return int64(w.dd.Root) }

// Step advances cursor by one edge decision, per spec.md §4.8: if the
// subsetting DD has a live node at this level, its Lo/Hi arc is
// consulted and a Hi or Lo that leads to 0 is rejected; if the DD has no
// node at this level (it skipped the variable via zero-suppression), Lo
// is free but Hi is forbidden, since the constraint never selected this
// edge.
func (w *Walker) Step(cursor int64, edge int, child family.ChildKind) (next int64, allowed bool) {
	id := zdd.NodeID(cursor)
	if id == zdd.One {
		// Every later level is absent from the subsetting DD: Lo only.
		return int64(zdd.One), child == family.Lo
	}
	if id == zdd.Zero {
		return int64(zdd.Zero), false
	}

	if w.dd.Level(id) != edge {
		// This level is absent from the subsetting DD: only Lo (edge not
		// taken) is consistent with the implicit zero-suppression.
		if child == family.Hi {
			return cursor, false
		}
		return cursor, true
	}

	var target zdd.NodeID
	if child == family.Hi {
		target = w.dd.Hi(id)
	} else {
		target = w.dd.Lo(id)
	}
	if target == zdd.Zero {
		return int64(zdd.Zero), false
	}
	return int64(target), true
}
