package construct

import (
	"github.com/frontiergo/frontier/family"
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/hashcons"
	"github.com/frontiergo/frontier/mate"
	"github.com/frontiergo/frontier/zdd"
)

// SubsettingConstraint is the capability construct.Construct consults on
// every Lo/Hi transition when a subsetting DD (C10) is configured. Step
// returns the cursor's next position and whether this transition remains
// legal; subsetting.Walker implements it.
type SubsettingConstraint interface {
	Step(cursor int64, edge int, child family.ChildKind) (next int64, allowed bool)
}

// Option configures a Construct call. As with the rest of this module,
// option constructors validate and panic on meaningless input; Construct
// itself never panics on well-formed arguments.
type Option func(*engineConfig)

// LevelObserver receives the live-node count at the end of each completed
// level; internal/telemetry.Recorder implements it. Construct calls it
// synchronously after each level finishes, never on a hot inner loop.
type LevelObserver interface {
	Observe(level, levelWidth int)
}

type engineConfig struct {
	subsetting   SubsettingConstraint
	arenaBlock   int
	initialTable int
	observer     LevelObserver
}

// WithSubsetting attaches an optional second DD walked in lock-step with
// construction (spec.md §4.8).
func WithSubsetting(w SubsettingConstraint) Option {
	return func(c *engineConfig) {
		if w == nil {
			panic("construct: WithSubsetting: nil constraint")
		}
		c.subsetting = w
	}
}

// WithArenaBlockSize overrides the mate arena's per-block element count.
func WithArenaBlockSize(n int) Option {
	return func(c *engineConfig) {
		if n <= 0 || n&(n-1) != 0 {
			panic("construct: WithArenaBlockSize: must be a positive power of two")
		}
		c.arenaBlock = n
	}
}

// WithInitialHashTableSize overrides the hash-cons table's starting
// bucket count.
func WithInitialHashTableSize(n int) Option {
	return func(c *engineConfig) {
		if n <= 0 {
			panic("construct: WithInitialHashTableSize: must be positive")
		}
		c.initialTable = n
	}
}

// WithLevelObserver attaches a LevelObserver notified after each level
// finishes expanding, for optional telemetry (cmd/frontier --metrics-addr).
func WithLevelObserver(o LevelObserver) Option {
	return func(c *engineConfig) {
		if o == nil {
			panic("construct: WithLevelObserver: nil observer")
		}
		c.observer = o
	}
}

// record is one live node carried from the level that just finished into
// the level about to be expanded: its ZDD node id and the arena offset at
// which its (now-parent) mate was packed.
type record struct {
	id    zdd.NodeID
	ref   int64
	count int64
	live  *mate.Mate // retained only while this record is being hash-consed against at the CURRENT level; nil for records carried from a prior level
}

// Construct runs the full C7 loop over src using fam as the family state
// machine, returning the unreduced PseudoZDD. Callers typically pass the
// result through zdd.Reduce before counting or sampling.
func Construct(src frontier.EdgeSource, fam family.Family, opts ...Option) *zdd.ZDD {
	cfg := engineConfig{arenaBlock: mate.DefaultBlockSize, initialTable: 64}
	for _, o := range opts {
		o(&cfg)
	}

	numEdges := src.EdgeCount()
	mgr := frontier.New(src)
	arena := mate.NewArena[int64](cfg.arenaBlock)
	table := hashcons.New(cfg.initialTable)
	builder := zdd.NewBuilder(numEdges)

	builder.StartLevel(0)
	root := builder.AddNode()
	rootMate := mate.New(0)
	if seeder, ok := cfg.subsetting.(interface{ Root() int64 }); ok {
		rootMate.SDDCursor = seeder.Root()
	}
	rootRef, rootCount := rootMate.Pack(arena)

	level := []record{{id: root, ref: rootRef, count: rootCount}}

	for e := 0; e < numEdges; e++ {
		mgr.Advance(e)
		builder.StartLevel(e + 1)
		table.Flush()

		var next []record
		loArc := make([]zdd.NodeID, len(level))
		hiArc := make([]zdd.NodeID, len(level))

		for pi, parent := range level {
			for _, child := range []family.ChildKind{family.Lo, family.Hi} {
				m := mate.New(0)
				m.Unpack(arena, parent.ref)
				for _, v := range mgr.Entering {
					m.F = append(m.F, fam.NewVertexState(v))
				}

				target := expandChild(fam, mgr, m, e, child, cfg.subsetting, arena, builder, table, &next)
				if child == family.Lo {
					loArc[pi] = target
				} else {
					hiArc[pi] = target
				}
			}
		}

		if len(level) > 0 {
			last := level[len(level)-1]
			arena.AdvanceTail(last.ref + last.count)
		}
		for pi, parent := range level {
			builder.SetArc(parent.id, loArc[pi], hiArc[pi])
		}
		for i := range next {
			next[i].live = nil // this level is now the "previous" level; drop the in-memory retention aid
		}
		level = next
		if cfg.observer != nil {
			cfg.observer.Observe(e+1, len(level))
		}
	}

	return builder.Finish(numEdges, root)
}

// expandChild runs one Lo or Hi transition for the already-grown mate m
// (sized over mgr.Both), returning the ZDD target: a terminal, or the id
// of a new-or-hash-consed node appended to next.
func expandChild(fam family.Family, mgr *frontier.Manager, m *mate.Mate, edge int, child family.ChildKind,
	sub SubsettingConstraint, arena *mate.Arena[int64], builder *zdd.Builder, table *hashcons.Table, next *[]record) zdd.NodeID {

	if sub != nil {
		nextCursor, allowed := sub.Step(m.SDDCursor, edge, child)
		if !allowed {
			return zdd.Zero
		}
		m.SDDCursor = nextCursor
	}

	if v := fam.CheckTerminalPre(m, child, edge, mgr); v != family.Continue {
		return terminalOf(v)
	}
	fam.Update(m, child, edge, mgr)
	if v := fam.CheckTerminalPost(m, edge, mgr); v != family.Continue {
		return terminalOf(v)
	}
	fam.Canonicalize(m)
	shrinkToNext(m, mgr)

	hash := m.Hash()
	candidate, ok := table.Lookup(hash, func(idx int) bool {
		return (*next)[idx].live.Equal(m)
	})
	if ok {
		return (*next)[candidate].id
	}

	ref, count := m.Pack(arena)
	id := builder.AddNode()
	idx := len(*next)
	*next = append(*next, record{id: id, ref: ref, count: count, live: m})
	table.Insert(hash, idx)
	return id
}

func terminalOf(v family.Verdict) zdd.NodeID {
	if v == family.Accept {
		return zdd.One
	}
	return zdd.Zero
}

// shrinkToNext drops the F slots belonging to vertices that just left the
// frontier, so the packed mate stored for this child matches mgr.Next's
// width. Aux is left as it is.
func shrinkToNext(m *mate.Mate, mgr *frontier.Manager) {
	kept := m.F[:0]
	for i, v := range mgr.Both {
		if mgr.IndexOf(v) >= 0 {
			kept = append(kept, m.F[i])
		}
	}
	m.F = kept
}
