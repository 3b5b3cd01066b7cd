package family

import (
	"errors"
	"fmt"

	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/mate"
)

// ChildKind names which ZDD arc the construction engine is currently
// expanding.
type ChildKind int

const (
	Lo ChildKind = iota
	Hi
)

func (c ChildKind) String() string {
	if c == Hi {
		return "hi"
	}
	return "lo"
}

// Verdict is the three-valued result of a terminal check, matching
// spec.md §4.4's {0, 1, -1} contract.
type Verdict int

const (
	// Continue means the candidate is neither accepted nor rejected yet;
	// construction proceeds to the next edge.
	Continue Verdict = -1
	// Reject collapses this child onto the ZDD's 0-terminal.
	Reject Verdict = 0
	// Accept collapses this child onto the ZDD's 1-terminal.
	Accept Verdict = 1
)

// ErrMalformedParams is returned by the per-family parameter parsers
// (ParseIntRange, ParseGeneralParams) on malformed input. Terminal-pair
// files are read by graph.LoadTerminalPairs, which reports
// graph.ErrMalformedLine instead.
var ErrMalformedParams = errors.New("family: malformed parameters")

// Family is the per-subgraph-type state machine spec.md §4.4 describes.
// Implementations must be stateless with respect to any single mate: all
// mutable per-construction state (component id counters, and similar)
// lives on the Family value itself, since exactly one Engine drives one
// Family instance for the lifetime of a Construct call.
type Family interface {
	// NewVertexState returns the F-slot value a vertex takes the instant
	// it enters the frontier, e.g. mate_t's "isolated" self-reference or
	// a freshly allocated component id.
	NewVertexState(v int) int64

	// CheckTerminalPre decides termination before Update runs, per
	// spec.md §4.4. mgr reflects the frontier state for the edge about to
	// be decided.
	CheckTerminalPre(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager) Verdict

	// Update mutates m to reflect having taken child for the current
	// edge. Only called when CheckTerminalPre returned Continue.
	Update(m *mate.Mate, child ChildKind, edge int, mgr *frontier.Manager)

	// CheckTerminalPost decides termination after Update, typically
	// driven by vertices in mgr.Leaving and whether edge is the last one.
	CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) Verdict

	// Canonicalize renumbers any component-id-like fields in m by first
	// appearance order, per spec.md §3's "Canonical relabelling". Families
	// whose F values are already globally canonical (e.g. vertex ids) may
	// implement this as a no-op.
	Canonicalize(m *mate.Mate)
}

// IntRange is an inclusive [Lo, Hi] bound, used by --elimit/--comp style
// flags that accept either a bare N (meaning [N,N]) or an [a,b] pair.
type IntRange struct {
	Lo, Hi int
}

// Contains reports whether v falls within the range, inclusive.
func (r IntRange) Contains(v int) bool { return v >= r.Lo && v <= r.Hi }

// ParseIntRange parses "N" or "[a,b]" into an IntRange.
func ParseIntRange(s string) (IntRange, error) {
	var a, b int
	if n, _ := fmt.Sscanf(s, "[%d,%d]", &a, &b); n == 2 {
		if a > b {
			return IntRange{}, fmt.Errorf("%w: range %q has lo > hi", ErrMalformedParams, s)
		}
		return IntRange{Lo: a, Hi: b}, nil
	}
	if n, _ := fmt.Sscanf(s, "%d", &a); n == 1 {
		return IntRange{Lo: a, Hi: a}, nil
	}
	return IntRange{}, fmt.Errorf("%w: %q is neither N nor [a,b]", ErrMalformedParams, s)
}

// reindexByFirstAppearance renumbers the distinct non-zero values in f
// (in the order they are first seen) to the given positive and negative
// sequences, leaving zero values untouched. Positive values map to
// 1,2,3,...; negative values map to -1,-2,-3,....
func reindexByFirstAppearance(f []int64) {
	posNext, negNext := int64(1), int64(-1)
	remap := make(map[int64]int64, len(f))
	for i, v := range f {
		if v == 0 {
			continue
		}
		nv, ok := remap[v]
		if !ok {
			if v > 0 {
				nv = posNext
				posNext++
			} else {
				nv = negNext
				negNext--
			}
			remap[v] = nv
		}
		f[i] = nv
	}
}
