// Package xerrors collects the error kinds used across this module: two
// sentinels, for input validation and resource exhaustion, and a panic
// helper for logic-invariant violations. Packages still define their own
// specific sentinels (graph.ErrNoEdges, count.ErrOverflow, ...); those
// are wrapped with one of the two sentinels via fmt.Errorf("%w")
// so that a caller who only cares about the KIND of failure can match with
// errors.Is(err, xerrors.Validation) without knowing every package's
// individual sentinels.
package xerrors

import (
	"errors"
	"fmt"
)

var (
	// Validation marks a failure caused by malformed or out-of-range
	// caller input: a malformed line, an out-of-range vertex id, a
	// negative limit.
	Validation = errors.New("xerrors: invalid input")

	// Exhausted marks a failure caused by running out of a finite
	// resource during a correct computation: an int64 counter overflow,
	// an arena that cannot grow, a node id space wider than zdd.NodeID.
	Exhausted = errors.New("xerrors: resource exhausted")
)

// Invariant panics with a message naming the violated invariant. Reserved
// for conditions that can only be reached by a bug in a family
// implementation or the construction engine itself — never by caller
// input — so recovering from it would only hide the bug.
func Invariant(format string, args ...any) {
	panic("xerrors: invariant violated: " + fmt.Sprintf(format, args...))
}
