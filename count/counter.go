package count

import (
	"fmt"
	"math/big"

	"github.com/frontiergo/frontier/internal/xerrors"
)

// ErrOverflow is returned by Int64Counter.Add (and so by Count) when the
// true solution count does not fit in an int64 (spec.md §4.7, "signed-overflow-aware
// variant raises an error on overflow").
var ErrOverflow = fmt.Errorf("count: int64 counter overflowed: %w", xerrors.Exhausted)

// Counter is the pluggable numeric type spec.md §4.7 describes: an
// additive monoid with a designated zero and one, able to add two counts
// and compare a count to zero.
type Counter interface {
	Zero() Counter
	One() Counter
	Add(other Counter) (Counter, error)
	IsZero() bool
	String() string
}

// Int64Counter is the signed-overflow-checked machine-integer backend.
type Int64Counter int64

func (Int64Counter) Zero() Counter { return Int64Counter(0) }
func (Int64Counter) One() Counter  { return Int64Counter(1) }
func (c Int64Counter) IsZero() bool { return c == 0 }
func (c Int64Counter) String() string { return fmt.Sprintf("%d", int64(c)) }

// Add returns c+other, or ErrOverflow if the true sum does not fit.
func (c Int64Counter) Add(other Counter) (Counter, error) {
	o, ok := other.(Int64Counter)
	if !ok {
		return nil, fmt.Errorf("count: Int64Counter.Add: mismatched counter type %T", other)
	}
	sum := c + o
	// Overflow check valid for same-signed operands; count DP values are
	// never negative, so this only ever needs to guard the positive case.
	if sum < c || sum < o {
		return nil, ErrOverflow
	}
	return sum, nil
}

// Float64Counter is the double-precision backend, used when exact counts
// are unnecessary or would overflow and truncation is acceptable.
type Float64Counter float64

func (Float64Counter) Zero() Counter   { return Float64Counter(0) }
func (Float64Counter) One() Counter    { return Float64Counter(1) }
func (c Float64Counter) IsZero() bool  { return c == 0 }
func (c Float64Counter) String() string { return fmt.Sprintf("%g", float64(c)) }

func (c Float64Counter) Add(other Counter) (Counter, error) {
	o, ok := other.(Float64Counter)
	if !ok {
		return nil, fmt.Errorf("count: Float64Counter.Add: mismatched counter type %T", other)
	}
	return c + o, nil
}

// BigIntCounter is the arbitrary-precision backend, backed by the
// standard library's math/big (no pack dependency displaces it: no
// example repo in the retrieved corpus imports a
// third-party bignum library, and spec.md §9 requires exact results for
// counts that legitimately exceed 64 bits).
type BigIntCounter struct{ V *big.Int }

func NewBigIntCounter(v int64) BigIntCounter { return BigIntCounter{V: big.NewInt(v)} }

func (BigIntCounter) Zero() Counter  { return NewBigIntCounter(0) }
func (BigIntCounter) One() Counter   { return NewBigIntCounter(1) }
func (c BigIntCounter) IsZero() bool { return c.V.Sign() == 0 }
func (c BigIntCounter) String() string { return c.V.String() }

func (c BigIntCounter) Add(other Counter) (Counter, error) {
	o, ok := other.(BigIntCounter)
	if !ok {
		return nil, fmt.Errorf("count: BigIntCounter.Add: mismatched counter type %T", other)
	}
	return BigIntCounter{V: new(big.Int).Add(c.V, o.V)}, nil
}
