package count

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/ALTree/bigfloat"
	"github.com/frontiergo/frontier/zdd"
)

// bigPrec is the working precision (in bits) for the log-domain ratio
// computation big counters use; ample headroom over float64's 53 bits.
const bigPrec = 256

// Count runs the bottom-up DP count[node] = count[lo] + count[hi] over a
// reduced ZDD (spec.md §4.7), with count[0] = zero and count[1] = one in
// the caller-chosen numeric type.
func Count(z *zdd.ZDD, zero Counter) ([]Counter, error) {
	table := make([]Counter, len(z.Nodes))
	table[zdd.Zero] = zero.Zero()
	table[zdd.One] = zero.One()
	for level := z.NumVars; level >= 0; level-- {
		start, end := z.LevelRange(level)
		for i := start; i < end; i++ {
			n := z.Nodes[i]
			sum, err := table[n.Lo].Add(table[n.Hi])
			if err != nil {
				return nil, fmt.Errorf("count: node %d: %w", i, err)
			}
			table[i] = sum
		}
	}
	return table, nil
}

// Total returns the count at z's root, i.e. the number of accepting
// paths through the whole diagram.
func Total(z *zdd.ZDD, table []Counter, zero Counter) Counter {
	if z.Root.IsTerminal() {
		if z.Root == zdd.One {
			return zero.One()
		}
		return zero.Zero()
	}
	return table[z.Root]
}

// Sample descends from z's root to a terminal, at each internal node
// choosing Hi with probability count[hi]/(count[lo]+count[hi]) (spec.md
// §4.7). It returns the set of edge indices chosen (the Hi arcs taken).
// BigIntCounter tables take the high-precision ratio path; Int64Counter and
// Float64Counter tables use a direct floating-point ratio.
func Sample(z *zdd.ZDD, table []Counter, rng *rand.Rand) []int {
	var chosen []int
	cur := z.Root
	for !cur.IsTerminal() {
		level := z.Level(cur) // zero-suppression can skip levels, so re-derive each step rather than incrementing
		n := z.Nodes[cur]
		p := hiProbability(table[n.Lo], table[n.Hi])
		if rng.Float64() < p {
			chosen = append(chosen, level)
			cur = n.Hi
		} else {
			cur = n.Lo
		}
	}
	return chosen
}

// hiProbability computes count[hi] / (count[lo] + count[hi]). For
// BigIntCounter it goes through a log-domain divide (spec.md §4.7: "the
// ratio is taken through a high-precision divide where available") using
// bigfloat.Log/Exp, which keeps full precision even when lo and hi have
// wildly different magnitudes; other counter types fall back to a direct
// float64 division.
func hiProbability(lo, hi Counter) float64 {
	bigLo, okLo := lo.(BigIntCounter)
	bigHi, okHi := hi.(BigIntCounter)
	if okLo && okHi {
		return bigRatio(bigLo.V, bigHi.V)
	}
	loF, hiF := toFloat64(lo), toFloat64(hi)
	if loF+hiF == 0 {
		return 0
	}
	return hiF / (loF + hiF)
}

func bigRatio(lo, hi *big.Int) float64 {
	if hi.Sign() == 0 {
		return 0
	}
	if lo.Sign() == 0 {
		return 1
	}
	loF := new(big.Float).SetPrec(bigPrec).SetInt(lo)
	hiF := new(big.Float).SetPrec(bigPrec).SetInt(hi)
	sum := new(big.Float).SetPrec(bigPrec).Add(loF, hiF)

	logHi := bigfloat.Log(hiF)
	logSum := bigfloat.Log(sum)
	diff := new(big.Float).SetPrec(bigPrec).Sub(logHi, logSum)
	ratio := bigfloat.Exp(diff)

	f, _ := ratio.Float64()
	return f
}

func toFloat64(c Counter) float64 {
	switch v := c.(type) {
	case Int64Counter:
		return float64(v)
	case Float64Counter:
		return float64(v)
	case BigIntCounter:
		f, _ := new(big.Float).SetInt(v.V).Float64()
		return f
	}
	return 0
}
