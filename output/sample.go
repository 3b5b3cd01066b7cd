package output

import (
	"math/rand"

	"github.com/frontiergo/frontier/count"
	"github.com/frontiergo/frontier/zdd"
)

// Sample draws n independent uniform-random solutions by repeatedly
// calling count.Sample against the given DP table (spec.md §6's
// `--sample file N`).
func Sample(z *zdd.ZDD, table []count.Counter, n int, rng *rand.Rand) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = count.Sample(z, table, rng)
	}
	return out
}
