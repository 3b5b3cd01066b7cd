package graph

import (
	"fmt"
	"math/rand"

	"github.com/frontiergo/frontier/internal/xerrors"
)

// RandomSparse samples an Erdős–Rényi-style graph over n vertices,
// including each unordered pair {i,j} (i<j) independently with
// probability p, in stable i-ascending, j-ascending trial order so a
// fixed seed always reproduces the same edge set. Used to generate
// property-test fixtures for the construction engine (spec §8's
// "quantified invariants... hold across randomly generated graphs").
func RandomSparse(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("graph: RandomSparse: n=%d < 1: %w", n, ErrVertexOutOfRange)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("graph: RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("graph: RandomSparse: rng required for 0<p<1: %w", ErrNeedRandSource)
	}

	var edges []Edge
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			include := p == 1
			if rng != nil {
				include = rng.Float64() <= p
			}
			if include {
				edges = append(edges, Edge{Src: i, Dest: j})
			}
		}
	}
	if len(edges) == 0 {
		edges = []Edge{{Src: 1, Dest: min2(2, n)}}
	}
	return New(n, edges)
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RandomRegular builds an n-vertex, d-regular simple graph via repeated
// stub matching with rejection, retrying up to maxAttempts times before
// giving up (mirrors the reference generator's stub-matching-with-retry
// strategy). n*d must be even, since every stub pairs with another.
func RandomRegular(n, d int, rng *rand.Rand, maxAttempts int) (*Graph, error) {
	if n < 1 || d < 0 || d >= n {
		return nil, fmt.Errorf("graph: RandomRegular: n=%d d=%d out of domain: %w", n, d, ErrVertexOutOfRange)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("graph: RandomRegular: n*d must be even: %w", ErrVertexOutOfRange)
	}
	if rng == nil {
		return nil, fmt.Errorf("graph: RandomRegular: rng required: %w", ErrNeedRandSource)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		edges, ok := tryStubMatching(n, d, rng)
		if ok {
			return New(n, edges)
		}
	}
	return nil, fmt.Errorf("graph: RandomRegular: exhausted %d attempts: %w", maxAttempts, xerrors.Exhausted)
}

func tryStubMatching(n, d int, rng *rand.Rand) ([]Edge, bool) {
	stubs := make([]int, 0, n*d)
	for v := 1; v <= n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	seen := map[[2]int]bool{}
	var edges []Edge
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			return nil, false
		}
		seen[key] = true
		edges = append(edges, Edge{Src: u, Dest: v})
	}
	return edges, true
}
