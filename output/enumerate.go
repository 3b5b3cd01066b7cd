package output

import "github.com/frontiergo/frontier/zdd"

// Enumerate walks every accepting path from z's root to the 1-terminal
// and returns, per solution, the set of edge indices selected (the Hi
// arcs taken along that path). limit caps the number of solutions
// returned; 0 means unlimited.
func Enumerate(z *zdd.ZDD, limit int) [][]int {
	var results [][]int
	var walk func(id zdd.NodeID, acc []int) bool // returns false once limit is hit
	walk = func(id zdd.NodeID, acc []int) bool {
		if limit > 0 && len(results) >= limit {
			return false
		}
		if id == zdd.Zero {
			return true
		}
		if id == zdd.One {
			results = append(results, append([]int(nil), acc...))
			return limit == 0 || len(results) < limit
		}
		level := z.Level(id)
		if !walk(z.Lo(id), acc) {
			return false
		}
		hiAcc := append(append([]int(nil), acc...), level)
		return walk(z.Hi(id), hiAcc)
	}
	walk(z.Root, nil)
	return results
}
