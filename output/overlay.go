package output

import (
	"fmt"
	"io"
	"sort"
)

// EdgeSource is the subset of graph.Graph (and graph.Hypergraph) that
// Overlay needs to render a solution back onto its input.
type EdgeSource interface {
	EdgeCount() int
	Endpoints(edgeIndex int) []int
}

// Overlay writes a human-readable rendering of src with the edges in
// chosen marked as selected, one line per edge, in input order (spec.md
// §6's default output format). chosen need not be sorted.
func Overlay(w io.Writer, src EdgeSource, chosen []int) error {
	mark := make(map[int]bool, len(chosen))
	for _, e := range chosen {
		mark[e] = true
	}
	for e := 0; e < src.EdgeCount(); e++ {
		marker := "  "
		if mark[e] {
			marker = "* "
		}
		if _, err := fmt.Fprintf(w, "%s%d: %v\n", marker, e, src.Endpoints(e)); err != nil {
			return err
		}
	}
	return nil
}

// OverlayAll renders every solution in solutions, separated by a blank
// line, each preceded by its own edge count.
func OverlayAll(w io.Writer, src EdgeSource, solutions [][]int) error {
	for i, sol := range solutions {
		sorted := append([]int(nil), sol...)
		sort.Ints(sorted)
		if _, err := fmt.Fprintf(w, "solution %d (%d edges):\n", i, len(sorted)); err != nil {
			return err
		}
		if err := Overlay(w, src, sorted); err != nil {
			return err
		}
		if i < len(solutions)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
