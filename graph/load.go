package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// splitFields tokenizes a line on whitespace, ignoring blank lines and
// lines consisting only of whitespace.
func splitFields(line string) []string {
	return strings.Fields(line)
}

// nonEmptyLines scans r and yields trimmed, non-blank lines.
func nonEmptyLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: scan input: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	return lines, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine, s, err)
	}
	return v, nil
}

func parseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine, s, err)
	}
	return v, nil
}

// LoadEdgeList reads spec.md §6's edge-list format: the first non-empty
// line is either a bare vertex count n, or the first edge itself (in which
// case n is inferred as the maximum vertex id seen). Every subsequent line
// is "src dest [weight]", 1-based, weight defaulting to 0.
func LoadEdgeList(r io.Reader) (*Graph, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, err
	}

	start := 0
	n := 0
	firstFields := splitFields(lines[0])
	if len(firstFields) == 1 {
		if v, err := parseInt(firstFields[0]); err == nil {
			n = v
			start = 1
		}
	}

	var edges []Edge
	maxVertex := 0
	for _, line := range lines[start:] {
		fields := splitFields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		src, err := parseInt(fields[0])
		if err != nil {
			return nil, err
		}
		dest, err := parseInt(fields[1])
		if err != nil {
			return nil, err
		}
		var w int64
		if len(fields) == 3 {
			w, err = parseInt64(fields[2])
			if err != nil {
				return nil, err
			}
		}
		if src > maxVertex {
			maxVertex = src
		}
		if dest > maxVertex {
			maxVertex = dest
		}
		edges = append(edges, Edge{Src: src, Dest: dest, Weight: w})
	}
	if n == 0 {
		n = maxVertex
	}
	return New(n, edges)
}

// LoadAdjacencyList reads spec.md §6's adjacency-list format: line i
// (1-based) lists the neighbours of vertex i. In undirected mode,
// duplicate {u,v} pairs produced by both endpoints' lines are collapsed
// to a single edge; in directed mode every occurrence is kept. Self-loops
// are dropped, matching spec.md §6.
func LoadAdjacencyList(r io.Reader, directed bool) (*Graph, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	n := len(lines)

	type key struct{ a, b int }
	seen := make(map[key]bool)
	var edges []Edge
	for i, line := range lines {
		v := i + 1
		for _, f := range splitFields(line) {
			u, err := parseInt(f)
			if err != nil {
				return nil, err
			}
			if u == v {
				continue // self-loops dropped
			}
			if u < 1 || u > n {
				return nil, ErrVertexOutOfRange
			}
			if directed {
				k := key{v, u}
				if seen[k] {
					continue
				}
				seen[k] = true
				edges = append(edges, Edge{Src: v, Dest: u})
				continue
			}
			a, b := v, u
			if a > b {
				a, b = b, a
			}
			k := key{a, b}
			if seen[k] {
				continue
			}
			seen[k] = true
			edges = append(edges, Edge{Src: a, Dest: b})
		}
	}
	return New(n, edges)
}

// LoadWeights applies an edge-weight sidecar file (whitespace-separated
// integers, applied in order) to a copy of g's edges, returning a new
// *Graph; g itself is not modified. Returns
// ErrWeightSidecarTruncated if fewer values are present than edges — a
// deliberate deviation from the original's silent 1-fallback, per
// SPEC_FULL.md §6.
func LoadWeights(g *Graph, r io.Reader) (*Graph, error) {
	values, err := scanInts(r)
	if err != nil {
		return nil, err
	}
	if len(values) < len(g.edges) {
		return nil, ErrWeightSidecarTruncated
	}
	edges := append([]Edge(nil), g.edges...)
	for i := range edges {
		edges[i].Weight = values[i]
	}
	out := &Graph{n: g.n, edges: edges, vertexWeight: g.vertexWeight}
	out.buildAdjacency()
	out.buildLastOccurrence()
	return out, nil
}

// LoadVertexWeights parses a whitespace-separated sidecar of n integers
// and returns them as a 1-indexed slice (index 0 unused), ready to pass
// to WithVertexWeights. Returns ErrWeightSidecarTruncated if fewer than n
// values are present.
func LoadVertexWeights(n int, r io.Reader) ([]int64, error) {
	values, err := scanInts(r)
	if err != nil {
		return nil, err
	}
	if len(values) < n {
		return nil, ErrWeightSidecarTruncated
	}
	w := make([]int64, n+1)
	copy(w[1:], values[:n])
	return w, nil
}

func scanInts(r io.Reader) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []int64
	for sc.Scan() {
		v, err := parseInt64(sc.Text())
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: scan weights: %w", err)
	}
	return out, nil
}

// LoadRoots reads a whitespace-separated list of 1-based vertex ids used
// by the rooted-forest family (spec.md §4.4, "rooted variants").
func LoadRoots(r io.Reader) ([]int, error) {
	values, err := scanInts(r)
	if err != nil {
		return nil, err
	}
	roots := make([]int, len(values))
	for i, v := range values {
		roots[i] = int(v)
	}
	return roots, nil
}

// TerminalPair maps a vertex to the terminal-number it belongs to, for the
// multi-terminal "number link" family (spec.md §4.4).
type TerminalPair struct {
	Vertex   int
	Terminal int
}

// LoadTerminalPairs reads lines of "vertex terminal_number" for the
// path-matching / number-link family's --terminal file option.
func LoadTerminalPairs(r io.Reader) ([]TerminalPair, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	out := make([]TerminalPair, 0, len(lines))
	for _, line := range lines {
		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		v, err := parseInt(fields[0])
		if err != nil {
			return nil, err
		}
		t, err := parseInt(fields[1])
		if err != nil {
			return nil, err
		}
		out = append(out, TerminalPair{Vertex: v, Terminal: t})
	}
	return out, nil
}
