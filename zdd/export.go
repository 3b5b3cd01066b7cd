package zdd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Radix selects decimal or hexadecimal rendering for ExportText's node
// ids, matching spec.md §6's --hex flag.
type Radix int

const (
	Decimal Radix = iota
	Hex
)

func (r Radix) format(id NodeID) string {
	if r == Hex {
		return fmt.Sprintf("%x", int32(id))
	}
	return fmt.Sprintf("%d", int32(id))
}

// ExportText writes the line-oriented "#L / id:lo,hi" dump spec.md §6
// defines, one "#L" header per level followed by its nodes in ascending
// id order. Terminals 0 and 1 are implicit and never written.
func ExportText(w io.Writer, z *ZDD, radix Radix) error {
	bw := bufio.NewWriter(w)
	for level := 0; level <= z.NumVars; level++ {
		start, end := z.LevelRange(level)
		if start == end {
			continue
		}
		if _, err := fmt.Fprintf(bw, "#%d\n", level); err != nil {
			return err
		}
		for i := start; i < end; i++ {
			n := z.Nodes[i]
			if _, err := fmt.Fprintf(bw, "%s:%s,%s\n",
				radix.format(NodeID(i)), radix.format(n.Lo), radix.format(n.Hi)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ExportGraphviz writes a DOT digraph: solid edges for Hi arcs, dashed
// for Lo arcs, matching the conventional ZDD drawing style. If
// showTerminals is true both terminal nodes are drawn even when no live
// node reaches them (useful for degenerate single-path examples).
func ExportGraphviz(w io.Writer, z *ZDD, showTerminals bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph ZDD {")
	fmt.Fprintln(bw, `  rankdir=TB;`)
	if showTerminals {
		fmt.Fprintln(bw, `  0 [shape=box,label="0"];`)
		fmt.Fprintln(bw, `  1 [shape=box,label="1"];`)
	}
	for level := 0; level <= z.NumVars; level++ {
		start, end := z.LevelRange(level)
		for i := start; i < end; i++ {
			n := z.Nodes[i]
			fmt.Fprintf(bw, "  %d [label=%q];\n", i, fmt.Sprintf("%d@L%d", i, level))
			fmt.Fprintf(bw, "  %d -> %d [style=dashed];\n", i, n.Lo)
			fmt.Fprintf(bw, "  %d -> %d [style=solid];\n", i, n.Hi)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// ExportSBDD writes a format compatible with an external BDD toolkit that
// uses complemented-edge encoding along the Lo-only chain (spec.md §9,
// "Negative-edge output"). It computes, bottom-up, whether each node's
// canonical Lo-chain should be considered "negative" and flips the bit as
// it walks up, exactly the convention the reference implementation uses.
func ExportSBDD(w io.Writer, z *ZDD) error {
	neg := computeNegativeBits(z)
	bw := bufio.NewWriter(w)
	for level := 0; level <= z.NumVars; level++ {
		start, end := z.LevelRange(level)
		if start == end {
			continue
		}
		fmt.Fprintf(bw, "#%d\n", level)
		for i := start; i < end; i++ {
			n := z.Nodes[i]
			sign := ""
			if neg[i] {
				sign = "-"
			}
			fmt.Fprintf(bw, "%d:%s%d,%d\n", i, sign, n.Lo, n.Hi)
		}
	}
	return bw.Flush()
}

// computeNegativeBits walks the node array bottom-up (deepest level
// first); a node is "negative" when its Lo arc target is itself negative,
// propagating the complemented-edge bit toward the root along the
// Lo-only chain, per spec.md §9.
func computeNegativeBits(z *ZDD) []bool {
	neg := make([]bool, len(z.Nodes))
	for level := z.NumVars; level >= 0; level-- {
		start, end := z.LevelRange(level)
		for i := start; i < end; i++ {
			lo := z.Nodes[i].Lo
			neg[i] = !lo.IsTerminal() && neg[lo]
		}
	}
	return neg
}

// Import parses the ExportText format back into a ZDD. numEdges must be
// supplied since the text format omits empty trailing levels.
func Import(r io.Reader, numEdges int, radix Radix) (*ZDD, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	b := NewBuilder(numEdges)
	level := -1
	var maxID NodeID
	idToLevel := map[NodeID]int{}
	pending := map[NodeID][2]NodeID{}

	base := 10
	if radix == Hex {
		base = 16
	}
	parseID := func(s string) (NodeID, error) {
		var v int64
		_, err := fmt.Sscanf(s, fmtForBase(base), &v)
		if err != nil {
			return 0, fmt.Errorf("zdd: import: bad id %q: %w", s, err)
		}
		return NodeID(v), nil
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == '#' {
			var l int
			if _, err := fmt.Sscanf(line, "#%d", &l); err != nil {
				return nil, fmt.Errorf("zdd: import: bad level header %q: %w", line, err)
			}
			level = l
			continue
		}
		var idStr, rest string
		if _, err := fmt.Sscanf(line, "%s", &idStr); err != nil {
			return nil, fmt.Errorf("zdd: import: bad line %q", line)
		}
		parts := splitOnce(line, ':')
		if parts == nil {
			return nil, fmt.Errorf("zdd: import: bad line %q", line)
		}
		idStr, rest = parts[0], parts[1]
		id, err := parseID(idStr)
		if err != nil {
			return nil, err
		}
		loHi := splitOnce(rest, ',')
		if loHi == nil {
			return nil, fmt.Errorf("zdd: import: bad arcs %q", rest)
		}
		lo, err := parseID(loHi[0])
		if err != nil {
			return nil, err
		}
		hi, err := parseID(loHi[1])
		if err != nil {
			return nil, err
		}
		idToLevel[id] = level
		pending[id] = [2]NodeID{lo, hi}
		if id > maxID {
			maxID = id
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	ids := make([]NodeID, 0, len(pending))
	for id := range pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	allocated := map[NodeID]NodeID{Zero: Zero, One: One}
	curLevel := -1
	for _, id := range ids {
		l := idToLevel[id]
		for curLevel < l {
			curLevel++
			b.StartLevel(curLevel)
		}
		allocated[id] = b.AddNode()
	}
	for curLevel < numEdges+1 {
		curLevel++
		if curLevel <= numEdges {
			b.StartLevel(curLevel)
		}
	}
	for _, id := range ids {
		arcs := pending[id]
		b.SetArc(allocated[id], allocated[arcs[0]], allocated[arcs[1]])
	}

	var root NodeID
	if len(ids) > 0 {
		root = allocated[ids[0]]
	}
	return b.Finish(numEdges, root), nil
}

func fmtForBase(base int) string {
	if base == 16 {
		return "%x"
	}
	return "%d"
}

func splitOnce(s string, sep byte) []string {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
