package zdd

// NodeID indexes into a ZDD's node array. 0 and 1 are the reserved reject
// and accept terminals.
type NodeID int32

// Terminal ids, fixed per spec.md §3.
const (
	Zero NodeID = 0
	One  NodeID = 1
)

// IsTerminal reports whether id names one of the two fixed terminals.
func (id NodeID) IsTerminal() bool { return id == Zero || id == One }

// Node is one non-terminal ZDD node: two arcs to other nodes or to a
// terminal.
type Node struct {
	Lo, Hi NodeID
}

// ZDD is the node-array container plus its level index, per spec.md §3.
// NumVars is the number of edges (and thus decision levels) it was built
// over.
type ZDD struct {
	Root       NodeID
	NumVars    int
	Nodes      []Node // Nodes[0], Nodes[1] are unused placeholders for the terminals
	LevelFirst []int  // length NumVars+2; LevelFirst[NumVars+1] == len(Nodes)
	Negative   []bool // optional, parallel to Nodes; nothing in this package sets it (ExportSBDD computes its bits locally)
}

// LevelRange returns the half-open [start, end) index range of nodes at
// level.
func (z *ZDD) LevelRange(level int) (start, end int) {
	return z.LevelFirst[level], z.LevelFirst[level+1]
}

// Level returns the decision level of non-terminal id, found by
// searching LevelFirst. Callers must not pass a terminal id.
func (z *ZDD) Level(id NodeID) int {
	for l := 0; l <= z.NumVars; l++ {
		start, end := z.LevelRange(l)
		if int(id) >= start && int(id) < end {
			return l
		}
	}
	return z.NumVars + 1
}

// Lo returns the Lo-arc target of id, or id itself if id is a terminal
// (terminals have no arcs; callers should check IsTerminal first).
func (z *ZDD) Lo(id NodeID) NodeID {
	if id.IsTerminal() {
		return id
	}
	return z.Nodes[id].Lo
}

// Hi mirrors Lo for the Hi arc.
func (z *ZDD) Hi(id NodeID) NodeID {
	if id.IsTerminal() {
		return id
	}
	return z.Nodes[id].Hi
}

// NumNodes returns the count of non-terminal nodes (excludes the two
// reserved terminal slots).
func (z *ZDD) NumNodes() int { return len(z.Nodes) - 2 }

// Builder assembles a ZDD level by level, as the construction engine
// discovers nodes. Levels must be started in increasing order.
type Builder struct {
	nodes      []Node
	levelFirst []int
	curLevel   int
}

// NewBuilder allocates a Builder for a fixed edge count numEdges.
func NewBuilder(numEdges int) *Builder {
	b := &Builder{
		nodes:      make([]Node, 2, 64), // reserve terminal slots 0,1
		levelFirst: make([]int, numEdges+2),
		curLevel:   -1,
	}
	return b
}

// StartLevel records the current node-array length as the start offset
// for level. Must be called once per level, in increasing order, even for
// empty levels.
func (b *Builder) StartLevel(level int) {
	if level <= b.curLevel {
		panic("zdd: StartLevel called out of order")
	}
	b.curLevel = level
	b.levelFirst[level] = len(b.nodes)
}

// AddNode reserves a fresh node id at the current level; its arcs are
// filled in later via SetArc.
func (b *Builder) AddNode() NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{})
	return id
}

// SetArc fills in node's Lo/Hi arcs.
func (b *Builder) SetArc(node NodeID, lo, hi NodeID) {
	b.nodes[node] = Node{Lo: lo, Hi: hi}
}

// Finish closes out the builder, marking the terminal boundary at
// numEdges+1, and returns the assembled ZDD with the given root.
func (b *Builder) Finish(numEdges int, root NodeID) *ZDD {
	b.levelFirst[numEdges+1] = len(b.nodes)
	return &ZDD{
		Root:       root,
		NumVars:    numEdges,
		Nodes:      b.nodes,
		LevelFirst: b.levelFirst,
	}
}
