package graph

// Edge is one line of variable-ordering input: an endpoint pair and an
// integer weight. Vertices are numbered 1..N.
type Edge struct {
	Src, Dest int
	Weight    int64
}

// Option configures a Graph at construction time. Constructors validate
// and panic on meaningless input: algorithms themselves must never panic,
// only option constructors may.
type Option func(*Graph)

// WithVertexWeights attaches a 1-indexed vertex weight vector (index 0 is
// unused). Panics if len(w) <= n, since every vertex must be addressable.
func WithVertexWeights(w []int64) Option {
	return func(g *Graph) {
		if len(w) <= g.n {
			panic("graph: WithVertexWeights: vector shorter than vertex count")
		}
		g.vertexWeight = w
	}
}

// Graph is the fixed, edge-ordered input to the frontier construction
// engine. Once built it never adds or removes edges; the ordering of
// Edges() is the ZDD variable ordering.
type Graph struct {
	n            int
	edges        []Edge
	vertexWeight []int64 // 1-indexed; nil if unweighted vertices

	// adjacency[v] lists, in edge order, the index of every edge incident
	// to vertex v. Built eagerly by New.
	adjacency [][]int

	// lastOccurrence[v] is the highest edge index (0-based) at which vertex
	// v appears, or -1 if v never appears. Used by frontier.Manager's
	// is-any-unprocessed-vertex-missing query (spec.md §4.1).
	lastOccurrence []int
}

// New builds a Graph over vertices 1..n from an already-ordered edge
// slice. Returns ErrVertexOutOfRange if any endpoint is outside [1,n], or
// ErrNoEdges if edges is empty.
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	for _, e := range edges {
		if e.Src < 1 || e.Src > n || e.Dest < 1 || e.Dest > n {
			return nil, ErrVertexOutOfRange
		}
	}
	g := &Graph{
		n:     n,
		edges: append([]Edge(nil), edges...),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.buildAdjacency()
	g.buildLastOccurrence()
	return g, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Edges returns the fixed edge ordering (the ZDD variable ordering).
// Callers must not mutate the returned slice.
func (g *Graph) Edges() []Edge { return g.edges }

// EdgeCount returns len(Edges()).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Endpoints returns the (up to two) vertices touched by edge i, satisfying
// frontier.EdgeSource.
func (g *Graph) Endpoints(i int) []int {
	e := g.edges[i]
	if e.Src == e.Dest {
		return []int{e.Src}
	}
	return []int{e.Src, e.Dest}
}

// EdgeWeight returns edge i's weight, satisfying frontier's optional
// weightedSource capability (used by the cut-style component families).
func (g *Graph) EdgeWeight(i int) int64 { return g.edges[i].Weight }

// VertexWeight returns the weight of vertex v, or 1 if the graph carries
// no vertex-weight vector.
func (g *Graph) VertexWeight(v int) int64 {
	if g.vertexWeight == nil {
		return 1
	}
	return g.vertexWeight[v]
}

func (g *Graph) buildAdjacency() {
	g.adjacency = make([][]int, g.n+1)
	for i, e := range g.edges {
		g.adjacency[e.Src] = append(g.adjacency[e.Src], i)
		if e.Src != e.Dest {
			g.adjacency[e.Dest] = append(g.adjacency[e.Dest], i)
		}
	}
}

// IncidentEdges returns, in ascending edge-index order, the indices of
// every edge incident to vertex v.
func (g *Graph) IncidentEdges(v int) []int { return g.adjacency[v] }

func (g *Graph) buildLastOccurrence() {
	g.lastOccurrence = make([]int, g.n+1)
	for i := range g.lastOccurrence {
		g.lastOccurrence[i] = -1
	}
	for i, e := range g.edges {
		g.lastOccurrence[e.Src] = i
		g.lastOccurrence[e.Dest] = i
	}
}

// LastOccurrence returns the highest edge index at which vertex v is an
// endpoint, or -1 if v never occurs (isolated vertex).
func (g *Graph) LastOccurrence(v int) int { return g.lastOccurrence[v] }
