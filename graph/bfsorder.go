package graph

// BFSReorder returns a new Graph whose edges are the same multiset as g's,
// reordered by a breadth-first traversal from start. Frontier width is
// usually far smaller under a BFS order than under the input order, since
// consecutive edges then tend to share endpoints (spec.md §1, "BFS
// reordering"). Ties among same-depth neighbours are broken by increasing
// vertex id, keeping the reordering deterministic.
//
// Adapted from the breadth-first walker idiom used elsewhere in this
// codebase's family of traversal algorithms: a FIFO queue of frontier
// vertices, a visited set, and per-vertex edge emission on first visit.
func BFSReorder(g *Graph, start int) (*Graph, error) {
	if start < 1 || start > g.n {
		return nil, ErrStartVertexNotFound
	}

	visited := make([]bool, g.n+1)
	edgeUsed := make([]bool, len(g.edges))
	var order []Edge

	queue := []int{start}
	visited[start] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, ei := range g.IncidentEdges(v) {
			if edgeUsed[ei] {
				continue
			}
			edgeUsed[ei] = true
			order = append(order, g.edges[ei])
			e := g.edges[ei]
			other := e.Dest
			if other == v {
				other = e.Src
			}
			if !visited[other] {
				visited[other] = true
				queue = append(queue, other)
			}
		}
	}
	// Any vertex unreached from start (disconnected component) still needs
	// its incident edges emitted; walk remaining vertices in id order and
	// restart the BFS frontier from each.
	for v := 1; v <= g.n; v++ {
		if visited[v] {
			continue
		}
		visited[v] = true
		queue = append(queue, v)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, ei := range g.IncidentEdges(u) {
				if edgeUsed[ei] {
					continue
				}
				edgeUsed[ei] = true
				order = append(order, g.edges[ei])
				e := g.edges[ei]
				other := e.Dest
				if other == u {
					other = e.Src
				}
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
	}

	return New(g.n, order, optsFromGraph(g)...)
}

func optsFromGraph(g *Graph) []Option {
	if g.vertexWeight == nil {
		return nil
	}
	return []Option{WithVertexWeights(g.vertexWeight)}
}

// PadDummyTerminal appends a fresh dummy vertex n+1 connected to every
// vertex in terminals by a zero-weight edge, and returns the padded graph
// together with the dummy vertex's id. Used by "any-terminal" path
// variants (spec.md §1) that need a single synthetic s/t pair standing in
// for "any of these vertices".
func PadDummyTerminal(g *Graph, terminals ...int) (*Graph, int, error) {
	dummy := g.n + 1
	edges := append([]Edge(nil), g.edges...)
	for _, t := range terminals {
		edges = append(edges, Edge{Src: dummy, Dest: t})
	}
	padded, err := New(dummy, edges, optsFromGraph(g)...)
	if err != nil {
		return nil, 0, err
	}
	return padded, dummy, nil
}
