package graph

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// HyperEdge is one hyperedge: the ordered set of incident vertices plus an
// integer weight, reported through Hypergraph.EdgeWeight.
type HyperEdge struct {
	Vertices []int
	Weight   int64
	incident *bitset.BitSet // lazily built, vertex v set iff v is incident
}

// Incident returns a bitset with bit v set for every incident vertex
// (1-indexed; bit 0 is always clear). Built once and cached.
func (h *HyperEdge) Incident(n int) *bitset.BitSet {
	if h.incident == nil {
		b := bitset.New(uint(n + 1))
		for _, v := range h.Vertices {
			b.Set(uint(v))
		}
		h.incident = b
	}
	return h.incident
}

// Hypergraph is the hyperedge-ordered analogue of Graph, used by the
// set-partition/cover/packing and hyper-spanning-forest/reliability
// families (spec.md §4.4 "Hypergraph families").
type Hypergraph struct {
	n     int
	edges []HyperEdge

	adjacency [][]int // vertex -> hyperedge indices touching it
	lastOcc   []int
}

// N returns the vertex count.
func (h *Hypergraph) N() int { return h.n }

// Edges returns the hyperedge ordering (also the ZDD variable ordering).
func (h *Hypergraph) Edges() []HyperEdge { return h.edges }

// EdgeCount returns len(Edges()).
func (h *Hypergraph) EdgeCount() int { return len(h.edges) }

// Endpoints returns the incident vertex set of hyperedge i, satisfying
// frontier.EdgeSource.
func (h *Hypergraph) Endpoints(i int) []int { return h.edges[i].Vertices }

// IncidentEdges returns, in ascending order, the hyperedge indices
// touching vertex v.
func (h *Hypergraph) IncidentEdges(v int) []int { return h.adjacency[v] }

// EdgeWeight returns hyperedge i's weight, satisfying frontier's optional
// weightedSource capability.
func (h *Hypergraph) EdgeWeight(i int) int64 { return h.edges[i].Weight }

// LastOccurrence mirrors Graph.LastOccurrence for hyperedges.
func (h *Hypergraph) LastOccurrence(v int) int { return h.lastOcc[v] }

func newHypergraph(n int, edges []HyperEdge) (*Hypergraph, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	for _, e := range edges {
		for _, v := range e.Vertices {
			if v < 1 || v > n {
				return nil, ErrVertexOutOfRange
			}
		}
	}
	h := &Hypergraph{n: n, edges: edges}
	h.adjacency = make([][]int, n+1)
	for i, e := range edges {
		seen := map[int]bool{}
		for _, v := range e.Vertices {
			if seen[v] {
				continue
			}
			seen[v] = true
			h.adjacency[v] = append(h.adjacency[v], i)
		}
	}
	h.lastOcc = make([]int, n+1)
	for i := range h.lastOcc {
		h.lastOcc[i] = -1
	}
	for i, e := range edges {
		for _, v := range e.Vertices {
			h.lastOcc[v] = i
		}
	}
	return h, nil
}

// LoadHypergraphEdgeList reads spec.md §6's hypergraph edge-list format:
// a leading vertex count n, then one line per hyperedge giving the
// integer list of incident vertices.
func LoadHypergraphEdgeList(r io.Reader) (*Hypergraph, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	n, err := parseInt(splitFields(lines[0])[0])
	if err != nil {
		return nil, err
	}
	edges := make([]HyperEdge, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(line)
		vs := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := parseInt(f)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		edges = append(edges, HyperEdge{Vertices: vs})
	}
	return newHypergraph(n, edges)
}

// LoadIncidenceMatrix reads spec.md §6's incidence-matrix format: the
// first line is "numEdges numVertices", each subsequent row has exactly
// numVertices columns of 0/1 indicating incidence of that hyperedge with
// each vertex.
func LoadIncidenceMatrix(r io.Reader) (*Hypergraph, error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	header := splitFields(lines[0])
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: incidence header %q", ErrMalformedLine, lines[0])
	}
	numEdges, err := parseInt(header[0])
	if err != nil {
		return nil, err
	}
	n, err := parseInt(header[1])
	if err != nil {
		return nil, err
	}
	if len(lines)-1 != numEdges {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedLine, numEdges, len(lines)-1)
	}
	edges := make([]HyperEdge, 0, numEdges)
	for _, line := range lines[1:] {
		fields := splitFields(line)
		if len(fields) != n {
			return nil, ErrIncidenceDimMismatch
		}
		var vs []int
		for col, f := range fields {
			bit, err := parseInt(f)
			if err != nil {
				return nil, err
			}
			if bit != 0 {
				vs = append(vs, col+1)
			}
		}
		edges = append(edges, HyperEdge{Vertices: vs})
	}
	return newHypergraph(n, edges)
}
