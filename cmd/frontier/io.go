package main

import (
	"io"

	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/graph"
)

// loadSource reads stdin as either a graph or hypergraph edge list,
// depending on --hypergraph, returning the common view the construction
// engine and output package need.
func loadSource(r io.Reader) (frontier.EdgeSource, error) {
	if flags.hypergraph {
		return graph.LoadHypergraphEdgeList(r)
	}
	return graph.LoadEdgeList(r)
}
