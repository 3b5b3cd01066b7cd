// Package graph is the C1 component of the frontier-based ZDD toolkit: it
// loads an edge-ordered graph (or hypergraph), exposes adjacency queries
// over that fixed ordering, and prepares a few derived artifacts the rest
// of the pipeline needs before construction starts.
//
// The edge ordering read from the input IS the ZDD variable ordering used
// by the construction engine (construct.Construct); nothing downstream ever
// reorders edges on its own. Three input shapes are supported, matching
// spec.md §6: an edge list, an adjacency list, and — for hypergraphs — an
// incidence matrix. Vertex- and edge-weight sidecar files apply in the
// order they are read.
//
// Graph is intentionally a read-mostly value once loaded: the frontier
// manager (frontier.Manager) and every family state machine treat it as
// immutable for the duration of a Construct call.
package graph
