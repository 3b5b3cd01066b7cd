// Package frontier (module github.com/frontiergo/frontier) is a
// frontier-based construction library for zero-suppressed binary decision
// diagrams (ZDDs) over graphs and hypergraphs.
//
// What is frontier?
//
//	A library that builds a ZDD representing every subset of a graph's
//	edges (or a hypergraph's hyperedges) satisfying a structural
//	property — spanning forest, spanning tree, s-t path, set partition,
//	and the other families listed under family/ below — by sweeping the edge order once and
//	tracking only the "mate" state of vertices currently on the
//	frontier, never materializing the exponential solution set itself.
//
// Under the hood:
//
//	graph/       — Graph and Hypergraph models, edge-list/adjacency-list/
//	               incidence-matrix loaders, BFS reordering
//	frontier/    — frontier manager (which vertices enter/leave scope)
//	mate/        — per-vertex mate state and its arena allocator
//	hashcons/    — level-scoped hash-consing table for node dedup
//	family/      — the family state machines (spanning forest,
//	               spanning tree, partition, rooted forest, k-cut,
//	               s-t path, path/matching, general predicate, hypergraph
//	               cover/component variants)
//	construct/   — the construction engine driving the level-by-level sweep
//	zdd/         — the reduced ZDD container, reduction, export/import,
//	               compressed streaming
//	count/       — bottom-up solution counting and uniform sampling
//	subsetting/  — optional post-hoc subsetting-DD walker
//	output/      — enumeration, sampling driver, edge-overlay printing
//	cmd/frontier/ — CLI front-end (cobra) over all of the above
//
// See cmd/frontier for the command-line interface and DESIGN.md for how
// each package maps onto its construction-engine role.
package frontier
