// Package zdd implements C8: the PseudoZDD node container, its reduction
// pass, and import/export to the text, Graphviz, and Sapporo-BDD formats
// spec.md §4.6/§6 describe.
//
// A ZDD stores every non-terminal node in one flat array (indices 0 and 1
// are the reject/accept terminals), grouped contiguously by level with a
// LevelFirst offset table giving each level's half-open range. Level i
// holds the nodes reachable after exactly i edges of the construction
// engine's fixed edge ordering have been decided; level 0 is the root's
// level and level NumVars+1 is the fixed, always-empty terminal boundary.
package zdd
