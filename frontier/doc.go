// Package frontier is the C2 component: given the current edge index, it
// computes the sets of vertices entering, leaving, present-before, and
// present-after the frontier, per spec.md §4.1.
//
// A Manager is stepped once per edge in increasing index order; its Next
// slice is the single piece of mutable state every other component reads
// between steps (the mate arena packs it, the hash table hashes it, the
// family state machines index into it).
package frontier
