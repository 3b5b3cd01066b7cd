// Package hashcons implements C5: a level-scoped, open-addressed hash
// table used to identify equivalent child mate states during a single
// level of construction (spec.md §4.5's hashtable.get_or_null /
// hashtable.insert / hashtable.flush).
//
// A Table is flushed between levels (Flush drops every entry and shrinks
// back to the initial bucket count) and
// doubles its bucket count whenever occupancy crosses 50%, rehashing
// every live entry at the current level, per spec.md §4.5.
package hashcons
