// Package construct implements C7, the outer two-level construction loop
// described in spec.md §4.5: it drives frontier.Manager edge by edge,
// threads a family.Family's mate through each Lo/Hi transition, hash-cons
// equivalent children via hashcons.Table, and records the resulting arcs
// into a zdd.Builder.
//
// Construct owns exactly one instance each of frontier.Manager,
// mate.Arena, hashcons.Table, and zdd.Builder for the lifetime of a
// single call; none of these are safe to share across concurrent calls,
// matching spec.md §5's single-threaded execution model.
package construct
