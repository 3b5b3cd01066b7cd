// Package family implements C6: one state machine per enumerable subgraph
// family. Every family exposes the same three pure operations the
// construction engine drives — CheckTerminalPre, Update, and
// CheckTerminalPost — over a working mate.Mate, plus a handful of
// lifecycle hooks (NewVertexState, Canonicalize) the engine calls around
// frontier transitions.
//
// A Family never touches the ZDD node array, the hash-cons table, or the
// mate arena directly; it only reads and mutates the mate it is handed.
// This keeps every family independently testable against a bare
// frontier.Manager and a hand-built mate.Mate, with no construction
// engine in the loop.
package family
