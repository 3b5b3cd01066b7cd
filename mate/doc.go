// Package mate implements C3 (the mate abstraction) and C4 (the arena
// buffers backing it), per spec.md §3 and §4.2–§4.3.
//
// Mate is the per-node working state the construction engine unpacks from
// a parent, mutates via a family.Family transition, and packs into a
// fresh child. Arena is the append-only, block-allocated buffer (RBuffer)
// that owns the packed bytes; its tail only ever advances once every
// parent referencing a block has been processed, so indices stay valid
// exactly as long as the construction engine's level-synchronised loop
// guarantees.
package mate
