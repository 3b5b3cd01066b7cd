package zdd

// Reduce applies the standard ZDD reduction rules level-by-level from the
// deepest level to the root (spec.md §4.6): any node whose Hi arc leads to
// the reject terminal is collapsed onto its Lo arc, and any two nodes at
// the same level sharing (Lo, Hi) are merged. The result's LevelFirst
// layout is rebuilt from scratch; node ids are not preserved across a
// call to Reduce.
func Reduce(z *ZDD) *ZDD {
	n := len(z.Nodes)
	canon := make([]NodeID, n) // old id -> canonical old id (terminal or a kept old id)
	canon[Zero], canon[One] = Zero, One

	type key struct{ lo, hi NodeID }
	repsAtLevel := make([][]NodeID, z.NumVars+1)

	for level := z.NumVars; level >= 0; level-- {
		start, end := z.LevelRange(level)
		dedup := make(map[key]NodeID, end-start)
		for i := start; i < end; i++ {
			old := NodeID(i)
			rlo := canon[z.Nodes[old].Lo]
			rhi := canon[z.Nodes[old].Hi]
			if rhi == Zero {
				canon[old] = rlo
				continue
			}
			k := key{rlo, rhi}
			if existing, ok := dedup[k]; ok {
				canon[old] = existing
				continue
			}
			canon[old] = old
			dedup[k] = old
			repsAtLevel[level] = append(repsAtLevel[level], old)
		}
	}

	finalRemap := make(map[NodeID]NodeID, n)
	finalRemap[Zero], finalRemap[One] = Zero, One
	newLevelFirst := make([]int, z.NumVars+2)
	nextID := NodeID(2)
	for level := 0; level <= z.NumVars; level++ {
		newLevelFirst[level] = int(nextID)
		for _, old := range repsAtLevel[level] {
			finalRemap[old] = nextID
			nextID++
		}
	}
	newLevelFirst[z.NumVars+1] = int(nextID)

	newNodes := make([]Node, nextID)
	for level := 0; level <= z.NumVars; level++ {
		for _, old := range repsAtLevel[level] {
			nid := finalRemap[old]
			lo := finalRemap[canon[z.Nodes[old].Lo]]
			hi := finalRemap[canon[z.Nodes[old].Hi]]
			newNodes[nid] = Node{Lo: lo, Hi: hi}
		}
	}

	rootCanon := canon[z.Root]
	newRoot := finalRemap[rootCanon]

	return &ZDD{
		Root:       newRoot,
		NumVars:    z.NumVars,
		Nodes:      newNodes,
		LevelFirst: newLevelFirst,
	}
}
