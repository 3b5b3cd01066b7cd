package main

import (
	"fmt"
	"os"

	"github.com/frontiergo/frontier/family"
	"github.com/frontiergo/frontier/frontier"
	"github.com/frontiergo/frontier/graph"
	"github.com/frontiergo/frontier/mate"
)

// buildFamily dispatches --type to the matching family.Family
// implementation, pulling any extra per-family options (--start/--end,
// --terminal, --froots/--root, --elimit, --comp, --params) out of flags.
func buildFamily(src frontier.EdgeSource) (family.Family, error) {
	numEdges := src.EdgeCount()

	switch flags.family {
	case "combination":
		return &combinationFamily{lastEdge: numEdges - 1}, nil
	case "sforest":
		return family.NewComponent(family.SpanningForest, numEdges), nil
	case "stree":
		return family.NewComponent(family.SpanningTree, numEdges), nil
	case "setpt":
		c := family.NewComponent(family.Partition, numEdges)
		if flags.comp != "" {
			rng, err := family.ParseIntRange(flags.comp)
			if err != nil {
				return nil, err
			}
			c.Range = rng
		}
		return c, nil
	case "rforest":
		c := family.NewComponent(family.RootedForest, numEdges)
		roots, err := loadRoots()
		if err != nil {
			return nil, err
		}
		c.Roots = roots
		return c, nil
	case "rcut":
		c := family.NewComponent(family.RootedCut, numEdges)
		roots, err := loadRoots()
		if err != nil {
			return nil, err
		}
		c.Roots = roots
		if flags.comp != "" {
			rng, err := family.ParseIntRange(flags.comp)
			if err != nil {
				return nil, err
			}
			c.Range = rng
		}
		return c, nil
	case "kcut":
		c := family.NewComponent(family.KCut, numEdges)
		if flags.comp != "" {
			rng, err := family.ParseIntRange(flags.comp)
			if err != nil {
				return nil, err
			}
			c.Range = rng
		}
		return c, nil
	case "stpath":
		if flags.start == 0 || flags.end == 0 {
			return nil, fmt.Errorf("frontier: stpath requires -s and -e")
		}
		f := &family.STPath{S: flags.start, T: flags.end, Hamilton: flags.hamilton, Cycle: flags.cycle}
		if flags.elimit != "" {
			rng, err := family.ParseIntRange(flags.elimit)
			if err != nil {
				return nil, err
			}
			f.ELimit = &rng
		}
		return f, nil
	case "pathmatching", "mtpath":
		if flags.terminal == "" {
			return nil, fmt.Errorf("frontier: %s requires --terminal file", flags.family)
		}
		terminalOf, err := loadTerminalOf(flags.terminal)
		if err != nil {
			return nil, err
		}
		return family.NewPathMatching(terminalOf, numEdges), nil
	case "setc":
		return family.NewHyperCover(family.SetCover, numEdges), nil
	case "setpk":
		return family.NewHyperCover(family.SetPacking, numEdges), nil
	case "hforest":
		return family.NewHyperComponent(numEdges), nil
	case "hreli":
		f := family.NewHyperComponent(numEdges)
		f.Kind = family.HyperConnected
		return f, nil
	case "general":
		return buildGeneralFamily(numEdges)
	default:
		return nil, fmt.Errorf("frontier: unknown -t %q", flags.family)
	}
}

func buildGeneralFamily(numEdges int) (family.Family, error) {
	if flags.params == "" {
		g := family.NewGeneral(numEdges)
		return g, nil
	}
	f, err := os.Open(flags.params)
	if err != nil {
		return nil, fmt.Errorf("frontier: open params file: %w", err)
	}
	defer f.Close()
	g, err := family.ParseGeneralParams(f)
	if err != nil {
		return nil, err
	}
	g.SetEdgeCount(numEdges)
	return g, nil
}

func loadRoots() (map[int]bool, error) {
	roots := map[int]bool{}
	for _, r := range flags.roots {
		roots[r] = true
	}
	if flags.rootFile != "" {
		f, err := os.Open(flags.rootFile)
		if err != nil {
			return nil, fmt.Errorf("frontier: open root file: %w", err)
		}
		defer f.Close()
		extra, err := graph.LoadRoots(f)
		if err != nil {
			return nil, err
		}
		for _, r := range extra {
			roots[r] = true
		}
	}
	return roots, nil
}

func loadTerminalOf(path string) (map[int]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("frontier: open terminal file: %w", err)
	}
	defer f.Close()
	pairs, err := graph.LoadTerminalPairs(f)
	if err != nil {
		return nil, err
	}
	terminalOf := make(map[int]int, len(pairs))
	for _, p := range pairs {
		terminalOf[p.Vertex] = p.Terminal
	}
	return terminalOf, nil
}

// combinationFamily implements spec.md's plain "combination" family: every
// subset of edges is accepted, with no per-vertex constraint at all. It
// exists mainly as the trivial baseline the other families specialize.
type combinationFamily struct {
	lastEdge int
}

var _ family.Family = (*combinationFamily)(nil)

func (*combinationFamily) NewVertexState(v int) int64 { return 0 }

func (*combinationFamily) CheckTerminalPre(m *mate.Mate, child family.ChildKind, edge int, mgr *frontier.Manager) family.Verdict {
	return family.Continue
}

func (*combinationFamily) Update(m *mate.Mate, child family.ChildKind, edge int, mgr *frontier.Manager) {
}

func (c *combinationFamily) CheckTerminalPost(m *mate.Mate, edge int, mgr *frontier.Manager) family.Verdict {
	if edge == c.lastEdge {
		return family.Accept
	}
	return family.Continue
}

func (*combinationFamily) Canonicalize(m *mate.Mate) {}
