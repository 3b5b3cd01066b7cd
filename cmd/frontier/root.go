package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/frontiergo/frontier/construct"
	"github.com/frontiergo/frontier/count"
	"github.com/frontiergo/frontier/internal/telemetry"
	"github.com/frontiergo/frontier/output"
	"github.com/frontiergo/frontier/zdd"
)

var flags struct {
	family string

	hamilton bool
	cycle    bool
	start    int
	end      int
	terminal string
	elimit   string
	comp     string
	roots    []int
	rootFile string
	params   string

	reduce      bool
	noZDDText   bool
	enumFile    string
	sampleFile  string
	sampleN     int
	graphviz    string
	sbdd        string
	hex         bool
	noSolution  bool
	precision   string
	metricsAddr string
	hypergraph  bool
}

var rootCmd = &cobra.Command{
	Use:   "frontier",
	Short: "Build, reduce, count and sample frontier-based ZDDs over graphs and hypergraphs read from stdin",
	Long: `frontier builds a zero-suppressed binary decision diagram over the edges
of a graph or hypergraph read from stdin, using one of a fixed set of
subgraph-family state machines, then optionally reduces, counts, enumerates,
samples or exports it.`,
	RunE: runFrontier,
}

// Execute runs the root command and exits non-zero on any reported error,
// per spec.md §6's "Exit code is 0 on success, non-zero with a one-line
// error to stderr on input/format faults."
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "frontier: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.family, "type", "t", "", "family: combination, sforest, stree, stpath, pathmatching, mtpath, rforest, kcut, rcut, setpt, setc, setpk, hforest, hreli, general")
	f.BoolVar(&flags.hamilton, "hamilton", false, "require a Hamiltonian path/cycle (stpath family)")
	f.BoolVar(&flags.cycle, "cycle", false, "close a cycle instead of an open path (stpath family)")
	f.IntVarP(&flags.start, "start", "s", 0, "path start vertex (stpath family)")
	f.IntVarP(&flags.end, "end", "e", 0, "path end vertex (stpath family)")
	f.StringVar(&flags.terminal, "terminal", "", "terminal-pair file (pathmatching/mtpath family)")
	f.StringVar(&flags.elimit, "elimit", "", "edge-count bound, N or [a,b]")
	f.StringVar(&flags.comp, "comp", "", "component-count bound, N or [a,b] (partition family)")
	f.IntSliceVarP(&flags.roots, "froots", "f", nil, "inline root vertex list (rforest/rcut family)")
	f.StringVar(&flags.rootFile, "root", "", "root-vertex file (rforest/rcut family)")
	f.StringVar(&flags.params, "params", "", "general-family parameter file")
	f.BoolVarP(&flags.reduce, "reduce", "r", false, "reduce the constructed ZDD before output")
	f.BoolVarP(&flags.noZDDText, "no-zdd-text", "n", false, "suppress the default ZDD text dump")
	f.StringVar(&flags.enumFile, "enum", "", "write every accepting solution's edge set to file")
	f.StringVar(&flags.sampleFile, "sample", "", "write N uniformly sampled solutions to file")
	f.IntVar(&flags.sampleN, "sample-n", 0, "sample count, paired with --sample")
	f.StringVar(&flags.graphviz, "print-zdd-graphviz", "", "write a Graphviz rendering to file")
	f.StringVar(&flags.sbdd, "print-zdd-sbdd", "", "write an SBDD-style rendering (negative lo-chain) to file")
	f.BoolVar(&flags.hex, "hex", false, "use hexadecimal node ids in text/SBDD output")
	f.BoolVar(&flags.noSolution, "no-solution", false, "skip solution output, report only the count")
	f.StringVar(&flags.precision, "precision", "si", "counting precision: si (int64), sd (float64), sb (bignum), sm (... alias of sb)")
	f.StringVar(&flags.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while constructing")
	f.BoolVar(&flags.hypergraph, "hypergraph", false, "read stdin as a hypergraph edge list instead of a graph edge list")
}

func runFrontier(cmd *cobra.Command, args []string) error {
	src, err := loadSource(os.Stdin)
	if err != nil {
		return err
	}

	fam, err := buildFamily(src)
	if err != nil {
		return err
	}

	opts := []construct.Option{}
	var stopMetrics func()
	if flags.metricsAddr != "" {
		rec, reg := telemetry.NewRecorder()
		opts = append(opts, construct.WithLevelObserver(rec))
		server := &http.Server{Addr: flags.metricsAddr, Handler: telemetry.Handler(reg)}
		go server.ListenAndServe()
		stopMetrics = func() { server.Close() }
	}

	z := construct.Construct(src, fam, opts...)
	if stopMetrics != nil {
		stopMetrics()
	}
	if flags.reduce {
		z = zdd.Reduce(z)
	}

	if !flags.noZDDText {
		radix := zdd.Decimal
		if flags.hex {
			radix = zdd.Hex
		}
		if err := zdd.ExportText(os.Stdout, z, radix); err != nil {
			return err
		}
	}

	if flags.graphviz != "" {
		if err := writeToFile(flags.graphviz, func(w *os.File) error { return zdd.ExportGraphviz(w, z, true) }); err != nil {
			return err
		}
	}
	if flags.sbdd != "" {
		if err := writeToFile(flags.sbdd, func(w *os.File) error { return zdd.ExportSBDD(w, z) }); err != nil {
			return err
		}
	}

	if flags.noSolution {
		return reportCountOnly(z)
	}

	if flags.enumFile != "" {
		sols := output.Enumerate(z, 0)
		if err := writeToFile(flags.enumFile, func(w *os.File) error { return output.OverlayAll(w, src, sols) }); err != nil {
			return err
		}
	}

	if flags.sampleFile != "" {
		return runSample(z, src)
	}
	return nil
}

func reportCountOnly(z *zdd.ZDD) error {
	table, counter, err := countWith(z, flags.precision)
	if err != nil {
		return err
	}
	total := count.Total(z, table, counter)
	fmt.Println(total.String())
	return nil
}

func countWith(z *zdd.ZDD, precision string) ([]count.Counter, count.Counter, error) {
	var zero count.Counter
	switch precision {
	case "", "si":
		zero = count.Int64Counter(0)
	case "sd":
		zero = count.Float64Counter(0)
	case "sb", "sm":
		zero = count.NewBigIntCounter(0)
	default:
		return nil, nil, fmt.Errorf("frontier: unknown --precision %q", precision)
	}
	table, err := count.Count(z, zero)
	if err != nil {
		return nil, nil, err
	}
	return table, zero, nil
}

func runSample(z *zdd.ZDD, src output.EdgeSource) error {
	table, _, err := countWith(z, flags.precision)
	if err != nil {
		return err
	}
	n := flags.sampleN
	if n <= 0 {
		n = 1
	}
	rng := rand.New(rand.NewSource(1))
	sols := output.Sample(z, table, n, rng)
	return writeToFile(flags.sampleFile, func(w *os.File) error { return output.OverlayAll(w, src, sols) })
}

func writeToFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("frontier: create %q: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
