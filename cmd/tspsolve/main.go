// Command tspsolve is the CLI surface: a single-run mode that solves one
// instance with one algorithm, and a measuring mode that drives the
// cache-warm-then-record benchmark harness over one or more algorithms
// and writes a CSV report.
//
// No retrieved example repo imports a CLI-flag library (cobra/pflag/
// kingpin); this is stdlib flag plus a thin manual check afterwards, since
// flag has no built-in notion of "exactly one of these booleans."
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/tspsolve/config"
	"github.com/katalvlaran/tspsolve/instance"
	"github.com/katalvlaran/tspsolve/measure"
	"github.com/katalvlaran/tspsolve/tsp"
)

// ArgErrKind discriminates the ways command-line arguments can be malformed.
type ArgErrKind int

const (
	ArgErrNoArg ArgErrKind = iota
	ArgErrMultipleArg
	ArgErrBadArg
)

// ArgError is the command-line argument error shape.
type ArgError struct{ Kind ArgErrKind }

func (e *ArgError) Error() string {
	switch e.Kind {
	case ArgErrNoArg:
		return "argument error: missing --config or algorithm flag"
	case ArgErrMultipleArg:
		return "argument error: more than one algorithm flag given for a single run"
	default:
		return "argument error: bad argument"
	}
}

// algoFlags names every algorithm selector flag and maps each to the
// Algorithm it selects.
var algoFlags = []struct {
	flag string
	alg  tsp.Algorithm
}{
	{"bf", tsp.AlgBruteForce},
	{"nn", tsp.AlgNearestNeighbor},
	{"r", tsp.AlgRandom},
	{"lc", tsp.AlgBranchAndBoundLC},
	{"bb", tsp.AlgBranchAndBoundBFS},
	{"bd", tsp.AlgBranchAndBoundDFS},
	{"ts", tsp.AlgTabuSearch},
	{"g", tsp.AlgGenetic},
}

func main() {
	raisePriority()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tspsolve", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the INI config file")
	measureMode := fs.Bool("measure", false, "run the cache-warm-then-record benchmark harness")
	verbose := fs.Bool("verbose", false, "print each algorithm's min/mean/max timing to stderr")
	outPath := fs.String("out", "", "CSV report output path (stdout if empty)")
	warmup := fs.Int("warmup", 3, "cache-warming runs per algorithm")
	samples := fs.Int("samples", 10, "recorded runs per algorithm")

	selected := make(map[string]*bool, len(algoFlags))
	for _, a := range algoFlags {
		selected[a.flag] = fs.Bool(a.flag, false, "select the "+a.flag+" algorithm")
	}

	if err := fs.Parse(args); err != nil {
		return &ArgError{Kind: ArgErrBadArg}
	}
	if *configPath == "" {
		return &ArgError{Kind: ArgErrNoArg}
	}

	var chosen []tsp.Algorithm
	for _, a := range algoFlags {
		if *selected[a.flag] {
			chosen = append(chosen, a.alg)
		}
	}
	if len(chosen) == 0 {
		return &ArgError{Kind: ArgErrNoArg}
	}
	if !*measureMode && len(chosen) > 1 {
		return &ArgError{Kind: ArgErrMultipleArg}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return instance.ErrBadRead
	}
	defer f.Close()

	matrix, err := instance.Read(f)
	if err != nil {
		return err
	}

	inst := tsp.Instance{Matrix: matrix, Info: cfg.Info, Params: cfg.Params}
	if cfg.HasOptimal {
		sol := tsp.Solution{Cost: cfg.OptimalCost, Path: cfg.OptimalPath}
		inst.Optimal = &sol
	}

	if *measureMode {
		return runMeasure(inst, chosen, *outPath, *warmup, *samples, *verbose)
	}
	return runSingle(inst, chosen[0])
}

func runSingle(inst tsp.Instance, alg tsp.Algorithm) error {
	sol, err := tsp.Solve(alg, inst)
	if err != nil {
		return err
	}
	fmt.Printf("algorithm=%s cost=%d path=%v\n", alg, sol.Cost, sol.Path)
	return nil
}

func runMeasure(inst tsp.Instance, algs []tsp.Algorithm, outPath string, warmup, samples int, verbose bool) error {
	var allRows []measure.Row
	for _, alg := range algs {
		result, err := measure.Run(alg, inst, alg.String(), warmup, samples)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: min=%.2fus mean=%.2fus max=%.2fus\n",
				alg, result.Summary.MinMicros, result.Summary.MeanMicros, result.Summary.MaxMicros)
		}
		allRows = append(allRows, result.Rows...)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return &measure.MeasureError{Kind: measure.ErrKindFile, Cause: err}
		}
		defer f.Close()
		out = f
	}
	if err := measure.WriteCSV(out, allRows); err != nil {
		return &measure.MeasureError{Kind: measure.ErrKindFile, Cause: err}
	}
	return nil
}
