// Command approxinfo prints accuracy figures for the fastmath
// approximations, measured against the float64 standard library over each
// function's intended argument range.
//
// Usage:
//
//	approxinfo [flags] [function-name ...]
//
// Without arguments it prints figures for all known functions.
//
// Examples:
//
//	approxinfo sin sqrt
//	approxinfo -samples 100000 exp
//	approxinfo -compare log exp sqrt
//	approxinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	fastmath "github.com/cwbudde/algo-fastmath"
	approx "github.com/meko-christian/algo-approx"
)

type funcEntry struct {
	name string
	lo   float64
	hi   float64
	log  bool // geometric instead of linear sampling
	fn   func(float32) float32
	ref  func(float64) float64
	alt  func(float64) float64 // algo-approx counterpart, if one exists
}

var registry = []funcEntry{
	{"sqrt", 1e-3, 1e6, true, fastmath.Sqrt, math.Sqrt, approx.FastSqrt[float64]},
	{"invsqrt", 1e-3, 1e6, true,
		fastmath.InvSqrt,
		func(x float64) float64 { return 1 / math.Sqrt(x) },
		nil},
	{"log", 1e-3, 1e3, true, fastmath.Log, math.Log, approx.FastLog[float64]},
	{"log2", 1e-3, 1e3, true, fastmath.Log2, math.Log2, nil},
	{"exp", -10, 10, false, fastmath.Exp, math.Exp, approx.FastExp[float64]},
	{"sin", -4 * math.Pi, 4 * math.Pi, false, fastmath.Sin, math.Sin, nil},
	{"cos", -4 * math.Pi, 4 * math.Pi, false, fastmath.Cos, math.Cos, nil},
	{"tan", -1.4, 1.4, false, fastmath.Tan, math.Tan, nil},
	{"atan", -50, 50, false, fastmath.Atan, math.Atan, nil},
	{"asin", -0.999, 0.999, false, fastmath.Asin, math.Asin, nil},
	{"acos", -0.999, 0.999, false, fastmath.Acos, math.Acos, nil},
	{"floor", -1e4, 1e4, false, fastmath.Floor, math.Floor, nil},
	{"round", -1e4, 1e4, false, fastmath.Round, math.Round, nil},
}

func main() {
	samples := flag.Int("samples", 10000, "number of evaluation points per function")
	compare := flag.Bool("compare", false, "add columns for the algo-approx float64 counterparts")
	list := flag.Bool("list", false, "list available function names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: approxinfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy figures for the fastmath approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints figures for all functions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  approxinfo sin sqrt\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -samples 100000 exp\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -compare log\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}
	if *samples < 2 {
		fmt.Fprintf(os.Stderr, "error: -samples must be at least 2\n")
		os.Exit(1)
	}

	printReport(entries, *samples, *compare)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []funcEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// errStats holds the accumulated deviation of one implementation from the
// float64 reference.
type errStats struct {
	maxAbs float64
	rms    float64
}

func measure(e funcEntry, samples int, eval func(float64) float64) errStats {
	var maxAbs, sumSq float64
	for i := 0; i < samples; i++ {
		frac := float64(i) / float64(samples-1)

		var x float64
		if e.log {
			x = e.lo * math.Exp(math.Log(e.hi/e.lo)*frac)
		} else {
			x = e.lo + (e.hi-e.lo)*frac
		}

		diff := math.Abs(eval(x) - e.ref(x))
		if diff > maxAbs {
			maxAbs = diff
		}
		sumSq += diff * diff
	}
	return errStats{
		maxAbs: maxAbs,
		rms:    math.Sqrt(sumSq / float64(samples)),
	}
}

func printReport(entries []funcEntry, samples int, compare bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Function\tDomain\tSamples\tMax Err\tRMS Err"
	rule := "--------\t------\t-------\t-------\t-------"
	if compare {
		header += "\tApprox64 Max\tApprox64 RMS"
		rule += "\t------------\t------------"
	}
	fmt.Fprintln(tw, header)
	fmt.Fprintln(tw, rule)

	for _, e := range entries {
		fn := e.fn
		stats := measure(e, samples, func(x float64) float64 {
			return float64(fn(float32(x)))
		})

		domain := fmt.Sprintf("[%.4g, %.4g]", e.lo, e.hi)
		row := fmt.Sprintf("%s\t%s\t%d\t%.3e\t%.3e", e.name, domain, samples, stats.maxAbs, stats.rms)

		if compare {
			if e.alt != nil {
				alt := measure(e, samples, e.alt)
				row += fmt.Sprintf("\t%.3e\t%.3e", alt.maxAbs, alt.rms)
			} else {
				row += "\t-\t-"
			}
		}
		fmt.Fprintln(tw, row)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}
