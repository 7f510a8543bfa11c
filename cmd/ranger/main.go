// Command ranger parses and validates a forest run configuration from the
// command line, then hands it to the forest engine. Options may also come
// from RANGER_* environment defaults and from the RANGER_OPTS convenience
// variable; explicit arguments win over both.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/imbs-hl/rangeropt"
	"github.com/imbs-hl/rangeropt/parse"
)

const program = "ranger"

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv func(string) (string, bool), stdout, stderr io.Writer) int {
	if opts, ok := lookupEnv("RANGER_OPTS"); ok && opts != "" {
		extra, err := parse.Split(opts)
		if err != nil {
			fmt.Fprintf(stderr, "%s: cannot split RANGER_OPTS: %v\n", program, err)
			return 2
		}
		args = append(extra, args...)
	}

	parser := rangeropt.NewParser(rangeropt.WithEnvLookup(lookupEnv))
	result, err := parser.ParseWithEnv(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 2
	}

	switch result.Info {
	case rangeropt.HelpRequested:
		fmt.Fprint(stdout, parser.Usage(program))
		return 0
	case rangeropt.VersionRequested:
		fmt.Fprint(stdout, rangeropt.VersionInfo())
		return 0
	}

	for _, leftover := range result.Leftovers {
		fmt.Fprintf(stderr, "%s: ignoring unrecognized argument '%s'\n", program, leftover)
	}

	cfg := result.Config
	if cfg.Verbose {
		printSummary(stdout, cfg)
	}

	// hand-off point for the forest engine
	return 0
}

func printSummary(w io.Writer, cfg *rangeropt.Config) {
	fmt.Fprintf(w, "Tree type: %s\n", cfg.TreeType)
	fmt.Fprintf(w, "Input file: %s\n", cfg.File)
	if cfg.Predicting() {
		fmt.Fprintf(w, "Predicting with forest: %s\n", cfg.Predict)
	} else {
		fmt.Fprintf(w, "Dependent variable: %s\n", cfg.DepVarName)
	}
	fmt.Fprintf(w, "Number of trees: %d\n", cfg.NumTrees)
	fmt.Fprintf(w, "Sample fraction: %g (with replacement: %t)\n", cfg.Fraction, cfg.Replace)
	fmt.Fprintf(w, "Threads: %d\n", cfg.NumThreads)
	if cfg.Seed != 0 {
		fmt.Fprintf(w, "Seed: %d\n", cfg.Seed)
	}
	if len(cfg.Quantiles) > 0 {
		fmt.Fprintf(w, "Quantiles: %v\n", cfg.Quantiles)
	}
}
