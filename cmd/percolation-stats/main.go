// SPDX-License-Identifier: MIT

// Command percolation-stats estimates the percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
// Usage:
//
//	percolation-stats 200 100                 # n=200, 100 trials
//	percolation-stats -seed 7 200 100         # reproducible run
//	percolation-stats -config run.yaml        # n and trials from YAML
//	percolation-stats -log-level debug 20 10  # per-trial records on stderr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/stats"
)

var errUsage = errors.New("usage: percolation-stats [-seed N] [-config file.yaml] [-log-level L] <n> <trials>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the experiment and writes the report to stdout.
// Returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parse(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		fmt.Fprintln(stderr, errUsage)
		return 1
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	s, err := stats.New(cfg.GridSize, cfg.Trials,
		stats.WithSeed(cfg.Seed),
		stats.WithLogger(logger),
	)
	if err != nil {
		logger.Error("percolation-stats: fatal", "error", err)
		return 1
	}
	report(stdout, s)

	return 0
}

// parse layers defaults, the optional YAML file, explicitly set flags and the
// positional <n> <trials>, then validates the result.
func parse(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("percolation-stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	seed := fs.Int64("seed", 0, "random seed (0 selects the default seed)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	switch fs.NArg() {
	case 0:
		if *configPath == "" {
			return nil, errors.New("missing <n> and <trials>")
		}
	case 2:
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return nil, fmt.Errorf("grid size: %w", err)
		}
		trials, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return nil, fmt.Errorf("trials: %w", err)
		}
		cfg.GridSize, cfg.Trials = n, trials
	default:
		return nil, fmt.Errorf("expected 2 arguments, got %d", fs.NArg())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func report(w io.Writer, s *stats.Stats) {
	fmt.Fprintf(w, "mean                    = %v\n", s.Mean())
	fmt.Fprintf(w, "stddev                  = %v\n", s.Stddev())
	fmt.Fprintf(w, "95%% confidence interval = [%v, %v]\n", s.ConfidenceLo(), s.ConfidenceHi())
}
