// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/percolation/percolation"
)

// New runs trials independent experiments on an n×n grid and aggregates the
// resulting threshold estimates.
// Returns ErrInvalidSize if n < 1 and ErrInvalidTrials if trials < 1; no
// trial runs in either case.
// Complexity: O(trials · n² · α(n²)) time, O(n² + trials) memory.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if trials < 1 {
		return nil, ErrInvalidTrials
	}
	cfg := newConfig(opts)

	s := &Stats{
		n:          n,
		thresholds: make([]float64, trials),
	}
	for i := 0; i < trials; i++ {
		p, err := runTrial(n, trialRNG(cfg.rng, i))
		if err != nil {
			return nil, fmt.Errorf("stats: trial %d: %w", i, err)
		}
		s.thresholds[i] = p
		cfg.logger.Debug("trial done", "trial", i, "n", n, "threshold", p)
	}
	s.mean = SampleMean(s.thresholds)
	s.stddev = SampleStddev(s.thresholds)

	cfg.logger.Info("experiment done",
		"n", n,
		"trials", trials,
		"mean", s.mean,
		"stddev", s.stddev,
	)

	return s, nil
}

// runTrial opens random sites on a fresh grid until it percolates and returns
// the open fraction at that moment. At most n² distinct openings are needed.
func runTrial(n int, r *rand.Rand) (float64, error) {
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for !g.Percolates() {
		row, col := uniformSite(r, n)
		if err := g.Open(row, col); err != nil {
			return 0, err
		}
	}

	return g.OpenFraction(), nil
}

// Size returns the grid side length used by every trial.
func (s *Stats) Size() int {
	return s.n
}

// Trials returns the number of trials run.
func (s *Stats) Trials() int {
	return len(s.thresholds)
}

// Thresholds returns a copy of the per-trial open fractions, in trial order.
func (s *Stats) Thresholds() []float64 {
	out := make([]float64, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.mean
}

// Stddev returns the sample standard deviation of the percolation threshold.
// NaN for a single trial.
func (s *Stats) Stddev() float64 {
	return s.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return confidence95 * s.stddev / math.Sqrt(float64(len(s.thresholds)))
}

// SampleMean returns Σx/len(xs), or NaN for an empty slice.
func SampleMean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleStddev returns the standard deviation with the len(xs)-1 denominator.
// NaN when len(xs) < 2.
func SampleStddev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mu := SampleMean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
