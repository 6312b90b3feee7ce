// SPDX-License-Identifier: MIT

// Package stats estimates the percolation threshold of an n×n grid by Monte
// Carlo simulation.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random sites
// (repeats are harmless no-ops) until the grid percolates, and records the
// fraction of open sites. Across T trials the package reports the sample mean,
// the sample standard deviation (T-1 denominator) and the 95% confidence
// interval mean ± 1.96·stddev/√T.
//
// Determinism:
//
//   - Randomness flows only through options: WithSeed or WithRand.
//   - seed==0 (the default) maps to a fixed non-zero seed; same seed ⇒ same thresholds.
//   - Every trial draws from its own stream derived from the base source.
//
// Trials run sequentially. A Stats value is immutable after New returns.
//
// Errors:
//
//   - ErrInvalidSize:   n < 1.
//   - ErrInvalidTrials: trials < 1.
package stats
