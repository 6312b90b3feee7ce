// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"log/slog"
	"math/rand"
)

// Sentinel errors for stats construction.
var (
	// ErrInvalidSize indicates a grid size n < 1.
	ErrInvalidSize = errors.New("stats: grid size must be >= 1")
	// ErrInvalidTrials indicates a trial count < 1.
	ErrInvalidTrials = errors.New("stats: number of trials must be >= 1")
)

// confidence95 is the two-sided z-score for a 95% normal interval.
const confidence95 = 1.96

// Stats holds the per-trial threshold estimates of one experiment and the
// aggregates derived from them.
type Stats struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
}

// config is assembled from Options before any trial runs.
type config struct {
	rng    *rand.Rand
	logger *slog.Logger
}
