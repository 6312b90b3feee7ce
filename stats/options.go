// SPDX-License-Identifier: MIT

package stats

import (
	"io"
	"log/slog"
	"math/rand"
)

// Option customizes an experiment before its trials run.
type Option func(*config)

// WithSeed seeds the random source. seed==0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit random source. The source is consumed once per
// trial to derive that trial's stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stats: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger routes per-trial debug records and the final summary to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}
