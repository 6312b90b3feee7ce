// SPDX-License-Identifier: MIT

package stats

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG derives the independent stream for trial i.
// base.Int63 is consumed once per call, so the same i never repeats a stream.
func trialRNG(base *rand.Rand, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), uint64(i))))
}

// uniformSite draws (row, col) uniformly from [1, n]×[1, n].
func uniformSite(r *rand.Rand, n int) (int, int) {
	return r.Intn(n) + 1, r.Intn(n) + 1
}
