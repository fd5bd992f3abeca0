// Package analyzer implements the three condition analyzers that adjust the
// base no-hitter probability: weather, pitcher form, and stadium environment.
package analyzer

import (
	"hash/fnv"
	"math/rand"
)

// seedFor derives a reproducible PRNG seed from identity strings using
// 64-bit FNV-1a over the concatenated parts. The hash function is fixed so
// simulated samples are stable across platforms and process runs.
func seedFor(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return int64(h.Sum64())
}

// newRand returns a PRNG seeded from the given identity strings.
func newRand(parts ...string) *rand.Rand {
	return rand.New(rand.NewSource(seedFor(parts...)))
}

// randIntInclusive draws an integer in [lo, hi].
func randIntInclusive(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// randUniform draws a float in [lo, hi).
func randUniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
