package engine

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// Per-draw clamp for the simulated probabilities. Keeps a single outlier draw
// from dragging the interval outside plausible game odds.
const (
	mcDrawFloor = 0.001
	mcDrawCeil  = 0.1
)

// confidenceInterval runs a Monte Carlo simulation around the point estimate:
// each draw perturbs the probability by N(1.0, 0.1) noise, and the 2.5th and
// 97.5th percentiles of the clamped draws form the 95% interval, scaled to
// percent. The generator is seeded by the prediction date so repeated runs
// report the same interval.
func confidenceInterval(probability float64, iterations int, dateKey string) models.ConfidenceInterval {
	if iterations <= 0 {
		iterations = 1000
	}

	h := fnv.New64a()
	h.Write([]byte("confidence_" + dateKey))
	r := rand.New(rand.NewSource(int64(h.Sum64())))

	draws := make([]float64, iterations)
	for i := range draws {
		draws[i] = clamp(probability*(1.0+0.1*r.NormFloat64()), mcDrawFloor, mcDrawCeil)
	}
	sort.Float64s(draws)

	return models.ConfidenceInterval{
		Lower: samplePercentile(draws, 2.5) * 100,
		Upper: samplePercentile(draws, 97.5) * 100,
	}
}

// samplePercentile linearly interpolates the p-th percentile of sorted draws.
func samplePercentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
