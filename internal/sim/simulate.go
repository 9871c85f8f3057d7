package sim

import (
	"math/rand"
	"sort"
)

// Normals draws n standard normal variates from rng.
func Normals(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

// Simulate runs one path of p using draws from rng.
func Simulate(p Process, rng *rand.Rand) []float64 {
	return p.Path(Normals(rng, p.Steps()))
}

// VaREstimator estimates a position's VaR contribution as an
// empirical quantile of simulated losses over the process horizon.
type VaREstimator struct {
	Process    Process
	Paths      int
	Confidence float64 // e.g. 0.95 for the 95th percentile loss
}

// Estimate runs Paths simulations and returns the Confidence-quantile
// of terminal losses relative to the initial value. The result is
// signed: a process that almost surely gains yields a negative
// contribution.
func (e VaREstimator) Estimate(rng *rand.Rand) float64 {
	losses := make([]float64, 0, e.Paths)
	for i := 0; i < e.Paths; i++ {
		path := Simulate(e.Process, rng)
		losses = append(losses, path[0]-path[len(path)-1])
	}
	sort.Float64s(losses)

	idx := int(e.Confidence * float64(len(losses)))
	if idx >= len(losses) {
		idx = len(losses) - 1
	}
	return losses[idx]
}
