// Package sim generates Monte Carlo paths for stochastic processes
// and turns them into empirical VaR estimates that can feed the risk
// manager.
package sim

import "math"

// Process is a stochastic process that can turn a sequence of standard
// normal draws into a price (or rate) path.
type Process interface {
	// Steps returns the number of increments per path.
	Steps() int
	// Path folds the process over the given standard normal draws and
	// returns the path including the initial value, so the result has
	// len(normals)+1 entries.
	Path(normals []float64) []float64
}

// GeometricBrownianMotion is a log-normal diffusion, stepped with the
// exact log-Euler scheme.
type GeometricBrownianMotion struct {
	InitialValue float64
	RiskFreeRate float64
	Volatility   float64
	TimeSteps    int
	Maturity     float64
}

// Drift is the per-increment log drift for a step of length dt.
func (g GeometricBrownianMotion) Drift(dt float64) float64 {
	return (g.RiskFreeRate - 0.5*g.Volatility*g.Volatility) * dt
}

// Diffusion is the per-increment diffusion coefficient for a step of
// length dt.
func (g GeometricBrownianMotion) Diffusion(dt float64) float64 {
	return g.Volatility * math.Sqrt(dt)
}

func (g GeometricBrownianMotion) Steps() int {
	return g.TimeSteps
}

func (g GeometricBrownianMotion) Path(normals []float64) []float64 {
	dt := g.Maturity / float64(g.TimeSteps)
	s := g.InitialValue
	path := make([]float64, 0, len(normals)+1)
	path = append(path, s)
	for _, dw := range normals {
		s = s * math.Exp(g.Drift(dt)+g.Diffusion(dt)*dw)
		path = append(path, s)
	}
	return path
}

// Vasicek is a mean-reverting rate process, stepped with an additive
// Euler scheme.
type Vasicek struct {
	InitialValue  float64
	RiskFreeRate  float64
	MeanReversion float64
	Volatility    float64
	TimeSteps     int
	Maturity      float64
}

// Drift is the per-increment drift toward the long-run rate for a
// step of length dt.
func (v Vasicek) Drift(dt float64) float64 {
	return v.MeanReversion * (v.RiskFreeRate - dt)
}

// Diffusion is the per-increment diffusion coefficient for a step of
// length dt.
func (v Vasicek) Diffusion(dt float64) float64 {
	return v.Volatility * math.Sqrt(dt)
}

func (v Vasicek) Steps() int {
	return v.TimeSteps
}

func (v Vasicek) Path(normals []float64) []float64 {
	dt := v.Maturity / float64(v.TimeSteps)
	r := v.InitialValue
	path := make([]float64, 0, len(normals)+1)
	path = append(path, r)
	for _, dw := range normals {
		r = r + v.Drift(dt) + v.Diffusion(dt)*dw
		path = append(path, r)
	}
	return path
}
