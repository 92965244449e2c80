package irr

import "math"

// CostOfFunds solves for the monthly rate r such that
// Σ cf_m (1+r)^(-m) = 0, via Newton-Raphson, and reports it annualized
// as a percentage: ((1+r)^12 - 1) × 100. Returns (value, true) on
// convergence; (0, false) if the derivative collapses, the rate
// diverges, or the iteration cap is hit first.
func CostOfFunds(cashflows []float64, cfg Config) (float64, bool) {
	r, ok := solve(cashflows, cfg)
	if !ok {
		return 0, false
	}
	return (math.Pow(1+r, 12) - 1) * 100, true
}

// solve returns the converged monthly rate, unannualized.
func solve(cashflows []float64, cfg Config) (float64, bool) {
	r := cfg.InitialGuess

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		f, df := npvAndDeriv(cashflows, r)

		if math.Abs(f) < cfg.Tolerance {
			return r, true
		}
		if math.Abs(df) < cfg.DerivativeFloor {
			return 0, false
		}

		r -= f / df
		if math.Abs(r) > cfg.DivergenceBound {
			return 0, false
		}
	}

	return 0, false
}

// npvAndDeriv evaluates f(r) = Σ cf_m (1+r)^(-m) and its derivative in
// one pass over the cashflow series. Month 1 is index 0.
func npvAndDeriv(cashflows []float64, r float64) (float64, float64) {
	var f, df float64
	for i, cf := range cashflows {
		m := float64(i + 1)
		disc := math.Pow(1+r, m)
		f += cf / disc
		df += -m * cf / math.Pow(1+r, m+1)
	}
	return f, df
}

// CedingCommissionNPV computes the NPV of the cashflow series at the
// monthly discount rate implied by bbbRate + spread (both annual
// fractions), per spec §4.6.
func CedingCommissionNPV(cashflows []float64, bbbRate, spread float64) float64 {
	totalRate := bbbRate + spread
	d := totalRate / 12
	var npv float64
	for i, cf := range cashflows {
		m := float64(i + 1)
		npv += cf / math.Pow(1+d, m)
	}
	return npv
}
