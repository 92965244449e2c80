// Package irr solves for the carrier's monthly cost of funds on an
// aggregated cashflow series and computes the ceding-commission NPV at
// a supplied discount rate.
package irr

// Config bundles the Newton-Raphson solver's tolerances. A zero-valued
// Config is not usable; build one via DefaultConfig.
type Config struct {
	// InitialGuess is the starting monthly rate. Per design, 0.004 is
	// robust for this book and is not exposed as a user-facing setting.
	InitialGuess float64

	// Tolerance is the dollar convergence bound on |f(r)|.
	Tolerance float64

	MaxIterations int

	// DerivativeFloor guards against near-zero derivative steps.
	DerivativeFloor float64

	// DivergenceBound: a monthly rate whose magnitude exceeds this is
	// treated as diverged.
	DivergenceBound float64
}

// DefaultConfig returns the built-in solver tolerances: initial guess
// 0.004, $1 convergence tolerance, 50 iterations, 10⁻¹² derivative
// floor, and a divergence bound of 1.0 (100% monthly).
func DefaultConfig() Config {
	return Config{
		InitialGuess:    0.004,
		Tolerance:       1.0,
		MaxIterations:   50,
		DerivativeFloor: 1e-12,
		DivergenceBound: 1.0,
	}
}
