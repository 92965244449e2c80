package assumptions

// GLWBFeatures defines the guaranteed-lifetime-withdrawal-benefit rider:
// the benefit-base rollup rate and duration, and the bonus applied at
// issue.
type GLWBFeatures struct {
	// RollupRate is the annual rate at which the benefit base rolls up,
	// either added simply or compounded, per the policy's RollupType.
	RollupRate float64

	// RollupYears is the number of policy years the rollup applies for;
	// after that the benefit base is frozen (absent a step-up) until
	// withdrawals begin.
	RollupYears int

	// Bonus is the rider design's default benefit-base bonus at issue.
	// The kernel's rollup reads each policy's own Bonus and does not fall
	// back to this value.
	Bonus float64

	// WithdrawalWaitYears is the default number of years before GLWB
	// income may be activated, used when a policy record does not carry
	// its own GLWBStartYear.
	WithdrawalWaitYears int

	Payout PayoutFactors
}

// DefaultGLWBFeatures returns the built-in rider design: 10% annual
// rollup for up to 10 years, a 30% issue bonus, and income available
// starting policy year 11 (10-year wait), transcribed from the original
// pricing model's GlwbFeatures default.
func DefaultGLWBFeatures() GLWBFeatures {
	return GLWBFeatures{
		RollupRate:          0.10,
		RollupYears:         10,
		Bonus:               0.30,
		WithdrawalWaitYears: 10,
		Payout:              DefaultPayoutFactors(),
	}
}

// InRollupPeriod reports whether the benefit base rolls up at the end of
// a policy year: only years before RollupYears do, so the last rollup
// takes effect at the start of policy year RollupYears.
func (g GLWBFeatures) InRollupPeriod(policyYear int) bool {
	return policyYear < g.RollupYears
}
