package cashflow

import "github.com/meenmo/fiacost/policy"

// RollupTypeOf reports a policy's rollup type, defaulting to Simple.
func RollupTypeOf(p policy.Policy) policy.RollupType {
	if p.RollupType == "" {
		return policy.Simple
	}
	return p.RollupType
}

// rollupEOPBB computes the benefit base carried into policyYear+1,
// given bopBB (the benefit base going into month 12 of policyYear).
// Called only at the month-12-to-month-1 boundary for policyYear <
// rollupYears (see kernel.go); outside that window eop_bb is carried
// flat from bop_bb.
//
// Simple rollup uses a ratio-of-cumulative form: bop_bb already carries
// the running product of every prior year's factor, so multiplying by
// the ratio of this year's factor to last year's reproduces straight
// simple accrual on the original benefit base without re-deriving it
// from initial_bb each time.
func rollupEOPBB(p policy.Policy, rollupRate float64, policyYear int, bopBB float64) float64 {
	if RollupTypeOf(p) == policy.Compound {
		return bopBB * (1 + rollupRate)
	}
	factorPrior := 1 + p.Bonus + rollupRate*float64(policyYear-1)
	factorNew := 1 + p.Bonus + rollupRate*float64(policyYear)
	return bopBB * factorNew / factorPrior
}
