package assumptions

import (
	"math"

	"github.com/meenmo/fiacost/policy"
)

// RMDTable gives Required Minimum Distribution rates by attained age,
// starting at age 73. Ages below 73 return 0. Transcribed from the
// original pricing model's Non-systematic PWDs sheet.
type RMDTable struct {
	rates map[int]float64
}

// Rate returns the RMD rate for an attained age, or 0 below age 73. Ages
// beyond the table's top entry (120) use that entry's rate.
func (t RMDTable) Rate(attainedAge int) float64 {
	if attainedAge < 73 {
		return 0
	}
	if rate, ok := t.rates[attainedAge]; ok {
		return rate
	}
	if attainedAge > 120 {
		return t.rates[120]
	}
	return 0
}

// RateIfQualified returns the RMD rate for qualified policies and 0 for
// non-qualified policies, which have no RMD requirement.
func (t RMDTable) RateIfQualified(attainedAge int, qual policy.QualStatus) float64 {
	if qual != policy.Qualified {
		return 0
	}
	return t.Rate(attainedAge)
}

// DefaultRMDTable returns the built-in RMD schedule, ages 73-120,
// transcribed from the original pricing model.
func DefaultRMDTable() RMDTable {
	rates := map[int]float64{
		73: 0.0377358491, 74: 0.0392156863, 75: 0.0406504065, 76: 0.0421940928,
		77: 0.0436681223, 78: 0.0454545455, 79: 0.0473933649, 80: 0.0495049505,
		81: 0.0515463918, 82: 0.0540540541, 83: 0.0564971751, 84: 0.0595238095,
		85: 0.0625000000, 86: 0.0657894737, 87: 0.0694444444, 88: 0.0729927007,
		89: 0.0775193798, 90: 0.0819672131, 91: 0.0869565217, 92: 0.0925925926,
		93: 0.0990099010, 94: 0.1052631579, 95: 0.1123595506, 96: 0.1190476190,
		97: 0.1282051282, 98: 0.1369863014, 99: 0.1470588235, 100: 0.1562500000,
		101: 0.1666666667, 102: 0.1785714286, 103: 0.1923076923, 104: 0.2040816327,
		105: 0.2173913043, 106: 0.2325581395, 107: 0.2439024390, 108: 0.2564102564,
		109: 0.2702702703, 110: 0.2857142857, 111: 0.2941176471, 112: 0.3030303030,
		113: 0.3225806452, 114: 0.3333333333, 115: 0.3448275862, 116: 0.3571428571,
		117: 0.3703703704, 118: 0.4000000000, 119: 0.4347826087, 120: 0.5000000000,
	}
	return RMDTable{rates: rates}
}

// FreeWithdrawalUtilization is the fraction of the free-withdrawal
// allowance a policyholder is assumed to actually take, by policy year,
// before GLWB income activation. Policy years beyond the table use the
// last tabulated rate.
type FreeWithdrawalUtilization struct {
	rates []float64
}

// Rate returns the utilization rate for a policy year (1-indexed).
func (u FreeWithdrawalUtilization) Rate(policyYear int) float64 {
	idx := policyYear - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(u.rates) {
		idx = len(u.rates) - 1
	}
	return u.rates[idx]
}

// DefaultFreeWithdrawalUtilization returns the built-in 10/20/30/40% ramp
// transcribed from the original pricing model.
func DefaultFreeWithdrawalUtilization() FreeWithdrawalUtilization {
	return FreeWithdrawalUtilization{rates: []float64{0.1, 0.2, 0.3, 0.4}}
}

// PWD combines the RMD table and free-withdrawal utilization ramp into
// the partial-withdrawal assumption set.
type PWD struct {
	RMD              RMDTable
	FreeUtilization  FreeWithdrawalUtilization
	FreeWithdrawalPct float64
}

// DefaultPWD returns the built-in partial-withdrawal assumptions: 5% free
// withdrawal, the transcribed RMD table, and the 10/20/30/40% ramp.
func DefaultPWD() PWD {
	return PWD{
		RMD:               DefaultRMDTable(),
		FreeUtilization:   DefaultFreeWithdrawalUtilization(),
		FreeWithdrawalPct: 0.05,
	}
}

// freePct returns the Free Partial Withdrawal percentage: for qualified
// policies, the greater of the base free % and the RMD rate; for
// non-qualified policies, just the base free %. In policy year 1, only
// RMD applies — there are no discretionary free withdrawals in year 1.
func (p PWD) freePct(policyYear, attainedAge int, qual policy.QualStatus) float64 {
	if policyYear == 1 {
		return p.RMD.RateIfQualified(attainedAge, qual)
	}
	if qual == policy.Qualified {
		return math.Max(p.FreeWithdrawalPct, p.RMD.Rate(attainedAge))
	}
	return p.FreeWithdrawalPct
}

// AnnualRate returns the annual partial-withdrawal rate as a fraction of
// account value: free% (incorporating RMD for qualified policies) ×
// utilization. Returns 0 once GLWB income has been activated, since
// policyholders taking systematic income do not also take additional
// non-systematic withdrawals.
func (p PWD) AnnualRate(policyYear, attainedAge int, qual policy.QualStatus, incomeActivated bool) float64 {
	if incomeActivated {
		return 0
	}
	free := p.freePct(policyYear, attainedAge, qual)
	util := p.FreeUtilization.Rate(policyYear)
	return free * util
}

// MonthlyRate converts AnnualRate to a monthly decrement rate via the
// actuarial formula 1-(1-annual)^(1/12). Policy year 1 has no
// non-systematic withdrawals at all (not even RMD-driven monthly
// decrements), matching the original model's convention that RMD in
// year 1 is reflected in the annual rate only for informational
// purposes, not as a monthly cashflow driver.
func (p PWD) MonthlyRate(policyYear, attainedAge int, qual policy.QualStatus, incomeActivated bool) float64 {
	if policyYear == 1 {
		return 0
	}
	annual := p.AnnualRate(policyYear, attainedAge, qual, incomeActivated)
	return 1 - math.Pow(1-annual, 1.0/12.0)
}
