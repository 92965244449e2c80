package assumptions

// SurrenderChargeSchedule gives the surrender-charge rate by policy year.
// A policy year beyond the schedule's length has no surrender charge.
type SurrenderChargeSchedule struct {
	rates []float64
}

// NewSurrenderChargeSchedule builds a schedule from per-year rates,
// 1-indexed (rates[0] is policy year 1).
func NewSurrenderChargeSchedule(rates []float64) SurrenderChargeSchedule {
	return SurrenderChargeSchedule{rates: rates}
}

// Rate returns the surrender-charge rate for a policy year, or 0 once the
// policy year exceeds the schedule's length (spec §4.1: "0 once
// policy_year > sc_period/12").
func (s SurrenderChargeSchedule) Rate(policyYear int) float64 {
	idx := policyYear - 1
	if idx < 0 || idx >= len(s.rates) {
		return 0
	}
	return s.rates[idx]
}

// InSCPeriod reports whether a policy year still carries a surrender
// charge.
func (s SurrenderChargeSchedule) InSCPeriod(policyYear int) bool {
	return s.Rate(policyYear) > 0
}

// PeriodYears is the length of the surrender-charge schedule in years.
func (s SurrenderChargeSchedule) PeriodYears() int {
	return len(s.rates)
}

// DefaultSurrenderChargeSchedule returns the built-in 10-year schedule
// (9/9/8/7/6/5/4/3/2/1%), transcribed from the original pricing model.
func DefaultSurrenderChargeSchedule() SurrenderChargeSchedule {
	return NewSurrenderChargeSchedule([]float64{0.09, 0.09, 0.08, 0.07, 0.06, 0.05, 0.04, 0.03, 0.02, 0.01})
}

// PayoutFactors gives GLWB single-life payout rates by attained age,
// banded at the low end and per-year above. Not exercised by the
// cost-of-funds calculation (no operation projects GLWB income
// payments), but supplemented from the original pricing model for a
// future income-phase extension.
type PayoutFactors struct {
	// bands are (minAge, maxAge, rate) triples, checked in order.
	bands []payoutBand
	// beyond is the rate used for ages past the last band.
	beyond float64
}

type payoutBand struct {
	minAge, maxAge int
	rate           float64
}

// Get returns the single-life payout factor for an attained age.
func (p PayoutFactors) Get(attainedAge int) float64 {
	for _, b := range p.bands {
		if attainedAge >= b.minAge && attainedAge <= b.maxAge {
			return b.rate
		}
	}
	return p.beyond
}

// DefaultPayoutFactors returns the built-in per-age payout table,
// transcribed from the original pricing model's Product features sheet.
func DefaultPayoutFactors() PayoutFactors {
	bands := []payoutBand{
		{50, 55, 0.0460},
		{56, 56, 0.0475}, {57, 57, 0.0490}, {58, 58, 0.0505}, {59, 59, 0.0520},
		{60, 60, 0.0535}, {61, 61, 0.0550}, {62, 62, 0.0565}, {63, 63, 0.0580},
		{64, 64, 0.0595}, {65, 65, 0.0605}, {66, 66, 0.0610}, {67, 67, 0.0620},
		{68, 68, 0.0625}, {69, 69, 0.0635}, {70, 70, 0.0645}, {71, 71, 0.0655},
		{72, 72, 0.0665}, {73, 73, 0.0675}, {74, 74, 0.0690}, {75, 75, 0.0705},
		{76, 76, 0.0725}, {77, 77, 0.0745}, {78, 78, 0.0765}, {79, 79, 0.0785},
		{80, 80, 0.0795}, {81, 81, 0.0805}, {82, 82, 0.0815}, {83, 83, 0.0825},
		{84, 84, 0.0835}, {85, 85, 0.0845}, {86, 86, 0.0855}, {87, 87, 0.0865},
		{88, 88, 0.0875}, {89, 89, 0.0885}, {90, 120, 0.0895},
	}
	return PayoutFactors{bands: bands, beyond: 0.090}
}

// ProductBase groups the non-rider product features: expense rate and
// the surrender-charge schedule.
type ProductBase struct {
	SurrenderCharges SurrenderChargeSchedule

	// ExpenseRateOfAV is the annual expense rate applied monthly on EOP
	// AV (default 0.0025, applied /12 per month per spec §3).
	ExpenseRateOfAV float64
}

// DefaultProductBase returns the built-in product base: the default
// 10-year surrender-charge schedule and a 0.25% annual expense rate.
func DefaultProductBase() ProductBase {
	return ProductBase{
		SurrenderCharges: DefaultSurrenderChargeSchedule(),
		ExpenseRateOfAV:  0.0025,
	}
}
