package assumptions

import (
	"fmt"
	"sort"
)

// LapseTable gives the base monthly lapse rate by policy month, modulated
// by an in-the-moneyness (ITM) sensitivity curve and a shock-year skew
// applied at the end of the surrender-charge period.
type LapseTable struct {
	// baseMonthly[policyMonth] = base monthly lapse rate before any ITM
	// or shock adjustment. A policy month beyond the table uses the last
	// available rate (the base rate is assumed to plateau).
	baseMonthly []float64

	// itmPoints/itmMultipliers define a piecewise-linear multiplier curve
	// keyed on ITM = bb/av - 1, sorted ascending by itmPoints. Lookups
	// outside [itmPoints[0], itmPoints[last]] are clamped to the
	// boundary value — the spec forbids extrapolation.
	itmPoints      []float64
	itmMultipliers []float64

	// ShockMultiplier scales the lapse rate in the shock year: the last
	// 12 months of the surrender-charge period, during which
	// policyholders anticipating the SC period's end predictably lapse
	// at an elevated rate.
	ShockMultiplier float64
}

// NewLapseTable builds a table from a base-rate schedule and an ITM
// multiplier curve. itmPoints must be sorted ascending and the same
// length as itmMultipliers.
func NewLapseTable(baseMonthly []float64, itmPoints, itmMultipliers []float64, shockMultiplier float64) (LapseTable, error) {
	if len(itmPoints) != len(itmMultipliers) {
		return LapseTable{}, fmt.Errorf("assumptions: lapse ITM curve has %d points but %d multipliers", len(itmPoints), len(itmMultipliers))
	}
	if !sort.SliceIsSorted(itmPoints, func(i, j int) bool { return itmPoints[i] < itmPoints[j] }) {
		return LapseTable{}, fmt.Errorf("assumptions: lapse ITM curve points must be sorted ascending")
	}
	return LapseTable{
		baseMonthly:     baseMonthly,
		itmPoints:       itmPoints,
		itmMultipliers:  itmMultipliers,
		ShockMultiplier: shockMultiplier,
	}, nil
}

// baseRate returns the base monthly rate for a policy month, clamped to
// the last table entry once the schedule is exhausted.
func (t LapseTable) baseRate(policyMonth int) (float64, error) {
	if len(t.baseMonthly) == 0 {
		return 0, fmt.Errorf("assumptions: lapse table has no base rates")
	}
	idx := policyMonth - 1
	if idx < 0 {
		return 0, fmt.Errorf("assumptions: policy month %d is not positive", policyMonth)
	}
	if idx >= len(t.baseMonthly) {
		idx = len(t.baseMonthly) - 1
	}
	return t.baseMonthly[idx], nil
}

// itmMultiplier interpolates the ITM curve, clamping to the domain
// boundary rather than extrapolating, per spec §4.1.
func (t LapseTable) itmMultiplier(itm float64) float64 {
	if len(t.itmPoints) == 0 {
		return 1
	}
	if itm <= t.itmPoints[0] {
		return t.itmMultipliers[0]
	}
	last := len(t.itmPoints) - 1
	if itm >= t.itmPoints[last] {
		return t.itmMultipliers[last]
	}
	i := sort.SearchFloat64s(t.itmPoints, itm)
	if i == 0 {
		return t.itmMultipliers[0]
	}
	lo, hi := t.itmPoints[i-1], t.itmPoints[i]
	frac := (itm - lo) / (hi - lo)
	return t.itmMultipliers[i-1] + frac*(t.itmMultipliers[i]-t.itmMultipliers[i-1])
}

// MonthlyRate returns the fully adjusted monthly lapse rate: base rate ×
// ITM multiplier, further scaled by ShockMultiplier in the shock year
// (the final 12 months of the surrender-charge period).
func (t LapseTable) MonthlyRate(policyMonth int, itm float64, inShockYear bool) (float64, error) {
	base, err := t.baseRate(policyMonth)
	if err != nil {
		return 0, err
	}
	rate := base * t.itmMultiplier(itm)
	if inShockYear {
		rate *= t.ShockMultiplier
	}
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return rate, nil
}

// DefaultLapseTable returns a built-in lapse schedule: a modest base rate
// that steps up in the shock year, an ITM curve that suppresses lapse as
// the benefit base pulls ahead of the account value (policyholders
// in-the-money on the rider are less likely to surrender), and a 1.5x
// shock-year skew.
func DefaultLapseTable() LapseTable {
	base := make([]float64, 360)
	for m := range base {
		base[m] = 0.0035
	}
	itmPoints := []float64{-0.5, 0, 0.25, 0.5, 1.0, 2.0}
	itmMultipliers := []float64{1.4, 1.0, 0.8, 0.6, 0.4, 0.25}
	t, err := NewLapseTable(base, itmPoints, itmMultipliers, 1.5)
	if err != nil {
		// Unreachable: the literals above are constructed to satisfy
		// NewLapseTable's invariants.
		panic(err)
	}
	return t
}
