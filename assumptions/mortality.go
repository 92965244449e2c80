package assumptions

import (
	"fmt"
	"math"

	"github.com/meenmo/fiacost/policy"
)

// MortalityTable gives annual q_x by (gender, attained age), with an
// optional improvement factor applied by policy duration.
type MortalityTable struct {
	// qx[gender][attainedAge] = annual mortality rate.
	qx map[policy.Gender]map[int]float64

	// improvement[duration] = multiplicative improvement factor applied
	// to the base q_x for that policy duration (years since issue).
	// A duration beyond the table uses the last available factor.
	improvement []float64

	minAge, maxAge int
}

// NewMortalityTable builds a table from base annual rates and an optional
// improvement schedule. qx must cover every (gender, age) pair that will
// be looked up; out-of-range lookups are errors, not extrapolations.
func NewMortalityTable(qx map[policy.Gender]map[int]float64, improvement []float64) MortalityTable {
	minAge, maxAge := math.MaxInt, math.MinInt
	for _, byAge := range qx {
		for age := range byAge {
			if age < minAge {
				minAge = age
			}
			if age > maxAge {
				maxAge = age
			}
		}
	}
	return MortalityTable{qx: qx, improvement: improvement, minAge: minAge, maxAge: maxAge}
}

// AnnualRate returns q_x for a gender/attained-age/duration triple, after
// applying the improvement factor for the given duration (years since
// issue, 0-indexed).
func (t MortalityTable) AnnualRate(gender policy.Gender, attainedAge, duration int) (float64, error) {
	byAge, ok := t.qx[gender]
	if !ok {
		return 0, fmt.Errorf("assumptions: no mortality table for gender %q", gender)
	}
	base, ok := byAge[attainedAge]
	if !ok {
		return 0, fmt.Errorf("assumptions: attained age %d out of mortality table domain [%d, %d]", attainedAge, t.minAge, t.maxAge)
	}

	factor := 1.0
	if len(t.improvement) > 0 {
		idx := duration
		if idx >= len(t.improvement) {
			idx = len(t.improvement) - 1
		}
		if idx < 0 {
			idx = 0
		}
		factor = t.improvement[idx]
	}

	rate := base * factor
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return rate, nil
}

// MonthlyRate converts an annual q_x to a monthly decrement rate via
// 1 - (1-q_x)^(1/12).
func (t MortalityTable) MonthlyRate(gender policy.Gender, attainedAge, duration int) (float64, error) {
	annual, err := t.AnnualRate(gender, attainedAge, duration)
	if err != nil {
		return 0, err
	}
	return 1 - math.Pow(1-annual, 1.0/12.0), nil
}

// DefaultMortalityTable returns a small built-in table (distinct
// male/female columns, no improvement) spanning attained ages 18-120;
// older ages are outside its domain. It exists so the engine is
// runnable without an externally supplied table; production tables are
// expected to be supplied by the CSV loader, which is out of scope here.
func DefaultMortalityTable() MortalityTable {
	qx := map[policy.Gender]map[int]float64{
		policy.Male:   {},
		policy.Female: {},
	}
	for age := 18; age <= 120; age++ {
		// A simple Gompertz-like curve: rises smoothly with age and is
		// capped at 1.
		base := 0.0005 * math.Pow(1.095, float64(age-18))
		if base > 1 {
			base = 1
		}
		qx[policy.Male][age] = math.Min(1, base*1.1)
		qx[policy.Female][age] = math.Min(1, base*0.9)
	}
	return NewMortalityTable(qx, nil)
}
