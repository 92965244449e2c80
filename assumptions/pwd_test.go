package assumptions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/policy"
)

func TestRMDTable_BelowAge73IsZero(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultRMDTable()
	require.Equal(t, 0.0, table.Rate(72))
}

func TestRMDTable_KnownValues(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultRMDTable()
	require.InDelta(t, 0.0377358491, table.Rate(73), 1e-9)
	require.InDelta(t, 0.5, table.Rate(120), 1e-9)
}

func TestRMDTable_AboveTopAgeUsesLastEntry(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultRMDTable()
	require.Equal(t, table.Rate(120), table.Rate(150))
}

func TestRMDTable_RateIfQualified_NonQualifiedIsZero(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultRMDTable()
	require.Equal(t, 0.0, table.RateIfQualified(90, policy.NonQualified))
	require.Greater(t, table.RateIfQualified(90, policy.Qualified), 0.0)
}

func TestPWD_MonthlyRate_PolicyYearOneIsZero(t *testing.T) {
	t.Parallel()
	p := assumptions.DefaultPWD()
	require.Equal(t, 0.0, p.MonthlyRate(1, 65, policy.NonQualified, false))
}

func TestPWD_MonthlyRate_IncomeActivatedIsZero(t *testing.T) {
	t.Parallel()
	p := assumptions.DefaultPWD()
	require.Equal(t, 0.0, p.MonthlyRate(5, 65, policy.NonQualified, true))
}

func TestPWD_QualifiedUsesGreaterOfFreeAndRMD(t *testing.T) {
	t.Parallel()
	p := assumptions.DefaultPWD()
	rateAtHighAge := p.AnnualRate(5, 90, policy.Qualified, false)
	rateNonQual := p.AnnualRate(5, 90, policy.NonQualified, false)
	require.Greater(t, rateAtHighAge, rateNonQual)
}
