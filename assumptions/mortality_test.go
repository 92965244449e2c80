package assumptions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/policy"
)

func TestMortalityTable_OutOfDomainIsError(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultMortalityTable()
	_, err := table.AnnualRate(policy.Male, 10, 0)
	require.Error(t, err)
}

func TestMortalityTable_MonotoneIncreasingWithAge(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultMortalityTable()
	q65, err := table.AnnualRate(policy.Male, 65, 0)
	require.NoError(t, err)
	q85, err := table.AnnualRate(policy.Male, 85, 0)
	require.NoError(t, err)
	require.Greater(t, q85, q65)
}

func TestMortalityTable_MaleHigherThanFemale(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultMortalityTable()
	qm, err := table.AnnualRate(policy.Male, 70, 0)
	require.NoError(t, err)
	qf, err := table.AnnualRate(policy.Female, 70, 0)
	require.NoError(t, err)
	require.Greater(t, qm, qf)
}

func TestMortalityTable_MonthlyRateFormula(t *testing.T) {
	t.Parallel()
	table := assumptions.DefaultMortalityTable()
	annual, err := table.AnnualRate(policy.Male, 70, 0)
	require.NoError(t, err)
	monthly, err := table.MonthlyRate(policy.Male, 70, 0)
	require.NoError(t, err)
	require.Less(t, monthly, annual)
	require.InDelta(t, annual, 1-math.Pow(1-monthly, 12), 1e-9)
}
