package projector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/cashflow"
	"github.com/meenmo/fiacost/policy"
	"github.com/meenmo/fiacost/projector"
)

func TestProject_ReturnsExactlyRequestedMonths(t *testing.T) {
	t.Parallel()

	p := policy.Policy{
		IssueAge: 65, Gender: policy.Male, QualStatus: policy.NonQualified,
		InitialPremium: 100_000, InitialBenefitBase: 130_000, InitialPols: 1,
		CreditingStrategy: policy.Fixed, SCPeriod: 120, Bonus: 0.30,
		RollupType: policy.Simple, GLWBStartYear: 11,
	}
	rows := projector.Project(p, assumptions.Default(), cashflow.Default(), 24)
	require.Len(t, rows, 24)
	require.Equal(t, 1, rows[0].Month)
	require.Equal(t, 24, rows[23].Month)
}

func TestProject_LivesNonIncreasing(t *testing.T) {
	t.Parallel()

	p := policy.Policy{
		IssueAge: 75, Gender: policy.Female, QualStatus: policy.Qualified,
		InitialPremium: 100_000, InitialBenefitBase: 130_000, InitialPols: 1000,
		CreditingStrategy: policy.Indexed, SCPeriod: 120, Bonus: 0.30,
		RollupType: policy.Compound, GLWBStartYear: 11,
	}
	rows := projector.Project(p, assumptions.Default(), cashflow.Default(), 36)

	for i := 1; i < len(rows); i++ {
		require.LessOrEqual(t, rows[i].Lives, rows[i-1].Lives)
	}
}

func TestProject_SinglePolicy_LivesNeverExceedInitial(t *testing.T) {
	t.Parallel()

	p := policy.Policy{
		IssueAge: 60, Gender: policy.Male, QualStatus: policy.NonQualified,
		InitialPremium: 50_000, InitialBenefitBase: 65_000, InitialPols: 1,
		CreditingStrategy: policy.Fixed, SCPeriod: 120, Bonus: 0.30,
		RollupType: policy.Simple, GLWBStartYear: 11,
	}
	rows := projector.Project(p, assumptions.Default(), cashflow.Default(), 12)
	for _, r := range rows {
		require.LessOrEqual(t, r.Lives, p.InitialPols)
		require.GreaterOrEqual(t, r.Lives, 0.0)
	}
}
