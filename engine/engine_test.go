package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/engine"
	"github.com/meenmo/fiacost/policy"
)

func samplePolicies() []policy.Policy {
	return []policy.Policy{
		{
			PolicyID: 1, IssueAge: 65, Gender: policy.Male, QualStatus: policy.NonQualified,
			InitialPremium: 100_000, InitialBenefitBase: 130_000, InitialPols: 1,
			CreditingStrategy: policy.Fixed, SCPeriod: 120, Bonus: 0.30,
			RollupType: policy.Simple, GLWBStartYear: 11,
		},
		{
			PolicyID: 2, IssueAge: 65, Gender: policy.Female, QualStatus: policy.Qualified,
			InitialPremium: 200_000, InitialBenefitBase: 260_000, InitialPols: 1,
			CreditingStrategy: policy.Indexed, SCPeriod: 120, Bonus: 0.30,
			RollupType: policy.Simple, GLWBStartYear: 11,
		},
	}
}

func TestRun_BBBRateNil_OmitsCedingCommission(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 24
	req.BBBRate = nil

	resp, err := engine.Run(context.Background(), req, samplePolicies(), assumptions.Default(), 0)
	require.NoError(t, err)
	require.Nil(t, resp.CedingCommission)
}

func TestRun_BBBRateSet_IncludesCedingCommission(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 24
	rate := 0.05
	req.BBBRate = &rate
	req.Spread = 0.01

	resp, err := engine.Run(context.Background(), req, samplePolicies(), assumptions.Default(), 0)
	require.NoError(t, err)
	require.NotNil(t, resp.CedingCommission)
	require.InDelta(t, 6.0, resp.CedingCommission.TotalRatePct, 1e-9)
}

func TestRun_SingleMonth_CostOfFundsUndefined(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 1

	resp, err := engine.Run(context.Background(), req, samplePolicies(), assumptions.Default(), 0)
	require.NoError(t, err)
	require.Len(t, resp.Cashflows, 1)
	require.Nil(t, resp.CostOfFundsPct)
}

func TestRun_NonPositiveProjectionMonths_IsConfigurationError(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 0

	_, err := engine.Run(context.Background(), req, samplePolicies(), assumptions.Default(), 0)
	require.Error(t, err)

	var engErr *engine.Error
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, engine.ConfigurationError, engErr.Kind)
}

func TestRun_SummaryTotalsMatchInputBlock(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 12

	policies := samplePolicies()
	resp, err := engine.Run(context.Background(), req, policies, assumptions.Default(), 0)
	require.NoError(t, err)

	require.InDelta(t, 300_000, resp.Summary.TotalPremium, 1e-6)
	require.InDelta(t, 390_000, resp.Summary.TotalInitialBB, 1e-6)
	require.InDelta(t, 2, resp.Summary.TotalInitialLives, 1e-6)
	require.Equal(t, 2, resp.PolicyCount)
	require.Equal(t, 12, resp.ProjectionMonths)
}

func TestRun_DynamicInforce_PreservesTotalPremium(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 12
	req.UseDynamicInforce = true
	req.InforceFixedPct = 0.5

	policies := samplePolicies()
	resp, err := engine.Run(context.Background(), req, policies, assumptions.Default(), 0)
	require.NoError(t, err)

	var originalTotal float64
	for _, p := range policies {
		originalTotal += p.InitialPremium
	}
	require.InDelta(t, originalTotal, resp.Summary.TotalPremium, 1e-3)
}

func TestRun_ExecutionTimeMSIsPassedThrough(t *testing.T) {
	t.Parallel()

	req := engine.DefaultRequest()
	req.ProjectionMonths = 1

	resp, err := engine.Run(context.Background(), req, samplePolicies(), assumptions.Default(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.ExecutionTimeMS)
}
