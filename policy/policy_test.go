package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fiacost/policy"
)

func TestWaitPeriod(t *testing.T) {
	t.Parallel()
	p := policy.Policy{GLWBStartYear: 11}
	require.Equal(t, 10, p.WaitPeriod())
}

func TestAttainedAge(t *testing.T) {
	t.Parallel()
	p := policy.Policy{IssueAge: 65}
	require.Equal(t, 65, p.AttainedAge(1))
	require.Equal(t, 66, p.AttainedAge(2))
	require.Equal(t, 75, p.AttainedAge(11))
}

func TestNewState_SeedsFromPolicy(t *testing.T) {
	t.Parallel()
	p := policy.Policy{InitialPremium: 100_000, InitialBenefitBase: 130_000, InitialPols: 1}
	st := policy.NewState(p)

	require.Equal(t, 1, st.ProjectionMonth)
	require.Equal(t, 1, st.PolicyYear)
	require.Equal(t, 1, st.MonthInPolicyYear)
	require.Equal(t, 100_000.0, st.BOPAV)
	require.Equal(t, 130_000.0, st.BOPBB)
	require.Equal(t, 1.0, st.Lives)
}

func TestState_Advance_RollsYearAtMonth12(t *testing.T) {
	t.Parallel()
	p := policy.Policy{InitialPremium: 1, InitialBenefitBase: 1, InitialPols: 1}
	st := policy.NewState(p)
	st.EOPAV = 42
	st.EOPBB = 43

	for i := 0; i < 11; i++ {
		st.Advance()
	}

	require.Equal(t, 12, st.ProjectionMonth)
	require.Equal(t, 1, st.PolicyYear)
	require.Equal(t, 12, st.MonthInPolicyYear)

	st.Advance()
	require.Equal(t, 13, st.ProjectionMonth)
	require.Equal(t, 2, st.PolicyYear)
	require.Equal(t, 1, st.MonthInPolicyYear)
	require.Equal(t, 42.0, st.BOPAV)
	require.Equal(t, 43.0, st.BOPBB)
}
