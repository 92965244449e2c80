package assumptions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/fiacost/assumptions"
)

func TestCalculateMonthOne_Young(t *testing.T) {
	t.Parallel()
	c := assumptions.DefaultCommissionAssumptions()

	m1 := c.CalculateMonthOne(65, 100_000)

	require.InDelta(t, 7_000, m1.AgentCommission, 1e-6)
	require.InDelta(t, 2_700, m1.IMO.Override, 1e-6)
	require.InDelta(t, 360, m1.Wholesaler.Override, 1e-6)
}

func TestCalculateMonthOne_Old(t *testing.T) {
	t.Parallel()
	c := assumptions.DefaultCommissionAssumptions()

	m1 := c.CalculateMonthOne(76, 100_000)

	require.InDelta(t, 4_500, m1.AgentCommission, 1e-6)
	require.InDelta(t, 1_457.14, m1.IMO.Gross, 0.01)
	require.InDelta(t, 1_092.86, m1.IMO.Override, 0.01)
	require.InDelta(t, 364.28, m1.IMO.ConversionOwed, 0.01)
}

func TestIsYoung_BoundaryAtThreshold(t *testing.T) {
	t.Parallel()
	c := assumptions.DefaultCommissionAssumptions()

	require.True(t, c.IsYoung(75))
	require.False(t, c.IsYoung(76))
}

func TestOverrideSplit_SumsToGross(t *testing.T) {
	t.Parallel()
	c := assumptions.DefaultCommissionAssumptions()
	m1 := c.CalculateMonthOne(70, 250_000)

	require.InDelta(t, m1.IMO.Gross, m1.IMO.Override+m1.IMO.ConversionOwed, 1e-9)
	require.InDelta(t, m1.Wholesaler.Gross, m1.Wholesaler.Override+m1.Wholesaler.ConversionOwed, 1e-9)
}

func TestBonusComp_Young(t *testing.T) {
	t.Parallel()
	c := assumptions.DefaultCommissionAssumptions()

	require.InDelta(t, 0.5, c.BonusComp(65, 100), 1e-9)
}

func TestChargebackFactor(t *testing.T) {
	t.Parallel()
	c := assumptions.DefaultCommissionAssumptions()

	require.Equal(t, 1.0, c.ChargebackFactor(3))
	require.Equal(t, 1.0, c.ChargebackFactor(6))
	require.Equal(t, 0.5, c.ChargebackFactor(7))
	require.Equal(t, 0.5, c.ChargebackFactor(12))
	require.Equal(t, 0.0, c.ChargebackFactor(13))
	require.Equal(t, 0.0, c.ChargebackFactor(1))
}
