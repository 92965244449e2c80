package cashflow

import (
	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/policy"
)

// commissionCashflows fills in the commission-related Row fields for one
// month: month-1 issue commission, month-13 bonus, and policy-year-1
// chargebacks. livesLostAggregate and livesLostLapseOnly are the two
// candidate bases for the chargeback formula (spec §9 open question
// (a)); cfg.ChargebackBasis selects which one is used.
func commissionCashflows(
	p policy.Policy,
	comm assumptions.CommissionAssumptions,
	st *policy.State,
	cfg Config,
	livesLostAggregate, livesLostLapseOnly float64,
	row *Row,
) {
	switch st.ProjectionMonth {
	case 1:
		m1 := comm.CalculateMonthOne(p.IssueAge, p.InitialPremium)
		row.AgentCommission = m1.AgentCommission
		row.IMOOverride = m1.IMO.Override
		row.IMOConversionOwed = m1.IMO.ConversionOwed
		row.WholesalerOverride = m1.Wholesaler.Override
		row.WholesalerConversionOwed = m1.Wholesaler.ConversionOwed
		st.FirstMonthTotalCommission = m1.FirstMonthTotalCommission

	case 13:
		row.BonusComp = comm.BonusComp(p.IssueAge, st.BOPAV)
	}

	if st.ProjectionMonth >= 2 && st.ProjectionMonth <= 12 {
		livesLost := livesLostAggregate
		if cfg.ChargebackBasis == ChargebackBasisLapseOnly {
			livesLost = livesLostLapseOnly
		}
		factor := comm.ChargebackFactor(st.ProjectionMonth)
		if st.InitialLivesRef > 0 {
			row.Chargebacks = (livesLost / st.InitialLivesRef) * st.FirstMonthTotalCommission * factor
		}
	}
}
