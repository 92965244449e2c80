package cashflow

import (
	"math"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/policy"
)

// hedgeGainCashflows fills in HedgeGains and NetIndexCreditReimbursement
// for one month of an Indexed policy. Fixed policies never call this;
// the kernel leaves both fields at their zero value for Fixed.
func hedgeGainCashflows(p policy.Policy, hedge assumptions.HedgeAssumptions, st *policy.State, cfg Config, avPersistency float64, row *Row) {
	rateMult := 1.0
	if st.PolicyYear > 10 {
		rateMult = 0.5
	}
	netApp := hedge.NetAppreciation()

	var reimbursement float64
	if st.PolicyYear > 1 && st.MonthInPolicyYear == 1 {
		indexedRate := cfg.IndexedAnnualRate + cfg.TreasuryChange
		// Preserved as specified: a negative reimbursement (when the
		// credited rate undershoots the option budget's implied
		// appreciation) is not floored and flows straight into
		// hedge_gains below.
		reimbursement = st.BOPAV * (indexedRate - hedge.OptionBudget*(1+hedge.Appreciation)) * rateMult
	}
	row.NetIndexCreditReimbursement = reimbursement

	decrementedShare := st.BOPAV * (1 - avPersistency)
	row.HedgeGains = decrementedShare*hedge.OptionBudget*rateMult*math.Pow(netApp, float64(st.MonthInPolicyYear)/12) + reimbursement
}
