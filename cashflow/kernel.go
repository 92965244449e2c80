package cashflow

import (
	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/policy"
)

// Step projects one month for one policy: given the current state, the
// assumption tables, and the run configuration, it computes the
// month's cashflow row and mutates state with the month's EOP values.
// The caller is responsible for calling state.Advance() afterward to
// roll EOP into next month's BOP.
//
// The ten numbered steps below follow the fixed ordering the kernel
// must respect; reordering them changes results.
func Step(p policy.Policy, a assumptions.Assumptions, cfg Config, st *policy.State) Row {
	if st.Lives < 1e-9 {
		st.EOPAV = st.BOPAV
		st.EOPBB = st.BOPBB
		return Row{Month: st.ProjectionMonth}
	}

	row := Row{
		Month: st.ProjectionMonth,
		BOPAV: st.BOPAV,
		BOPBB: st.BOPBB,
		Lives: st.Lives,
	}

	attainedAge := p.AttainedAge(st.PolicyYear)
	duration := st.PolicyYear - 1
	glwbStartYear := p.GLWBStartYear
	if glwbStartYear <= 0 {
		glwbStartYear = a.GLWB.WithdrawalWaitYears + 1
	}
	incomeActivated := st.PolicyYear >= glwbStartYear

	// Step 2: monthly decrement rates.
	qMort, err := a.Mortality.MonthlyRate(p.Gender, attainedAge, duration)
	if err != nil {
		qMort = 0
	}

	itm := itmOf(st.BOPBB, st.BOPAV, cfg.ITMFloor)
	inShockYear := st.ProjectionMonth > p.SCPeriod-12 && st.ProjectionMonth <= p.SCPeriod
	qLapse, err := a.Lapse.MonthlyRate(st.ProjectionMonth, itm, inShockYear)
	if err != nil {
		qLapse = 0
	}

	qPWD := a.PWD.MonthlyRate(st.PolicyYear, attainedAge, p.QualStatus, incomeActivated)

	// Step 3 & 4: decremented-dollar cashflows and rider charge, all on
	// bop_av. Step 2's edge case: bop_av <= 0 zeroes every AV-
	// proportional cashflow; lives still decrement below.
	scRate := a.Product.SurrenderCharges.Rate(st.PolicyYear)
	if st.PolicyYear > p.SCPeriod/12 {
		scRate = 0
	}

	var mortalityAmt, lapsePaid, lapseFull, pwdAmt, riderCharge float64
	if st.BOPAV > 0 {
		mortalityAmt = st.BOPAV * qMort
		lapseFull = st.BOPAV * qLapse
		lapsePaid = lapseFull * (1 - scRate)
		pwdAmt = st.BOPAV * qPWD
		riderCharge = cfg.RiderChargeRate * st.BOPBB * st.Lives / 12
	}
	surrenderCharge := lapseFull - lapsePaid

	decrementedAV := st.BOPAV - mortalityAmt - lapseFull - pwdAmt - riderCharge
	if decrementedAV < 0 {
		decrementedAV = 0
	}

	// Step 5: credit interest on post-decrement AV.
	var interest float64
	switch p.CreditingStrategy {
	case policy.Indexed:
		if st.MonthInPolicyYear == 12 {
			interest = decrementedAV * (cfg.IndexedAnnualRate + cfg.TreasuryChange)
		}
	default:
		interest = decrementedAV * (cfg.FixedAnnualRate + cfg.TreasuryChange) / 12
	}

	// Step 6: eop_av and av_persistency.
	eopAV := decrementedAV + interest
	avPersistency := 0.0
	if st.BOPAV > 0 {
		avPersistency = eopAV / st.BOPAV
	}

	// Step 7: expense.
	expense := eopAV * a.Product.ExpenseRateOfAV / 12

	row.Mortality = mortalityAmt
	row.Lapse = lapsePaid
	row.PWD = pwdAmt
	row.RiderCharges = riderCharge
	row.SurrenderCharges = surrenderCharge
	row.Interest = interest
	row.EOPAV = eopAV
	row.Expenses = expense

	// Step 8: commissions.
	livesLostAggregate := st.Lives * (qMort + qLapse + qPWD)
	livesLostLapseOnly := st.Lives * qLapse
	commissionCashflows(p, a.Commission, st, cfg, livesLostAggregate, livesLostLapseOnly, &row)

	// Step 9: hedge gains (Indexed only).
	if p.CreditingStrategy == policy.Indexed {
		hedgeGainCashflows(p, a.Hedge, st, cfg, avPersistency, &row)
	}

	// Step 10: net cashflow.
	premiumIn := 0.0
	if st.ProjectionMonth == 1 {
		premiumIn = p.InitialPremium
	}
	row.TotalNetCashflow = premiumIn -
		row.Mortality - row.Lapse - row.PWD +
		row.RiderCharges + row.SurrenderCharges -
		row.Expenses -
		row.AgentCommission - row.IMOOverride - row.WholesalerOverride - row.BonusComp +
		row.Chargebacks +
		row.HedgeGains

	// Lives roll forward using the same decrement rates applied to bop
	// lives (spec §3: lives is non-increasing, derived from the same
	// q_mort/q_lapse/q_pwd used for the dollar cashflows above).
	newLives := st.Lives * (1 - qMort - qLapse - qPWD)
	if newLives < 0 {
		newLives = 0
	}

	// Benefit-base rollup at the policy-year boundary.
	eopBB := st.BOPBB
	if st.MonthInPolicyYear == 12 && a.GLWB.InRollupPeriod(st.PolicyYear) {
		eopBB = rollupEOPBB(p, cfg.RollupRate, st.PolicyYear, st.BOPBB)
	}

	st.EOPAV = eopAV
	st.EOPBB = eopBB
	st.Lives = newLives
	st.AVPersistency = avPersistency
	if st.InitialLivesRef > 0 {
		st.LivesPersistency = newLives / st.InitialLivesRef
	}

	return row
}

// itmOf computes the in-the-moneyness ratio bb/av - 1, floored at a
// minimum denominator to avoid dividing by (near-)zero account value.
func itmOf(bb, av, floor float64) float64 {
	denom := av
	if denom < floor {
		denom = floor
	}
	return bb/denom - 1
}
