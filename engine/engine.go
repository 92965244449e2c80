// Package engine wires the assumption tables, the parallel aggregator,
// and the IRR solver into the single pure entrypoint described by spec
// §2: (policies, assumptions, config) -> (aggregated cashflows,
// cost of funds, ceding commission).
package engine

import (
	"context"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/aggregator"
	"github.com/meenmo/fiacost/cashflow"
	"github.com/meenmo/fiacost/inforce"
	"github.com/meenmo/fiacost/irr"
	"github.com/meenmo/fiacost/policy"
)

// Request is the JSON request envelope, spec §6.
type Request struct {
	ProjectionMonths   int      `json:"projection_months"`
	FixedAnnualRate    float64  `json:"fixed_annual_rate"`
	IndexedAnnualRate  float64  `json:"indexed_annual_rate"`
	TreasuryChange     float64  `json:"treasury_change"`
	BBBRate            *float64 `json:"bbb_rate"`
	Spread             float64  `json:"spread"`
	UseDynamicInforce  bool     `json:"use_dynamic_inforce"`
	InforceFixedPct    float64  `json:"inforce_fixed_pct"`
	InforceMaleMult    float64  `json:"inforce_male_mult"`
	InforceFemaleMult  float64  `json:"inforce_female_mult"`
	InforceQualMult    float64  `json:"inforce_qual_mult"`
	InforceNonqualMult float64  `json:"inforce_nonqual_mult"`
	InforceBBBonus     float64  `json:"inforce_bb_bonus"`
	RollupRate         float64  `json:"rollup_rate"`
}

// DefaultRequest returns the request defaults listed in spec §6.
func DefaultRequest() Request {
	return Request{
		ProjectionMonths:   768,
		FixedAnnualRate:    0.0275,
		IndexedAnnualRate:  0.0378,
		TreasuryChange:     0,
		BBBRate:            nil,
		Spread:             0,
		UseDynamicInforce:  false,
		InforceFixedPct:    0.25,
		InforceMaleMult:    1.0,
		InforceFemaleMult:  1.0,
		InforceQualMult:    1.0,
		InforceNonqualMult: 1.0,
		InforceBBBonus:     0.30,
		RollupRate:         0.10,
	}
}

// CashflowRow is the JSON cashflow row, spec §3.
type CashflowRow struct {
	Month int `json:"month"`

	BOPAV float64 `json:"bop_av"`
	BOPBB float64 `json:"bop_bb"`
	Lives float64 `json:"lives"`

	Mortality float64 `json:"mortality"`
	Lapse     float64 `json:"lapse"`
	PWD       float64 `json:"pwd"`

	RiderCharges     float64 `json:"rider_charges"`
	SurrenderCharges float64 `json:"surrender_charges"`
	Interest         float64 `json:"interest"`
	EOPAV            float64 `json:"eop_av"`
	Expenses         float64 `json:"expenses"`

	AgentCommission          float64 `json:"agent_commission"`
	IMOOverride              float64 `json:"imo_override"`
	IMOConversionOwed        float64 `json:"imo_conversion_owed"`
	WholesalerOverride       float64 `json:"wholesaler_override"`
	WholesalerConversionOwed float64 `json:"wholesaler_conversion_owed"`
	BonusComp                float64 `json:"bonus_comp"`
	Chargebacks              float64 `json:"chargebacks"`

	NetIndexCreditReimbursement float64 `json:"net_index_credit_reimbursement"`
	HedgeGains                  float64 `json:"hedge_gains"`

	TotalNetCashflow float64 `json:"total_net_cashflow"`
}

func toJSONRow(r cashflow.Row) CashflowRow {
	return CashflowRow{
		Month:                       r.Month,
		BOPAV:                       r.BOPAV,
		BOPBB:                       r.BOPBB,
		Lives:                       r.Lives,
		Mortality:                   r.Mortality,
		Lapse:                       r.Lapse,
		PWD:                         r.PWD,
		RiderCharges:                r.RiderCharges,
		SurrenderCharges:            r.SurrenderCharges,
		Interest:                    r.Interest,
		EOPAV:                       r.EOPAV,
		Expenses:                    r.Expenses,
		AgentCommission:             r.AgentCommission,
		IMOOverride:                 r.IMOOverride,
		IMOConversionOwed:           r.IMOConversionOwed,
		WholesalerOverride:          r.WholesalerOverride,
		WholesalerConversionOwed:    r.WholesalerConversionOwed,
		BonusComp:                   r.BonusComp,
		Chargebacks:                 r.Chargebacks,
		NetIndexCreditReimbursement: r.NetIndexCreditReimbursement,
		HedgeGains:                  r.HedgeGains,
		TotalNetCashflow:            r.TotalNetCashflow,
	}
}

// CedingCommission is the optional ceding-commission block, spec §6.
type CedingCommission struct {
	NPV           float64 `json:"npv"`
	BBBRatePct    float64 `json:"bbb_rate_pct"`
	SpreadPct     float64 `json:"spread_pct"`
	TotalRatePct  float64 `json:"total_rate_pct"`
}

// Summary is the block-level summary, spec §6.
type Summary struct {
	TotalPremium       float64 `json:"total_premium"`
	TotalInitialAV     float64 `json:"total_initial_av"`
	TotalInitialBB     float64 `json:"total_initial_bb"`
	TotalInitialLives  float64 `json:"total_initial_lives"`
	TotalNetCashflows  float64 `json:"total_net_cashflows"`
	Month1Cashflow     float64 `json:"month_1_cashflow"`
	FinalLives         float64 `json:"final_lives"`
	FinalAV            float64 `json:"final_av"`
}

// Response is the JSON response envelope, spec §6.
type Response struct {
	CostOfFundsPct    *float64          `json:"cost_of_funds_pct"`
	CedingCommission  *CedingCommission `json:"ceding_commission,omitempty"`
	PolicyCount       int               `json:"policy_count"`
	ProjectionMonths  int               `json:"projection_months"`
	Summary           Summary           `json:"summary"`
	Cashflows         []CashflowRow     `json:"cashflows"`
	ExecutionTimeMS   int64             `json:"execution_time_ms"`
	Error             string            `json:"error,omitempty"`
}

// Run is the pure entrypoint: given a request, a base policy block, and
// an assumption set, it projects, aggregates, and solves, returning the
// full response. elapsed is supplied by the caller (e.g. measured at
// the CLI boundary) rather than read from a clock inside this package,
// keeping Run free of wall-clock side effects.
func Run(ctx context.Context, req Request, policies []policy.Policy, a assumptions.Assumptions, elapsed int64) (Response, error) {
	months := req.ProjectionMonths
	if months <= 0 {
		return Response{}, newError(ConfigurationError, "projection_months must be positive, got %d", months)
	}

	book := policies
	if req.UseDynamicInforce {
		book = inforce.Adjust(policies, inforce.AdjustmentParams{
			FixedPct:      req.InforceFixedPct,
			MaleMult:      req.InforceMaleMult,
			FemaleMult:    req.InforceFemaleMult,
			QualMult:      req.InforceQualMult,
			NonQualMult:   req.InforceNonqualMult,
			BBBonus:       req.InforceBBBonus,
			TargetPremium: sumPremium(policies),
		})
	}

	cfg := cashflow.Default()
	cfg.FixedAnnualRate = req.FixedAnnualRate
	cfg.IndexedAnnualRate = req.IndexedAnnualRate
	cfg.TreasuryChange = req.TreasuryChange
	cfg.RollupRate = req.RollupRate

	rows, err := aggregator.Run(ctx, book, a, cfg, months)
	if err != nil {
		return Response{}, newError(NumericError, "block projection failed: %w", err)
	}

	netCashflows := make([]float64, months)
	var totalNet float64
	for i, r := range rows {
		netCashflows[i] = r.TotalNetCashflow
		totalNet += r.TotalNetCashflow
	}

	var costOfFundsPct *float64
	if v, ok := irr.CostOfFunds(netCashflows, irr.DefaultConfig()); ok {
		costOfFundsPct = &v
	}

	var ceding *CedingCommission
	if req.BBBRate != nil {
		npv := irr.CedingCommissionNPV(netCashflows, *req.BBBRate, req.Spread)
		ceding = &CedingCommission{
			NPV:          npv,
			BBBRatePct:   *req.BBBRate * 100,
			SpreadPct:    req.Spread * 100,
			TotalRatePct: (*req.BBBRate + req.Spread) * 100,
		}
	}

	jsonRows := make([]CashflowRow, months)
	for i, r := range rows {
		jsonRows[i] = toJSONRow(r)
	}

	summary := Summary{
		TotalPremium:      sumPremium(book),
		TotalInitialAV:     sumPremium(book),
		TotalInitialBB:     sumBB(book),
		TotalInitialLives:  sumLives(book),
		TotalNetCashflows:  totalNet,
		Month1Cashflow:     rows[0].TotalNetCashflow,
		FinalLives:         rows[months-1].Lives,
		FinalAV:            rows[months-1].EOPAV,
	}

	return Response{
		CostOfFundsPct:   costOfFundsPct,
		CedingCommission: ceding,
		PolicyCount:      len(book),
		ProjectionMonths: months,
		Summary:          summary,
		Cashflows:        jsonRows,
		ExecutionTimeMS:  elapsed,
	}, nil
}

func sumPremium(policies []policy.Policy) float64 {
	var total float64
	for _, p := range policies {
		total += p.InitialPremium
	}
	return total
}

func sumBB(policies []policy.Policy) float64 {
	var total float64
	for _, p := range policies {
		total += p.InitialBenefitBase
	}
	return total
}

func sumLives(policies []policy.Policy) float64 {
	var total float64
	for _, p := range policies {
		total += p.InitialPols
	}
	return total
}
