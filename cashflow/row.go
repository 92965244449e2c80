// Package cashflow implements the per-policy decrement and cashflow
// kernel: given a policy's current roll-forward state and the
// assumption tables, it derives one month's dollar cashflow breakdown
// and advances the state to the next month.
package cashflow

// Row is one projected month's cashflow breakdown, for one policy or
// summed across a block.
type Row struct {
	Month int

	BOPAV float64
	BOPBB float64
	Lives float64

	Mortality float64
	Lapse     float64
	PWD       float64

	RiderCharges      float64
	SurrenderCharges  float64
	Interest          float64
	EOPAV             float64
	Expenses          float64

	AgentCommission          float64
	IMOOverride              float64
	IMOConversionOwed        float64
	WholesalerOverride       float64
	WholesalerConversionOwed float64
	BonusComp                float64
	Chargebacks              float64

	NetIndexCreditReimbursement float64
	HedgeGains                  float64

	TotalNetCashflow float64
}

// Add accumulates o's fields into the receiver, field by field. Used by
// the aggregator to sum per-policy rows into a block-level series.
func (r *Row) Add(o Row) {
	r.BOPAV += o.BOPAV
	r.BOPBB += o.BOPBB
	r.Lives += o.Lives
	r.Mortality += o.Mortality
	r.Lapse += o.Lapse
	r.PWD += o.PWD
	r.RiderCharges += o.RiderCharges
	r.SurrenderCharges += o.SurrenderCharges
	r.Interest += o.Interest
	r.EOPAV += o.EOPAV
	r.Expenses += o.Expenses
	r.AgentCommission += o.AgentCommission
	r.IMOOverride += o.IMOOverride
	r.IMOConversionOwed += o.IMOConversionOwed
	r.WholesalerOverride += o.WholesalerOverride
	r.WholesalerConversionOwed += o.WholesalerConversionOwed
	r.BonusComp += o.BonusComp
	r.Chargebacks += o.Chargebacks
	r.NetIndexCreditReimbursement += o.NetIndexCreditReimbursement
	r.HedgeGains += o.HedgeGains
	r.TotalNetCashflow += o.TotalNetCashflow
}
