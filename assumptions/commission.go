package assumptions

// CommissionAssumptions defines the distribution compensation schedule:
// age-banded agent commission and IMO/wholesaler gross override rates,
// the conversion rates that split each override into a paid piece and
// a contingent "conversion owed" piece, the month-13 bonus rate, and
// the chargeback schedule applied against policy-year-1 lapses.
type CommissionAssumptions struct {
	// AgeThreshold: issue_age <= AgeThreshold draws the young schedule.
	AgeThreshold int

	AgentYoungRate float64
	AgentOldRate   float64

	// IMOYoungGrossRate and WholesalerYoungGrossRate are the young
	// override rates, applied directly to premium. The old schedule has
	// no separate per-override rate: a single combined override rate is
	// split proportionally using the young rates as weights.
	IMOYoungGrossRate        float64
	WholesalerYoungGrossRate float64
	OldOverrideGrossRate     float64

	IMOConversionRate        float64
	WholesalerConversionRate float64

	// BonusRate is the month-13 bonus rate for young policies; old
	// policies scale it by AgentOldRate/AgentYoungRate.
	BonusRate float64

	// ChargebackMonth6Factor and ChargebackMonth12Factor are the
	// chargeback factors for months 2-6 and 7-12 of policy year 1.
	ChargebackMonth6Factor  float64
	ChargebackMonth12Factor float64
}

// DefaultCommissionAssumptions returns the built-in compensation
// schedule, transcribed from the original pricing model's commission
// sheet.
func DefaultCommissionAssumptions() CommissionAssumptions {
	return CommissionAssumptions{
		AgeThreshold:             75,
		AgentYoungRate:           0.07,
		AgentOldRate:             0.045,
		IMOYoungGrossRate:        0.036,
		WholesalerYoungGrossRate: 0.006,
		OldOverrideGrossRate:     0.017,
		IMOConversionRate:        0.25,
		WholesalerConversionRate: 0.40,
		BonusRate:                0.005,
		ChargebackMonth6Factor:   1.0,
		ChargebackMonth12Factor:  0.5,
	}
}

// IsYoung reports whether an issue age draws the young commission
// schedule. Exactly issue_age == AgeThreshold is young.
func (c CommissionAssumptions) IsYoung(issueAge int) bool {
	return issueAge <= c.AgeThreshold
}

// OverridePiece is one override line: the gross rate applied, the
// portion paid immediately, and the portion owed contingently.
type OverridePiece struct {
	Gross          float64
	Override       float64
	ConversionOwed float64
}

// MonthOneCommission is the full month-1 commission calculation for
// one policy.
type MonthOneCommission struct {
	AgentCommission float64
	IMO             OverridePiece
	Wholesaler      OverridePiece

	// FirstMonthTotalCommission is agent + net IMO override + net
	// wholesaler override; memoized by the caller for chargebacks.
	FirstMonthTotalCommission float64
}

// CalculateMonthOne computes the month-1 commission for a policy given
// its issue age and initial premium.
func (c CommissionAssumptions) CalculateMonthOne(issueAge int, premium float64) MonthOneCommission {
	young := c.IsYoung(issueAge)

	var agentRate, imoGrossRate, wholesalerGrossRate float64
	if young {
		agentRate = c.AgentYoungRate
		imoGrossRate = c.IMOYoungGrossRate
		wholesalerGrossRate = c.WholesalerYoungGrossRate
	} else {
		agentRate = c.AgentOldRate
		denom := c.IMOYoungGrossRate + c.WholesalerYoungGrossRate
		imoShare := c.IMOYoungGrossRate / denom
		wholesalerShare := c.WholesalerYoungGrossRate / denom
		imoGrossRate = c.OldOverrideGrossRate * imoShare
		wholesalerGrossRate = c.OldOverrideGrossRate * wholesalerShare
	}

	imoGross := premium * imoGrossRate
	wholesalerGross := premium * wholesalerGrossRate

	imo := OverridePiece{
		Gross:          imoGross,
		Override:       imoGross * (1 - c.IMOConversionRate),
		ConversionOwed: imoGross * c.IMOConversionRate,
	}
	wholesaler := OverridePiece{
		Gross:          wholesalerGross,
		Override:       wholesalerGross * (1 - c.WholesalerConversionRate),
		ConversionOwed: wholesalerGross * c.WholesalerConversionRate,
	}

	agentCommission := premium * agentRate

	return MonthOneCommission{
		AgentCommission:           agentCommission,
		IMO:                       imo,
		Wholesaler:                wholesaler,
		FirstMonthTotalCommission: agentCommission + imo.Override + wholesaler.Override,
	}
}

// BonusComp returns the month-13 bonus commission for a policy, given
// its issue age and month-13 BOP account value.
func (c CommissionAssumptions) BonusComp(issueAge int, bopAV float64) float64 {
	rate := c.BonusRate
	if !c.IsYoung(issueAge) {
		rate = c.BonusRate * (c.AgentOldRate / c.AgentYoungRate)
	}
	return bopAV * rate
}

// ChargebackFactor returns the chargeback fraction for a given policy
// month (only defined within policy year 1: months 2-12 of the policy,
// i.e. projection months 2-12 since year 1 starts at month 1).
func (c CommissionAssumptions) ChargebackFactor(projectionMonth int) float64 {
	switch {
	case projectionMonth <= 1:
		return 0
	case projectionMonth <= 6:
		return c.ChargebackMonth6Factor
	case projectionMonth <= 12:
		return c.ChargebackMonth12Factor
	default:
		return 0
	}
}
