// Package inforce reshapes a base block of policies to hit target
// distributional and premium parameters. It is a pure transform: it
// never loads or persists CSVs itself (that boundary is external to
// the core, per spec §1), only reshapes an already-loaded slice.
package inforce

import "github.com/meenmo/fiacost/policy"

// baseFixedPct and baseBBBonus are the base inforce block's built-in
// mix: 25% Fixed / 75% Indexed and a 30% benefit-base bonus. The
// adjuster's scale factors are all relative to these.
const (
	baseFixedPct = 0.25
	baseBBBonus  = 0.30
)

// AdjustmentParams controls how the dynamic inforce adjuster reshapes
// a base block, per spec §4.7.
type AdjustmentParams struct {
	FixedPct     float64
	MaleMult     float64
	FemaleMult   float64
	QualMult     float64
	NonQualMult  float64
	BBBonus      float64
	TargetPremium float64
}

// DefaultAdjustmentParams returns the no-op parameter set: the base
// block's own mix and bonus, and its own $100M total premium.
func DefaultAdjustmentParams() AdjustmentParams {
	return AdjustmentParams{
		FixedPct:      baseFixedPct,
		MaleMult:      1.0,
		FemaleMult:    1.0,
		QualMult:      1.0,
		NonQualMult:   1.0,
		BBBonus:       baseBBBonus,
		TargetPremium: 100_000_000.0,
	}
}

// Adjust rescales a block of policies by strategy mix, gender/tax-status
// multipliers, benefit-base bonus, and target premium. The input slice
// is not mutated; a new slice of adjusted copies is returned.
//
// Each policy's weight is strategy_scale × gender_mult × qual_mult.
// Strategy scale redistributes Fixed/Indexed premium shares toward
// FixedPct while leaving each policy's individual share within its
// strategy untouched. A second pass rescales every initial_* field so
// the block's total premium lands on TargetPremium, and rescales the
// benefit base further by (1 + BBBonus) / (1 + 30%), the base bonus.
func Adjust(policies []policy.Policy, params AdjustmentParams) []policy.Policy {
	fixedScale := params.FixedPct / baseFixedPct
	indexedScale := (1 - params.FixedPct) / (1 - baseFixedPct)

	weight := func(p policy.Policy) float64 {
		w := 1.0
		if p.CreditingStrategy == policy.Fixed {
			w *= fixedScale
		} else {
			w *= indexedScale
		}
		if p.Gender == policy.Male {
			w *= params.MaleMult
		} else {
			w *= params.FemaleMult
		}
		if p.QualStatus == policy.Qualified {
			w *= params.QualMult
		} else {
			w *= params.NonQualMult
		}
		return w
	}

	var totalWeighted float64
	for _, p := range policies {
		totalWeighted += p.InitialPremium * weight(p)
	}

	premiumScale := 1.0
	if totalWeighted > 0 {
		premiumScale = params.TargetPremium / totalWeighted
	}

	bbBonusFactor := (1 + params.BBBonus) / (1 + baseBBBonus)

	out := make([]policy.Policy, len(policies))
	for i, p := range policies {
		w := weight(p)
		totalScale := w * premiumScale

		adjusted := p
		adjusted.InitialPremium = p.InitialPremium * totalScale
		adjusted.InitialPols = p.InitialPols * totalScale
		adjusted.InitialBenefitBase = p.InitialBenefitBase * totalScale * bbBonusFactor

		if params.BBBonus != baseBBBonus {
			adjusted.Bonus = params.BBBonus
		}

		out[i] = adjusted
	}
	return out
}
