// Package policy defines the immutable Policy type and its mutable
// per-month roll-forward State.
package policy

// QualStatus is the tax qualification of a policy's premium.
type QualStatus string

const (
	Qualified    QualStatus = "Qualified"
	NonQualified QualStatus = "NonQualified"
)

// Gender is the policyholder's gender, used for mortality lookups.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// CreditingStrategy selects the interest-crediting method.
type CreditingStrategy string

const (
	Fixed   CreditingStrategy = "Fixed"
	Indexed CreditingStrategy = "Indexed"
)

// RollupType selects the GLWB benefit-base rollup formula.
type RollupType string

const (
	Simple   RollupType = "Simple"
	Compound RollupType = "Compound"
)

// Policy is one inforce FIA/GLWB contract, immutable after loading.
type Policy struct {
	PolicyID int64

	QualStatus QualStatus
	IssueAge   int
	Gender     Gender

	// InitialBenefitBase, InitialPremium and InitialPols are all
	// non-negative. InitialPremium = InitialBenefitBase / (1 + Bonus).
	InitialBenefitBase float64
	InitialPremium     float64
	InitialPols        float64

	CreditingStrategy CreditingStrategy

	// SCPeriod is the surrender-charge period in months (typically 120).
	SCPeriod int

	// Bonus is the benefit-base bonus applied at issue.
	Bonus float64

	RollupType RollupType

	// GLWBStartYear is the policy year at which withdrawals begin.
	GLWBStartYear int
}

// WaitPeriod is the number of policy years before GLWB withdrawals begin.
func (p Policy) WaitPeriod() int {
	return p.GLWBStartYear - 1
}

// AttainedAge returns the policyholder's age at a given policy year
// (policy year 1 == issue age).
func (p Policy) AttainedAge(policyYear int) int {
	return p.IssueAge + policyYear - 1
}
