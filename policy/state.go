package policy

// State is the mutable per-policy roll-forward state. It is owned
// exclusively by the goroutine projecting one policy; no field is ever
// shared across policies or mutated concurrently.
type State struct {
	ProjectionMonth    int
	PolicyYear         int
	MonthInPolicyYear  int

	BOPAV float64
	EOPAV float64
	BOPBB float64
	EOPBB float64

	Lives             float64
	LivesPersistency  float64
	AVPersistency     float64

	InitialLivesRef float64

	// FirstMonthTotalCommission is set once, in month 1, and consumed by
	// chargeback calculations in months 2-12 of policy year 1. Memoized
	// rather than recomputed so chargebacks stay correct even if rate
	// assumptions are swapped mid-run.
	FirstMonthTotalCommission float64
}

// NewState seeds the roll-forward state at the start of month 1 from a
// policy's issue values.
func NewState(p Policy) State {
	return State{
		ProjectionMonth:   1,
		PolicyYear:        1,
		MonthInPolicyYear: 1,
		BOPAV:             p.InitialPremium,
		BOPBB:             p.InitialBenefitBase,
		Lives:             p.InitialPols,
		LivesPersistency:  1,
		AVPersistency:     1,
		InitialLivesRef:   p.InitialPols,
	}
}

// Advance moves the state to the next month, carrying EOP values forward
// as the next month's BOP values.
func (s *State) Advance() {
	s.BOPAV = s.EOPAV
	s.BOPBB = s.EOPBB
	s.ProjectionMonth++
	if s.MonthInPolicyYear == 12 {
		s.MonthInPolicyYear = 1
		s.PolicyYear++
	} else {
		s.MonthInPolicyYear++
	}
}
