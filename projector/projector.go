// Package projector drives the cashflow kernel forward for one policy
// across the full projection horizon.
package projector

import (
	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/cashflow"
	"github.com/meenmo/fiacost/policy"
)

// Project runs one policy forward for months iterations, returning one
// Row per month. Once lives drops below 1e-9 the kernel itself emits
// zeroed rows for the remainder (spec §4.4); Project does not exit
// early, so the returned slice always has exactly months entries.
func Project(p policy.Policy, a assumptions.Assumptions, cfg cashflow.Config, months int) []cashflow.Row {
	rows := make([]cashflow.Row, months)
	st := policy.NewState(p)
	for i := 0; i < months; i++ {
		rows[i] = cashflow.Step(p, a, cfg, &st)
		st.Advance()
	}
	return rows
}
