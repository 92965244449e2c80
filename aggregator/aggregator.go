// Package aggregator fans out the per-policy projection across workers
// and joins the results into one block-level cashflow series.
package aggregator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/cashflow"
	"github.com/meenmo/fiacost/policy"
	"github.com/meenmo/fiacost/projector"
)

// Run projects every policy in parallel and sums the per-month rows
// into one series of length months. Workers share no mutable state:
// each goroutine owns its own policy.State and writes only to its own
// slot of a pre-sized results slice, so the join requires no locks.
func Run(ctx context.Context, policies []policy.Policy, a assumptions.Assumptions, cfg cashflow.Config, months int) ([]cashflow.Row, error) {
	perPolicy := make([][]cashflow.Row, len(policies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range policies {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			perPolicy[i] = projector.Project(p, a, cfg, months)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sum(perPolicy, months), nil
}

// RunSequential is the deterministic single-threaded counterpart to
// Run, used for regression comparison against the parallel path (spec
// §5, §9: "a deterministic mode ... should be provided for regression
// comparison").
func RunSequential(policies []policy.Policy, a assumptions.Assumptions, cfg cashflow.Config, months int) []cashflow.Row {
	perPolicy := make([][]cashflow.Row, len(policies))
	for i, p := range policies {
		perPolicy[i] = projector.Project(p, a, cfg, months)
	}
	return sum(perPolicy, months)
}

// sum reduces per-policy row series element-wise into one block series.
// Aggregation is order-independent up to floating-point associativity
// (spec §5): this reduction always walks policies in index order after
// every worker has finished, so goroutine scheduling does not change
// the summation order and Run matches RunSequential bit-for-bit.
func sum(perPolicy [][]cashflow.Row, months int) []cashflow.Row {
	block := make([]cashflow.Row, months)
	for m := 0; m < months; m++ {
		block[m].Month = m + 1
		for _, rows := range perPolicy {
			block[m].Add(rows[m])
		}
	}
	return block
}
