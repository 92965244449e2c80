package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meenmo/fiacost/assumptions"
	"github.com/meenmo/fiacost/engine"
	"github.com/meenmo/fiacost/policy"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fiacost", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON request path (optional; if set, ignores stdin)")
	asJSON := fs.Bool("json", false, "emit the full response object as JSON")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if f, ok := stdin.(*os.File); ok {
			if stat, err := f.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
				usage(stderr)
				return 2
			}
		}
	}

	reqBytes, err := readInput(stdin, path)
	if err != nil {
		logger.Error("failed to read input", zap.Error(err))
		return writeError(stdout, fmt.Sprintf("failed to read input: %v", err))
	}

	req := engine.DefaultRequest()
	if len(strings.TrimSpace(string(reqBytes))) > 0 {
		if err := json.Unmarshal(reqBytes, &req); err != nil {
			logger.Error("failed to parse JSON request", zap.Error(err))
			return writeError(stdout, fmt.Sprintf("failed to parse JSON request: %v", err))
		}
	}

	policies := defaultInforce()
	a := assumptions.Default()

	start := time.Now()
	resp, err := engine.Run(context.Background(), req, policies, a, 0)
	resp.ExecutionTimeMS = time.Since(start).Milliseconds()
	if err != nil {
		logger.Error("computation failed", zap.Error(err))
		return writeError(stdout, err.Error())
	}

	if *asJSON {
		outBytes, _ := json.Marshal(resp)
		fmt.Fprintln(stdout, string(outBytes))
		return 0
	}

	printSummary(stdout, resp)
	return 0
}

// defaultInforce returns a minimal single-policy book used when no
// external inforce CSV loader is wired in (spec §1: CSV loading is
// out of scope for the core). A real deployment supplies its own
// loaded []policy.Policy ahead of this call.
func defaultInforce() []policy.Policy {
	return []policy.Policy{
		{
			PolicyID:           1,
			QualStatus:         policy.NonQualified,
			IssueAge:           65,
			Gender:             policy.Male,
			InitialBenefitBase: 130_000,
			InitialPremium:     100_000,
			InitialPols:        1,
			CreditingStrategy:  policy.Fixed,
			SCPeriod:           120,
			Bonus:              0.30,
			RollupType:         policy.Simple,
			GLWBStartYear:      11,
		},
	}
}

func printSummary(w io.Writer, resp engine.Response) {
	fmt.Fprintf(w, "Policies:           %d\n", resp.PolicyCount)
	fmt.Fprintf(w, "Projection months:  %d\n", resp.ProjectionMonths)
	fmt.Fprintf(w, "Total premium:      %.2f\n", resp.Summary.TotalPremium)
	fmt.Fprintf(w, "Total initial BB:   %.2f\n", resp.Summary.TotalInitialBB)
	fmt.Fprintf(w, "Month 1 cashflow:   %.2f\n", resp.Summary.Month1Cashflow)
	fmt.Fprintf(w, "Final lives:        %.4f\n", resp.Summary.FinalLives)
	fmt.Fprintf(w, "Final AV:           %.2f\n", resp.Summary.FinalAV)
	if resp.CostOfFundsPct != nil {
		fmt.Fprintf(w, "Cost of funds:      %.4f%%\n", *resp.CostOfFundsPct)
	} else {
		fmt.Fprintf(w, "Cost of funds:      (not converged)\n")
	}
	if resp.CedingCommission != nil {
		fmt.Fprintf(w, "Ceding commission:  %.2f (total rate %.4f%%)\n", resp.CedingCommission.NPV, resp.CedingCommission.TotalRatePct)
	}
	fmt.Fprintf(w, "Execution time:     %dms\n", resp.ExecutionTimeMS)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fiacost [--json] < request.json")
	fmt.Fprintln(w, "  fiacost [--json] -input /path/to/request.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a JSON cost-of-funds request, project the inforce block, and")
	fmt.Fprintln(w, "report cost of funds. Empty stdin runs with request defaults.")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func writeError(stdout io.Writer, msg string) int {
	resp := engine.Response{Error: msg}
	outBytes, _ := json.Marshal(resp)
	fmt.Fprintln(stdout, string(outBytes))
	return 1
}
