package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report with the yearly schedule of every
// scenario.
type ConsoleVerboseFormatter struct {
	Locale ReportLocale
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	loc := c.Locale.Localizer()

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "COMPOUND INTEREST PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if sc.Description != "" {
			fmt.Fprintln(&buf, sc.Description)
		}
		writeScenarioDetail(&buf, loc, sc.Result)
		fmt.Fprintln(&buf)
	}

	if len(results.Scenarios) > 1 {
		writeRecommendation(&buf, loc, AnalyzeScenarios(results))
	}
	return buf.Bytes(), nil
}

func writeScenarioDetail(w io.Writer, loc *Localizer, r domain.CalculationResult) {
	fmt.Fprintln(w, "INPUTS:")
	for _, line := range GenerateAssumptions(r.Parameters) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)

	if r.IsSolved() {
		fmt.Fprintln(w, "SOLUTION:")
		fmt.Fprintf(w, "  Required %s: %s\n", ModeLabel(r.SolvedField), FormatSolvedValue(r.SolvedField, r.SolvedValue))
		status := "converged"
		if !r.Converged {
			status = "did not converge; closest value in the search range"
		}
		fmt.Fprintf(w, "  Residual: %s after %d iterations (%s)\n", loc.Currency(r.Residual), r.Iterations, status)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "RESULTS:")
	fmt.Fprintf(w, "  Final Amount:            %s\n", loc.Currency(r.FinalAmount))
	fmt.Fprintf(w, "  Total Contributions:     %s\n", loc.Currency(r.TotalContributions))
	fmt.Fprintf(w, "  Periodic Contributions:  %s\n", loc.Currency(r.PeriodicContributions))
	fmt.Fprintf(w, "  Total Interest:          %s\n", loc.Currency(r.TotalInterest))
	fmt.Fprintf(w, "  Effective Annual Return: %s\n", FormatEffectiveReturn(r))
	fmt.Fprintln(w)

	if len(r.YearlyBreakdown) == 0 {
		return
	}
	fmt.Fprintln(w, "YEARLY BREAKDOWN:")
	fmt.Fprintf(w, "  %-5s %16s %14s %16s %16s\n", "Year", "Start", "Interest", "Contributions", "End")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 71))
	for _, y := range r.YearlyBreakdown {
		fmt.Fprintf(w, "  %-5d %16s %14s %16s %16s\n", y.Year,
			loc.Units(y.StartingBalance), loc.Units(y.Interest), loc.Units(y.Contributions), loc.Units(y.EndingBalance))
	}
}

func writeRecommendation(w io.Writer, loc *Localizer, rec Recommendation) {
	fmt.Fprintln(w, "RECOMMENDATION")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Highest final amount: %s (%s, %s vs first scenario)\n",
		rec.ScenarioName, loc.Currency(rec.FinalAmount), FormatPercentage(rec.PercentageChange))
	for _, c := range rec.Cheapest {
		fmt.Fprintf(w, "Lowest required %s: %s (%s)\n", ModeLabel(c.Field), c.ScenarioName, FormatSolvedValue(c.Field, c.Value))
	}
}
