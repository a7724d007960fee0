package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := sc.Result
		fmt.Fprintf(&buf, "%s: Final=%s Contributions=%s Interest=%s EffectiveReturn=%s\n",
			sc.Name,
			FormatCurrency(r.FinalAmount),
			FormatCurrency(r.TotalContributions),
			FormatCurrency(r.TotalInterest),
			FormatEffectiveReturn(r),
		)
		if r.IsSolved() {
			fmt.Fprintf(&buf, "  Solved %s=%s Converged=%t Iterations=%d\n",
				ModeLabel(r.SolvedField), FormatSolvedValue(r.SolvedField, r.SolvedValue), r.Converged, r.Iterations)
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.AmountChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
