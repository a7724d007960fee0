package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Mode", "ReinvestmentPeriod", "InitialCapital", "AnnualRatePercent", "TermYears", "MonthlyContribution", "TargetAmount", "FinalAmount", "TotalContributions", "PeriodicContributions", "TotalInterest", "EffectiveAnnualReturnPercent", "SolvedValue", "Converged"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := sc.Result
		p := r.Parameters
		effective := ""
		if r.EffectiveReturnDefined {
			effective = FormatFixed(r.EffectiveAnnualReturnPercent)
		}
		solved := ""
		if r.IsSolved() {
			solved = FormatFixed(r.SolvedValue)
		}
		row := []string{
			sc.Name,
			string(p.Mode),
			string(p.ReinvestmentPeriod),
			FormatFixed(p.InitialCapital),
			FormatFixed(p.AnnualRatePercent),
			FormatFixed(p.TermYears),
			FormatFixed(p.MonthlyContribution),
			FormatFixed(p.TargetAmount),
			FormatFixed(r.FinalAmount),
			FormatFixed(r.TotalContributions),
			FormatFixed(r.PeriodicContributions),
			FormatFixed(r.TotalInterest),
			effective,
			solved,
			strconv.FormatBool(r.Converged),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
