package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CSVDetailedExporter provides the yearly schedule per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "StartingBalance", "Interest", "Contributions", "EndingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, yr := range sc.Result.YearlyBreakdown {
			row := []string{
				sc.Name,
				strconv.Itoa(yr.Year),
				FormatFixed(yr.StartingBalance),
				FormatFixed(yr.Interest),
				FormatFixed(yr.Contributions),
				FormatFixed(yr.EndingBalance),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
