package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a chart of the yearly balances.
type HTMLFormatter struct {
	Locale ReportLocale
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

// curr and units are bound per report to the formatter's locale.
var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      ReportLocale{}.Localizer().Currency,
	"units":     ReportLocale{}.Localizer().Units,
	"pct":       FormatPercentage,
	"solved":    FormatSolvedValue,
	"label":     ModeLabel,
	"effective": FormatEffectiveReturn,
	"strategy":  strategyName,
	"add":       func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-scenario data handed to the inline chart script.
type chartSeries struct {
	Name     string    `json:"name"`
	Years    []int     `json:"years"`
	Balances []float64 `json:"balances"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeScenarios(results)

	// Use assumptions from results if available, otherwise fall back to defaults
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	series := make([]chartSeries, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		s := chartSeries{Name: sc.Name}
		for _, y := range sc.Result.YearlyBreakdown {
			s.Years = append(s.Years, y.Year)
			s.Balances = append(s.Balances, y.EndingBalance)
		}
		series = append(series, s)
	}

	loc := h.Locale.Localizer()
	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{"curr": loc.Currency, "units": loc.Units})

	data := struct {
		*domain.ScenarioComparison
		Lang           string
		Recommendation Recommendation
		Assumptions    []string
		Chart          []chartSeries
	}{results, loc.Tag().String(), rec, assumptions, series}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
