package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// buildTestComparison runs a projection, a simple-interest variant and a capital solve.
func buildTestComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	base := domain.DefaultParameters()
	simple := base
	simple.ReinvestmentPeriod = domain.PeriodNone
	solve := base
	solve.Mode = domain.ModeInitialCapital

	cmp, err := calculation.NewCalculationEngine().RunScenarios(&domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "B", Description: "monthly compounding", Parameters: base},
		{Name: "A", Parameters: simple},
		{Name: "C", Parameters: solve},
	}})
	require.NoError(t, err)
	return cmp
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "Recommended: A")
	assert.Contains(t, content, "A: Final=$56000.00")
	assert.Contains(t, content, "Solved initial capital=")
	assert.Less(t, strings.Index(content, "A: "), strings.Index(content, "B: "), "scenarios sorted by name")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	cmp := buildTestComparison(t)
	out, err := ConsoleVerboseFormatter{}.Format(cmp)
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "SCENARIO 1: B")
	assert.Contains(t, content, "monthly compounding")
	assert.Contains(t, content, "Final Amount:            $51,636.89")
	assert.Contains(t, content, "YEARLY BREAKDOWN:")
	assert.Contains(t, content, "Required initial capital:")
	assert.Contains(t, content, "Highest final amount: A")
	assert.Contains(t, content, "Lowest required initial capital: C")
	for _, a := range cmp.Assumptions {
		assert.Contains(t, content, a)
	}
}

func TestConsoleVerboseFallsBackToDefaultAssumptions(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(&domain.ScenarioComparison{})
	require.NoError(t, err)
	assert.Contains(t, string(out), DefaultAssumptions[0])
	assert.NotContains(t, string(out), "RECOMMENDATION")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Scenario", rows[0][0])
	assert.Equal(t, []string{"A", "B", "C"}, []string{rows[1][0], rows[2][0], rows[3][0]})

	simple := rows[1]
	assert.Equal(t, "none", simple[2])
	assert.Equal(t, "56000.00", simple[8])
	assert.Equal(t, "", simple[13], "projection has no solved value")

	solved := rows[3]
	assert.Equal(t, "initial_capital", solved[1])
	assert.NotEmpty(t, solved[13])
	assert.Equal(t, "true", solved[14])
}

func TestCSVSummarizerUndefinedEffectiveReturn(t *testing.T) {
	res := calculation.Project(0, 5, 2, 100, domain.PeriodMonthly)
	out, err := CSVSummarizer{}.Format(&domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{{Name: "x", Result: res}}})
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", rows[1][12])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+3*5)
	assert.Equal(t, []string{"A", "1", "10000.00", "3200.00", "6000.00", "19200.00"}, rows[1])
	assert.Equal(t, "B", rows[6][0])
	assert.Equal(t, "5", rows[15][1])
}

func TestJSONFormatter(t *testing.T) {
	cmp := buildTestComparison(t)
	out, err := JSONFormatter{}.Format(cmp)
	require.NoError(t, err)

	var decoded domain.ScenarioComparison
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Scenarios, 3)
	assert.Equal(t, cmp.Scenarios[2].Result.SolvedValue, decoded.Scenarios[2].Result.SolvedValue)
	assert.Contains(t, string(out), `"reinvestment_period": "none"`)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	var decoded domain.ScenarioComparison
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Len(t, decoded.Scenarios, 3)
	assert.Equal(t, domain.ModeInitialCapital, decoded.Scenarios[2].Mode)
	assert.Contains(t, string(out), "solved_field: initial_capital")
}

func TestHTMLFormatterBasic(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "Scenario Summary")
	assert.Contains(t, content, "$51,636.89")
	assert.Contains(t, content, "simple interest")
	assert.Contains(t, content, "Recommended: A")
	assert.Contains(t, content, "initial capital: $")
	assert.Contains(t, content, `"balances":[`)
}

func TestHTMLAssumptionsSectionPresent(t *testing.T) {
	out, err := HTMLFormatter{}.Format(&domain.ScenarioComparison{})
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Key Assumptions")
	found := false
	for _, a := range DefaultAssumptions {
		if strings.Contains(content, a) {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one default assumption to be rendered in HTML")
}

func TestHTMLFlagsNonConvergedSolve(t *testing.T) {
	p := domain.DefaultParameters()
	p.Mode = domain.ModeInitialCapital
	p.TargetAmount = 1000
	res, err := calculation.NewCalculationEngine().Calculate(p)
	require.NoError(t, err)
	require.False(t, res.Converged)

	out, err := HTMLFormatter{}.Format(&domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{{Name: "x", Result: res}}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "(not converged)")
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
	assert.Greater(t, len(out), 1000)
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
		{"pdf", "pdf_prefix.golden", PDFFormatter{}},
	}

	cmp := buildTestComparison(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.formatter.Format(cmp)
			require.NoError(t, err)
			goldenPath := filepath.Join("testdata", tc.golden)
			if update {
				// only first line to keep golden small & stable
				line := firstLine(string(out)) + "\n"
				require.NoError(t, os.WriteFile(goldenPath, []byte(line), 0o644))
			}
			data, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), strings.TrimSpace(string(data))),
				"output does not match golden prefix %q", strings.TrimSpace(string(data)))
		})
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"console-verbose": "console",
		"Verbose":         "console",
		"summary":         "console-lite",
		"csv-detailed":    "detailed-csv",
		"YML":             "yaml",
		" pdf ":           "pdf",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, alias)
		assert.Equal(t, want, f.Name(), alias)
	}
	assert.Nil(t, GetFormatterByName("docx"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json", "pdf", "yaml"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "verbose")
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "txt", FileExtension("console"))
	assert.Equal(t, "txt", FileExtension("console-lite"))
	assert.Equal(t, "csv", FileExtension("detailed-csv"))
	assert.Equal(t, "csv", FileExtension("csv"))
	assert.Equal(t, "html", FileExtension("html-report"))
	assert.Equal(t, "pdf", FileExtension("pdf"))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "count", F: func(c *domain.ScenarioComparison) ([]byte, error) {
		return []byte(strconv.Itoa(len(c.Scenarios))), nil
	}}
	out, err := f.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.Equal(t, "3", string(out))
	assert.Equal(t, "count", f.Name())
}
