package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// PDFFormatter renders a printable report: a summary page followed by one page of yearly
// schedule per scenario.
type PDFFormatter struct {
	Locale ReportLocale
}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

type pdfReport struct {
	pdf *fpdf.Fpdf
	loc *Localizer
	tr  func(string) string
}

// money and units convert localized amounts to the core fonts' cp1252 encoding (€, no-break space).
func (r *pdfReport) money(v float64) string { return r.tr(r.loc.Currency(v)) }
func (r *pdfReport) units(v float64) string { return r.tr(r.loc.Units(v)) }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), loc: p.Locale.Localizer()}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetCreationDate(nowFunc())

	r.addSummaryPage(results)
	for i, sc := range results.Scenarios {
		r.addScenarioPage(i+1, sc)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addSummaryPage(results *domain.ScenarioComparison) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Investment Projection Report", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated: %s", nowFunc().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.drawSectionHeader("Scenario Summary")
	widths := []float64{50, 35, 35, 35, 25}
	r.drawTableHeader([]string{"Scenario", "Final Amount", "Contributions", "Interest", "Eff. Return"}, widths)
	for i, sc := range results.Scenarios {
		res := sc.Result
		r.drawTableRow([]string{
			sc.Name,
			r.money(res.FinalAmount),
			r.money(res.TotalContributions),
			r.money(res.TotalInterest),
			FormatEffectiveReturn(res),
		}, widths, i%2 == 1)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		r.pdf.Ln(6)
		r.drawSectionHeader("Recommendation")
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.MultiCell(pdfContentWidth, 5, fmt.Sprintf("Highest final amount: %s (%s, %s versus the first scenario).",
			rec.ScenarioName, r.money(rec.FinalAmount), FormatPercentage(rec.PercentageChange)), "", "L", false)
		for _, c := range rec.Cheapest {
			r.pdf.MultiCell(pdfContentWidth, 5, fmt.Sprintf("Lowest required %s: %s (%s).",
				ModeLabel(c.Field), c.ScenarioName, FormatSolvedValue(c.Field, c.Value)), "", "L", false)
		}
	}

	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	r.pdf.Ln(6)
	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptions {
		r.pdf.MultiCell(pdfContentWidth, 4.5, "- "+a, "", "L", false)
	}
}

func (r *pdfReport) addScenarioPage(n int, sc domain.ScenarioSummary) {
	r.pdf.AddPage()
	r.drawSectionHeader(fmt.Sprintf("Scenario %d: %s", n, sc.Name))

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	if sc.Description != "" {
		r.pdf.MultiCell(pdfContentWidth, 5, sc.Description, "", "L", false)
		r.pdf.Ln(2)
	}
	for _, line := range GenerateAssumptions(sc.Result.Parameters) {
		r.pdf.CellFormat(pdfContentWidth, 5, line, "", 1, "L", false, 0, "")
	}
	res := sc.Result
	if res.IsSolved() {
		status := "converged"
		if !res.Converged {
			status = "not converged"
		}
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Required %s: %s (%s, residual %s)",
			ModeLabel(res.SolvedField), FormatSolvedValue(res.SolvedField, res.SolvedValue), status, r.money(res.Residual)), "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)

	widths := []float64{20, 40, 40, 40, 40}
	r.drawTableHeader([]string{"Year", "Start", "Interest", "Contributions", "End"}, widths)
	for i, y := range res.YearlyBreakdown {
		r.drawTableRow([]string{
			strconv.Itoa(y.Year),
			r.units(y.StartingBalance),
			r.units(y.Interest),
			r.units(y.Contributions),
			r.units(y.EndingBalance),
		}, widths, i%2 == 1)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 9, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, shaded bool) {
	if shaded {
		r.pdf.SetFillColor(245, 247, 250)
	} else {
		r.pdf.SetFillColor(255, 255, 255)
	}
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 9)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5.5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
