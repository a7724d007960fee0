package cmd

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/spf13/cobra"
)

// paramFlags binds a CalculationParameters set to command flags.
type paramFlags struct {
	capital      float64
	rate         float64
	term         float64
	contribution float64
	target       float64
	period       string
	mode         string
}

func addParamFlags(cmd *cobra.Command, p *paramFlags) {
	d := domain.DefaultParameters()
	f := cmd.Flags()
	f.Float64VarP(&p.capital, "capital", "c", d.InitialCapital, "Initial capital")
	f.Float64VarP(&p.rate, "rate", "r", d.AnnualRatePercent, "Nominal annual interest rate in percent")
	f.Float64VarP(&p.term, "term", "t", d.TermYears, "Investment term in years")
	f.Float64VarP(&p.contribution, "contribution", "m", d.MonthlyContribution, "Monthly contribution")
	f.Float64Var(&p.target, "target", d.TargetAmount, "Target final amount (solve modes only)")
	f.StringVarP(&p.period, "period", "p", string(d.ReinvestmentPeriod), "Reinvestment period: monthly, quarterly, semiannual, annual, none")
	f.StringVar(&p.mode, "mode", string(d.Mode), "Calculation mode (final_amount, interest_rate, initial_capital, investment_term, monthly_contribution)")
}

func (p *paramFlags) parameters() (domain.CalculationParameters, error) {
	mode, err := domain.ParseCalculationMode(p.mode)
	if err != nil {
		return domain.CalculationParameters{}, err
	}
	period, err := domain.ParseReinvestmentPeriod(p.period)
	if err != nil {
		return domain.CalculationParameters{}, err
	}
	return config.Sanitize(domain.CalculationParameters{
		InitialCapital:      p.capital,
		AnnualRatePercent:   p.rate,
		TermYears:           p.term,
		MonthlyContribution: p.contribution,
		TargetAmount:        p.target,
		ReinvestmentPeriod:  period,
		Mode:                mode,
	}), nil
}

// reportFlags selects how results are rendered.
type reportFlags struct {
	format    string
	outputDir string
	locale    string
	symbol    string
}

func addReportFlags(cmd *cobra.Command, r *reportFlags, defaultFormat string) {
	cmd.Flags().StringVarP(&r.format, "format", "f", defaultFormat, "Output format (see 'compound-calc formats')")
	cmd.Flags().StringVarP(&r.outputDir, "output-dir", "o", "", "Write a timestamped report file into this directory instead of stdout")
	cmd.Flags().StringVar(&r.locale, "locale", "", "Number formatting locale for console, html and pdf, e.g. de-DE (default $CALC_LOCALE or en-US)")
	cmd.Flags().StringVar(&r.symbol, "currency-symbol", "", "Currency prefix for console, html and pdf (default $CALC_CURRENCY_SYMBOL or \"$\")")
}

// reportLocale resolves the flags over the CALC_LOCALE and CALC_CURRENCY_SYMBOL environment.
func (r *reportFlags) reportLocale() (output.ReportLocale, error) {
	cfg, err := config.LoadReportConfig()
	if err != nil {
		return output.ReportLocale{}, err
	}
	loc := output.ReportLocale{Tag: cfg.Locale, Symbol: cfg.CurrencySymbol}
	if r.locale != "" {
		loc.Tag = r.locale
	}
	if r.symbol != "" {
		loc.Symbol = r.symbol
	}
	return loc, nil
}

// emit renders results to stdout, or to a report file when an output directory is set.
func (r *reportFlags) emit(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	loc, err := r.reportLocale()
	if err != nil {
		return err
	}
	if r.outputDir != "" {
		path, err := output.GenerateReport(results, r.format, r.outputDir, loc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	f := output.GetLocalizedFormatter(r.format, loc)
	if f == nil {
		return output.UnsupportedFormatError(r.format)
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
