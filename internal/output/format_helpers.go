package output

import (
	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	money "github.com/rpgo/investment-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return money.NewMoney(amount).Format() }

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(percent float64) string {
	return money.NewMoney(percent).Round().StringFixed(2) + "%"
}

// FormatFixed renders v with two decimals and no currency symbol (CSV cells).
func FormatFixed(v float64) string { return money.NewMoney(v).String() }

// FormatSolvedValue renders a solved input in the unit of its field.
func FormatSolvedValue(mode domain.CalculationMode, v float64) string {
	switch mode {
	case domain.ModeInterestRate:
		return FormatPercentage(v)
	case domain.ModeInvestmentTerm:
		return decimal.NewFromFloat(v).StringFixed(2) + " years"
	case domain.ModeInitialCapital, domain.ModeMonthlyContribution:
		return FormatCurrency(v)
	default:
		return FormatCurrency(v)
	}
}

// FormatEffectiveReturn renders the effective annual return, or "n/a" when it is undefined.
func FormatEffectiveReturn(r domain.CalculationResult) string {
	if !r.EffectiveReturnDefined {
		return "n/a"
	}
	return FormatPercentage(r.EffectiveAnnualReturnPercent)
}

func strategyName(p domain.ReinvestmentPeriod) string { return calculation.StrategyFor(p).Name() }
