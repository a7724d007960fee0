package output

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs when a
// comparison carries none of its own.
var DefaultAssumptions = calculation.Assumptions()

// GenerateAssumptions describes the inputs of a single parameter set in words.
func GenerateAssumptions(p domain.CalculationParameters) []string {
	lines := []string{
		fmt.Sprintf("Initial capital: %s", FormatCurrency(p.InitialCapital)),
		fmt.Sprintf("Nominal annual rate: %s", FormatPercentage(p.AnnualRatePercent)),
		fmt.Sprintf("Term: %s", FormatSolvedValue(domain.ModeInvestmentTerm, p.TermYears)),
		fmt.Sprintf("Monthly contribution: %s", FormatCurrency(p.MonthlyContribution)),
		fmt.Sprintf("Reinvestment: %s", calculation.StrategyFor(p.ReinvestmentPeriod).Name()),
	}
	if p.Mode.IsSolve() {
		lines = append(lines, fmt.Sprintf("Target amount: %s (solving for %s)", FormatCurrency(p.TargetAmount), ModeLabel(p.Mode)))
	}
	return lines
}

// ModeLabel returns a human readable name for a calculation mode.
func ModeLabel(m domain.CalculationMode) string {
	switch m {
	case domain.ModeInterestRate:
		return "interest rate"
	case domain.ModeInitialCapital:
		return "initial capital"
	case domain.ModeInvestmentTerm:
		return "investment term"
	case domain.ModeMonthlyContribution:
		return "monthly contribution"
	default:
		return "final amount"
	}
}
