package calculation

import (
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// Project runs the forward projection for a complete parameter set.
func Project(capital, ratePercent, termYears, monthlyContribution float64, period domain.ReinvestmentPeriod) domain.CalculationResult {
	return ProjectParameters(domain.CalculationParameters{
		InitialCapital:      capital,
		AnnualRatePercent:   ratePercent,
		TermYears:           termYears,
		MonthlyContribution: monthlyContribution,
		ReinvestmentPeriod:  period,
		Mode:                domain.ModeFinalAmount,
	})
}

// ProjectParameters projects p, ignoring p.Mode and p.TargetAmount.
// A term longer than domain.MaxProjectionYears is clamped, and the result's Parameters show it.
func ProjectParameters(p domain.CalculationParameters) domain.CalculationResult {
	if p.TermYears > domain.MaxProjectionYears {
		p.TermYears = domain.MaxProjectionYears
	}
	g := StrategyFor(p.ReinvestmentPeriod).Grow(p.InitialCapital, p.AnnualRatePercent, p.TermYears, p.MonthlyContribution)

	totalContributions := p.InitialCapital + g.PeriodicContributions
	effective, defined := EffectiveAnnualReturn(g.FinalAmount, p.InitialCapital, p.TermYears)

	return domain.CalculationResult{
		Parameters:                   p,
		FinalAmount:                  g.FinalAmount,
		TotalContributions:           totalContributions,
		PeriodicContributions:        g.PeriodicContributions,
		TotalInterest:                g.FinalAmount - totalContributions,
		EffectiveAnnualReturnPercent: effective,
		EffectiveReturnDefined:       defined,
		YearlyBreakdown:              g.Years,
		Converged:                    true,
	}
}

// EffectiveAnnualReturn annualizes final/capital over the term, in percent.
// Without initial capital (or term) the ratio has no meaning and (0, false) is returned.
func EffectiveAnnualReturn(final, capital, termYears float64) (float64, bool) {
	if capital <= 0 || termYears <= 0 {
		return 0, false
	}
	ratio := final / capital
	if ratio < 0 {
		return 0, false
	}
	r := (math.Pow(ratio, 1/termYears) - 1) * 100
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}
