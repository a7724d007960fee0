package calculation

import (
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

const (
	// MaxBisectionIterations is the fixed step budget of the solver.
	MaxBisectionIterations = 100
	// ConvergenceTolerance is the early-exit residual, in currency units.
	ConvergenceTolerance = 1.0
	// MaxRatePercent bounds the interest rate search.
	MaxRatePercent = 50.0
	// MaxTermYears bounds the term search.
	MaxTermYears = 50.0
)

// SearchInterval returns the bisection bounds for the field solved by mode.
func SearchInterval(mode domain.CalculationMode, target float64) (lo, hi float64) {
	target = math.Max(target, 0)
	switch mode {
	case domain.ModeInterestRate:
		return 0, MaxRatePercent
	case domain.ModeInitialCapital:
		return 0, target
	case domain.ModeInvestmentTerm:
		return 0, MaxTermYears
	case domain.ModeMonthlyContribution:
		return 0, target / 12
	default:
		return 0, 0
	}
}

// Solve finds the value of the field selected by mode for which the projection reaches target.
//
// The projection is assumed to increase with the unknown. That is not checked: with negative
// inputs, or a target outside the search interval, the result is the projection at whatever point
// the bisection settles on (an interval boundary for unreachable targets). Callers judge quality
// from Residual and Converged. Solve never fails.
func Solve(mode domain.CalculationMode, fixed domain.CalculationParameters, target float64) domain.CalculationResult {
	fixed.TargetAmount = target
	fixed.Mode = mode
	if !mode.IsSolve() {
		return ProjectParameters(fixed)
	}

	eval := func(x float64) domain.CalculationResult {
		return ProjectParameters(fixed.WithValue(mode, x))
	}

	lo, hi := SearchInterval(mode, target)
	for i := 0; i < MaxBisectionIterations; i++ {
		mid := (lo + hi) / 2
		res := eval(mid)
		if math.Abs(res.FinalAmount-target) < ConvergenceTolerance {
			return solved(res, mode, mid, target, i+1)
		}
		if res.FinalAmount < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	x := (lo + hi) / 2
	return solved(eval(x), mode, x, target, MaxBisectionIterations)
}

func solved(res domain.CalculationResult, mode domain.CalculationMode, x, target float64, iterations int) domain.CalculationResult {
	res.SolvedField = mode
	res.SolvedValue = x
	res.Residual = res.FinalAmount - target
	res.Iterations = iterations
	res.Converged = math.Abs(res.Residual) < ConvergenceTolerance
	return res
}
