package calculation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// MaxSweepSteps caps the grid size of a sweep.
const MaxSweepSteps = 500

var (
	// ErrUnknownSweepField is returned for a field name Sweep does not know.
	ErrUnknownSweepField = errors.New("unknown sweep field")
	// ErrInvalidSweepRange is returned for an empty or oversized grid.
	ErrInvalidSweepRange = errors.New("invalid sweep range")
)

// SweepField names an input that can be varied by Sweep.
type SweepField string

const (
	SweepRate         SweepField = "rate"
	SweepCapital      SweepField = "capital"
	SweepTerm         SweepField = "term"
	SweepContribution SweepField = "contribution"
	SweepTarget       SweepField = "target"
)

// ParseSweepField accepts the short names above as well as calculation mode names.
func ParseSweepField(s string) (SweepField, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	switch n {
	case "rate", "interest_rate", "annual_rate_percent":
		return SweepRate, nil
	case "capital", "initial_capital":
		return SweepCapital, nil
	case "term", "investment_term", "term_years":
		return SweepTerm, nil
	case "contribution", "monthly_contribution":
		return SweepContribution, nil
	case "target", "target_amount":
		return SweepTarget, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSweepField, s)
}

// mode returns the calculation mode that solves for the field, or ModeFinalAmount for target.
func (f SweepField) mode() domain.CalculationMode {
	switch f {
	case SweepRate:
		return domain.ModeInterestRate
	case SweepCapital:
		return domain.ModeInitialCapital
	case SweepTerm:
		return domain.ModeInvestmentTerm
	case SweepContribution:
		return domain.ModeMonthlyContribution
	default:
		return domain.ModeFinalAmount
	}
}

func (f SweepField) apply(p domain.CalculationParameters, v float64) domain.CalculationParameters {
	if f == SweepTarget {
		p.TargetAmount = v
		return p
	}
	return p.WithValue(f.mode(), v)
}

// Sweep recalculates base with field set to steps evenly spaced values in [from, to].
// The field solved by base.Mode cannot be swept.
func (ce *CalculationEngine) Sweep(base domain.CalculationParameters, field SweepField, from, to float64, steps int) (*domain.SweepAnalysis, error) {
	field, err := ParseSweepField(string(field))
	if err != nil {
		return nil, err
	}
	if steps < 2 || steps > MaxSweepSteps || to < from {
		return nil, fmt.Errorf("%w: from=%g to=%g steps=%d (need from <= to and 2..%d steps)", ErrInvalidSweepRange, from, to, steps, MaxSweepSteps)
	}
	base, err = normalize(base)
	if err != nil {
		return nil, err
	}
	if base.Mode.IsSolve() && field.mode() == base.Mode {
		return nil, fmt.Errorf("cannot sweep %s while solving for it", field)
	}
	if field == SweepTarget && !base.Mode.IsSolve() {
		return nil, fmt.Errorf("sweeping the target requires a solve mode, got %s", base.Mode)
	}

	analysis := &domain.SweepAnalysis{Field: string(field), Base: base, Points: make([]domain.SweepPoint, 0, steps)}
	step := (to - from) / float64(steps-1)
	for i := 0; i < steps; i++ {
		v := from + step*float64(i)
		if i == steps-1 {
			v = to
		}
		res, err := ce.Calculate(field.apply(base, v))
		if err != nil {
			return nil, err
		}
		analysis.Points = append(analysis.Points, domain.SweepPoint{Value: v, Result: res})
	}
	ce.logger().Debugf("swept %s over [%g, %g] in %d steps", field, from, to, steps)
	return analysis, nil
}
