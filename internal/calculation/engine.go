package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// CalculationEngine dispatches calculations by mode. It holds no per-calculation state and is
// safe for concurrent use.
type CalculationEngine struct {
	Debug  bool // Log every calculation at debug level
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate projects or solves p according to p.Mode.
// Only unrecognised enum values produce an error; numeric inputs are taken as given.
func (ce *CalculationEngine) Calculate(p domain.CalculationParameters) (domain.CalculationResult, error) {
	p, err := normalize(p)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	var res domain.CalculationResult
	if p.Mode.IsSolve() {
		res = Solve(p.Mode, p, p.TargetAmount)
		if !res.Converged {
			ce.logger().Warnf("solver did not converge for %s: target=%.2f reached=%.2f residual=%.2f",
				p.Mode, p.TargetAmount, res.FinalAmount, res.Residual)
		}
	} else {
		res = ProjectParameters(p)
	}

	if ce.Debug {
		ce.logger().Debugf("%s (%s): capital=%.2f rate=%.4f%% term=%.2fy monthly=%.2f -> final=%.2f interest=%.2f iterations=%d",
			p.Mode, StrategyFor(p.ReinvestmentPeriod).Name(),
			res.Parameters.InitialCapital, res.Parameters.AnnualRatePercent, res.Parameters.TermYears,
			res.Parameters.MonthlyContribution, res.FinalAmount, res.TotalInterest, res.Iterations)
	}
	return res, nil
}

// RunScenarios calculates every scenario of cfg.
func (ce *CalculationEngine) RunScenarios(cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	summaries := make([]domain.ScenarioSummary, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		res, err := ce.Calculate(sc.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		summaries = append(summaries, domain.ScenarioSummary{
			Name:        sc.Name,
			Description: sc.Description,
			Mode:        res.Parameters.Mode,
			Result:      res,
		})
	}
	ce.logger().Infof("calculated %d scenarios", len(summaries))
	return &domain.ScenarioComparison{Scenarios: summaries, Assumptions: Assumptions()}, nil
}

// CompareReinvestmentPeriods runs p under every reinvestment period.
func (ce *CalculationEngine) CompareReinvestmentPeriods(p domain.CalculationParameters) (*domain.ScenarioComparison, error) {
	cfg := &domain.Configuration{}
	for _, period := range domain.AllReinvestmentPeriods() {
		q := p
		q.ReinvestmentPeriod = period
		cfg.Scenarios = append(cfg.Scenarios, domain.Scenario{
			Name:        string(period),
			Description: StrategyFor(period).Name(),
			Parameters:  q,
		})
	}
	return ce.RunScenarios(cfg)
}

// Assumptions describes the modelling conventions shared by every result.
func Assumptions() []string {
	return []string{
		"Contributions are credited at the end of each compounding period, after that period's interest",
		"Monthly contributions are pooled per compounding period (monthly x 12 / periods per year)",
		"A partial final period is simulated as a full period",
		"Simple interest accrues on the initial capital and all contributions for the whole term",
		fmt.Sprintf("Solved values use bisection: %d steps, early exit below %.0f currency unit residual", MaxBisectionIterations, ConvergenceTolerance),
		fmt.Sprintf("Search ranges: rate 0-%.0f%%, term 0-%.0f years, capital 0-target, contribution 0-target/12", MaxRatePercent, MaxTermYears),
		"Yearly schedule amounts are rounded to whole currency units; totals keep full precision",
	}
}

// normalize resolves enum aliases and defaults and rejects non-finite numbers.
func normalize(p domain.CalculationParameters) (domain.CalculationParameters, error) {
	mode, err := domain.ParseCalculationMode(string(p.Mode))
	if err != nil {
		return p, err
	}
	period, err := domain.ParseReinvestmentPeriod(string(p.ReinvestmentPeriod))
	if err != nil {
		return p, err
	}
	p.Mode, p.ReinvestmentPeriod = mode, period
	for name, v := range map[string]float64{
		"initial capital":      p.InitialCapital,
		"interest rate":        p.AnnualRatePercent,
		"term":                 p.TermYears,
		"monthly contribution": p.MonthlyContribution,
		"target amount":        p.TargetAmount,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return p, fmt.Errorf("%s must be a finite number", name)
		}
	}
	return p, nil
}
