package domain

// YearlyRecord is one row of the year-by-year schedule. Amounts are rounded to whole currency units.
type YearlyRecord struct {
	Year            int     `json:"year" yaml:"year"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
	Interest        float64 `json:"interest" yaml:"interest"`
	Contributions   float64 `json:"contributions" yaml:"contributions"`
	EndingBalance   float64 `json:"ending_balance" yaml:"ending_balance"`
}

// CalculationResult is produced fresh by every calculation and never mutated afterwards.
type CalculationResult struct {
	// Parameters that reproduce this result, with the solved field filled in.
	Parameters CalculationParameters `json:"parameters" yaml:"parameters"`

	FinalAmount           float64 `json:"final_amount" yaml:"final_amount"`
	TotalContributions    float64 `json:"total_contributions" yaml:"total_contributions"` // initial capital included
	PeriodicContributions float64 `json:"periodic_contributions" yaml:"periodic_contributions"`
	TotalInterest         float64 `json:"total_interest" yaml:"total_interest"`

	EffectiveAnnualReturnPercent float64 `json:"effective_annual_return_percent" yaml:"effective_annual_return_percent"`
	// EffectiveReturnDefined is false when there is no initial capital to annualize against.
	EffectiveReturnDefined bool `json:"effective_return_defined" yaml:"effective_return_defined"`

	YearlyBreakdown []YearlyRecord `json:"yearly_breakdown" yaml:"yearly_breakdown"`

	// Solve metadata; zero values in projection mode.
	SolvedField CalculationMode `json:"solved_field,omitempty" yaml:"solved_field,omitempty"`
	SolvedValue float64         `json:"solved_value,omitempty" yaml:"solved_value,omitempty"`
	Residual    float64         `json:"residual,omitempty" yaml:"residual,omitempty"`
	Iterations  int             `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	Converged   bool            `json:"converged" yaml:"converged"`
}

// IsSolved reports whether the result came out of the inversion solver.
func (r CalculationResult) IsSolved() bool {
	return r.SolvedField.IsSolve()
}

// FinalYear returns the last yearly record, or a zero record for an empty schedule.
func (r CalculationResult) FinalYear() YearlyRecord {
	if len(r.YearlyBreakdown) == 0 {
		return YearlyRecord{}
	}
	return r.YearlyBreakdown[len(r.YearlyBreakdown)-1]
}
