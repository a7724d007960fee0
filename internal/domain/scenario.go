package domain

import "strconv"

// Scenario is a named parameter set loaded from a scenario file.
type Scenario struct {
	Name        string                `json:"name" yaml:"name" toml:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty" toml:"description"`
	Parameters  CalculationParameters `json:"parameters" yaml:"parameters" toml:"parameters"`
}

// Configuration is the top-level scenario file.
type Configuration struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios" toml:"scenarios"`
}

// ScenarioSummary pairs a scenario with its calculation result.
type ScenarioSummary struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Mode        CalculationMode   `json:"mode" yaml:"mode"`
	Result      CalculationResult `json:"result" yaml:"result"`
}

// ScenarioComparison holds every scenario of one run.
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	Assumptions []string          `json:"assumptions" yaml:"assumptions"`
}

// SweepPoint is one grid point of a sensitivity sweep.
type SweepPoint struct {
	Value  float64           `json:"value" yaml:"value"`
	Result CalculationResult `json:"result" yaml:"result"`
}

// SweepAnalysis is the outcome of varying one input over a range.
type SweepAnalysis struct {
	Field  string                `json:"field" yaml:"field"`
	Base   CalculationParameters `json:"base" yaml:"base"`
	Points []SweepPoint          `json:"points" yaml:"points"`
}

// ToComparison presents each sweep point as a scenario so the report formatters can render it.
func (s *SweepAnalysis) ToComparison() *ScenarioComparison {
	cmp := &ScenarioComparison{Scenarios: make([]ScenarioSummary, 0, len(s.Points))}
	for _, p := range s.Points {
		cmp.Scenarios = append(cmp.Scenarios, ScenarioSummary{
			Name:   sweepPointName(s.Field, p.Value),
			Mode:   p.Result.Parameters.Mode,
			Result: p.Result,
		})
	}
	return cmp
}

func sweepPointName(field string, v float64) string {
	return field + "=" + strconv.FormatFloat(v, 'f', -1, 64)
}
