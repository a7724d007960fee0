package output

import (
	"sort"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string  `json:"scenario_name"`
	FinalAmount      float64 `json:"final_amount"`
	TotalInterest    float64 `json:"total_interest"`
	AmountChange     float64 `json:"amount_change"` // versus the first scenario
	PercentageChange float64 `json:"percentage_change"`
	// Cheapest holds, per solved field, the converged scenario needing the lowest value.
	Cheapest []SolveRecommendation `json:"cheapest,omitempty"`
}

// SolveRecommendation names the scenario that reaches its target with the least of one input.
type SolveRecommendation struct {
	Field        domain.CalculationMode `json:"field"`
	ScenarioName string                 `json:"scenario_name"`
	Value        float64                `json:"value"`
}

// AnalyzeScenarios picks the scenario with the highest final amount and, for each solved field,
// the converged scenario requiring the lowest value. The first scenario is the baseline.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}

	best := results.Scenarios[0]
	for _, sc := range results.Scenarios[1:] {
		if sc.Result.FinalAmount > best.Result.FinalAmount {
			best = sc
		}
	}
	baseline := results.Scenarios[0].Result.FinalAmount
	rec := Recommendation{
		ScenarioName:  best.Name,
		FinalAmount:   best.Result.FinalAmount,
		TotalInterest: best.Result.TotalInterest,
		AmountChange:  best.Result.FinalAmount - baseline,
	}
	if baseline != 0 {
		rec.PercentageChange = rec.AmountChange / baseline * 100
	}

	cheapest := map[domain.CalculationMode]SolveRecommendation{}
	for _, sc := range results.Scenarios {
		r := sc.Result
		if !r.IsSolved() || !r.Converged {
			continue
		}
		if cur, ok := cheapest[r.SolvedField]; !ok || r.SolvedValue < cur.Value {
			cheapest[r.SolvedField] = SolveRecommendation{Field: r.SolvedField, ScenarioName: sc.Name, Value: r.SolvedValue}
		}
	}
	for _, c := range cheapest {
		rec.Cheapest = append(rec.Cheapest, c)
	}
	sort.Slice(rec.Cheapest, func(i, j int) bool { return rec.Cheapest[i].Field < rec.Cheapest[j].Field })
	return rec
}
