package calculation

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSweepField(t *testing.T) {
	tests := map[string]SweepField{
		"rate":                 SweepRate,
		"Interest_Rate":        SweepRate,
		"capital":              SweepCapital,
		"term_years":           SweepTerm,
		"monthly_contribution": SweepContribution,
		" target ":             SweepTarget,
	}
	for in, want := range tests {
		got, err := ParseSweepField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSweepField("inflation")
	assert.ErrorIs(t, err, ErrUnknownSweepField)
}

func TestSweepRate(t *testing.T) {
	engine := NewCalculationEngine()
	analysis, err := engine.Sweep(domain.DefaultParameters(), SweepRate, 0, 10, 5)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 5)

	values := []float64{0, 2.5, 5, 7.5, 10}
	for i, p := range analysis.Points {
		assert.InDelta(t, values[i], p.Value, 1e-12)
		assert.Equal(t, p.Value, p.Result.Parameters.AnnualRatePercent)
		if i > 0 {
			assert.Greater(t, p.Result.FinalAmount, analysis.Points[i-1].Result.FinalAmount)
		}
	}
	assert.InDelta(t, 40000, analysis.Points[0].Result.FinalAmount, 1e-6, "0% returns the contributions")
	assert.Equal(t, "rate", analysis.Field)
}

func TestSweepInSolveMode(t *testing.T) {
	engine := NewCalculationEngine()
	base := domain.DefaultParameters()
	base.Mode = domain.ModeMonthlyContribution

	analysis, err := engine.Sweep(base, SweepTarget, 50000, 100000, 3)
	require.NoError(t, err)
	require.Len(t, analysis.Points, 3)
	for i, p := range analysis.Points {
		assert.True(t, p.Result.Converged)
		assert.InDelta(t, p.Value, p.Result.FinalAmount, 1)
		if i > 0 {
			assert.Greater(t, p.Result.SolvedValue, analysis.Points[i-1].Result.SolvedValue, "a higher target needs more each month")
		}
	}

	cmp := analysis.ToComparison()
	require.Len(t, cmp.Scenarios, 3)
	assert.Equal(t, "target=75000", cmp.Scenarios[1].Name)
}

func TestSweepRejectsInvalidInput(t *testing.T) {
	engine := NewCalculationEngine()
	base := domain.DefaultParameters()

	_, err := engine.Sweep(base, SweepRate, 0, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidSweepRange)

	_, err = engine.Sweep(base, SweepRate, 10, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidSweepRange)

	_, err = engine.Sweep(base, SweepRate, 0, 10, MaxSweepSteps+1)
	assert.ErrorIs(t, err, ErrInvalidSweepRange)

	_, err = engine.Sweep(base, "volatility", 0, 1, 2)
	assert.ErrorIs(t, err, ErrUnknownSweepField)

	_, err = engine.Sweep(base, SweepTarget, 1, 2, 2)
	assert.ErrorContains(t, err, "requires a solve mode")

	base.Mode = domain.ModeInterestRate
	_, err = engine.Sweep(base, SweepRate, 0, 10, 3)
	assert.ErrorContains(t, err, "while solving for it")
}
