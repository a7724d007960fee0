package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// annuityImmediate is the closed-form future value with end-of-period payments.
func annuityImmediate(capital, periodRate, payment float64, n int) float64 {
	growth := math.Pow(1+periodRate, float64(n))
	if periodRate == 0 {
		return capital + payment*float64(n)
	}
	return capital*growth + payment*(growth-1)/periodRate
}

// TestScenarioMonthlyCompounding covers 10k at 5% for 10 years with 500/month, compounded monthly.
func TestScenarioMonthlyCompounding(t *testing.T) {
	res := Project(10000, 5, 10, 500, domain.PeriodMonthly)

	expected := annuityImmediate(10000, 0.05/12, 500, 120)
	assert.InDelta(t, expected, res.FinalAmount, 1e-6)
	assert.InDelta(t, 94111.23, res.FinalAmount, 0.01)
	assert.InDelta(t, 70000, res.TotalContributions, 1e-6, "initial capital is part of total contributions")
	assert.InDelta(t, 60000, res.PeriodicContributions, 1e-6)
	assert.InDelta(t, 24111.23, res.TotalInterest, 0.01)
	assert.InDelta(t, 25.13, res.EffectiveAnnualReturnPercent, 0.01)
	assert.True(t, res.EffectiveReturnDefined)
	assert.True(t, res.Converged)
	assert.Equal(t, domain.ModeFinalAmount, res.Parameters.Mode)

	require.Len(t, res.YearlyBreakdown, 10)
	first := res.YearlyBreakdown[0]
	assert.Equal(t, 1, first.Year)
	assert.Equal(t, 10000.0, first.StartingBalance)
	assert.Equal(t, 6000.0, first.Contributions)
	assert.InDelta(t, 651, first.Interest, 1)
	assert.InDelta(t, 16651, first.EndingBalance, 1)

	last := res.FinalYear()
	assert.Equal(t, 10, last.Year)
	assert.Equal(t, math.Round(res.FinalAmount), last.EndingBalance)
}

func TestScenarioSimpleInterest(t *testing.T) {
	compound := Project(10000, 5, 10, 500, domain.PeriodMonthly)
	simple := Project(10000, 5, 10, 500, domain.PeriodNone)

	// periodic = 500*12*10; interest = (10000+60000)*0.05*10
	assert.InDelta(t, 60000, simple.PeriodicContributions, 1e-6)
	assert.InDelta(t, 35000, simple.TotalInterest, 1e-6)
	assert.InDelta(t, 105000, simple.FinalAmount, 1e-6)
	assert.NotEqual(t, compound.FinalAmount, simple.FinalAmount)

	require.Len(t, simple.YearlyBreakdown, 10)
	assert.Equal(t, 3500.0, simple.YearlyBreakdown[0].Interest)
	assert.Equal(t, 6000.0, simple.YearlyBreakdown[0].Contributions)
	assert.Equal(t, 19500.0, simple.YearlyBreakdown[0].EndingBalance)
	assert.Equal(t, 105000.0, simple.FinalYear().EndingBalance)
}

func TestOtherCompoundingFrequencies(t *testing.T) {
	tests := []struct {
		name     string
		period   domain.ReinvestmentPeriod
		expected float64
	}{
		{"quarterly", domain.PeriodQuarterly, 93670.53},
		{"annual", domain.PeriodAnnual, 91756.30},
		{"semiannual", domain.PeriodSemiannual, annuityImmediate(10000, 0.025, 3000, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Project(10000, 5, 10, 500, tt.period)
			assert.InDelta(t, tt.expected, res.FinalAmount, 0.01)
			assert.InDelta(t, 70000, res.TotalContributions, 1e-6)
			assert.Len(t, res.YearlyBreakdown, 10)
		})
	}
}

// TestFractionalTerm documents that a partial period is simulated as a full one.
func TestFractionalTerm(t *testing.T) {
	assert.Equal(t, 2, TotalPeriods(0.1, 12), "0.1 years = 1.2 months rounds up to 2 periods")
	assert.Equal(t, 12, TotalPeriods(1, 12), "exact product must not round up")
	assert.Equal(t, 30, TotalPeriods(2.5, 12))
	assert.Equal(t, 0, TotalPeriods(0, 12))
	assert.Equal(t, 0, TotalPeriods(1, 0))

	res := Project(10000, 5, 0.1, 500, domain.PeriodMonthly)
	assert.InDelta(t, annuityImmediate(10000, 0.05/12, 500, 2), res.FinalAmount, 1e-9)
	assert.InDelta(t, 11000, res.TotalContributions, 1e-9)
	require.Len(t, res.YearlyBreakdown, 1)
	assert.Equal(t, 1000.0, res.YearlyBreakdown[0].Contributions)

	partial := Project(10000, 5, 2.5, 500, domain.PeriodAnnual)
	assert.Equal(t, 3, TotalPeriods(2.5, 1))
	assert.Len(t, partial.YearlyBreakdown, 3)

	simple := Project(10000, 5, 2.5, 500, domain.PeriodNone)
	require.Len(t, simple.YearlyBreakdown, 3)
	assert.Equal(t, 3000.0, simple.YearlyBreakdown[2].Contributions, "half a year of contributions")
}

func TestBreakdownLengthMatchesTerm(t *testing.T) {
	for _, term := range []float64{0.1, 0.5, 1, 1.05, 2.3, 7, 10.75, 30, 50} {
		for _, period := range domain.AllReinvestmentPeriods() {
			res := Project(1000, 4, term, 100, period)
			assert.Len(t, res.YearlyBreakdown, int(math.Ceil(term)), "term=%v period=%s", term, period)
		}
	}
}

func TestFinalAmountIdentity(t *testing.T) {
	tests := []struct {
		name    string
		capital float64
		rate    float64
		term    float64
		monthly float64
	}{
		{"defaults", 10000, 8, 5, 500},
		{"no contributions", 25000, 3.5, 12, 0},
		{"no capital", 0, 6, 20, 250},
		{"zero rate", 5000, 0, 4, 100},
		{"long high rate", 1000, 49, 50, 1000},
		{"fractional", 1234.56, 7.25, 3.3, 87.5},
	}
	for _, tt := range tests {
		for _, period := range domain.AllReinvestmentPeriods() {
			t.Run(tt.name+"/"+string(period), func(t *testing.T) {
				res := Project(tt.capital, tt.rate, tt.term, tt.monthly, period)
				sum := res.TotalContributions + res.TotalInterest
				assert.InEpsilon(t, res.FinalAmount, sum, 1e-6)
				assert.InDelta(t, tt.capital+res.PeriodicContributions, res.TotalContributions, 1e-6)
			})
		}
	}
}

func TestBalancesNonDecreasing(t *testing.T) {
	for _, period := range domain.AllReinvestmentPeriods() {
		res := Project(5000, 6, 15, 200, period)
		prev := 0.0
		for _, y := range res.YearlyBreakdown {
			assert.GreaterOrEqual(t, y.EndingBalance, y.StartingBalance, "%s year %d", period, y.Year)
			assert.GreaterOrEqual(t, y.StartingBalance, prev, "%s year %d", period, y.Year)
			prev = y.EndingBalance
		}
	}
}

func TestMonotonicInRate(t *testing.T) {
	for _, period := range domain.AllReinvestmentPeriods() {
		prev := -1.0
		for rate := 0.0; rate <= 50; rate += 2.5 {
			res := Project(10000, rate, 10, 500, period)
			assert.Greater(t, res.FinalAmount, prev, "%s rate %v", period, rate)
			prev = res.FinalAmount
		}
	}
}

func TestMonotonicInTerm(t *testing.T) {
	for _, period := range domain.AllReinvestmentPeriods() {
		prev := -1.0
		for term := 1.0; term <= 50; term++ {
			res := Project(10000, 5, term, 500, period)
			assert.Greater(t, res.FinalAmount, prev, "%s term %v", period, term)
			prev = res.FinalAmount
		}
	}
}

func TestZeroCapitalZeroContribution(t *testing.T) {
	for _, period := range domain.AllReinvestmentPeriods() {
		for _, rate := range []float64{0, 5, 50} {
			res := Project(0, rate, 10, 0, period)
			assert.Equal(t, 0.0, res.FinalAmount)
			assert.Equal(t, 0.0, res.TotalInterest)
			assert.False(t, res.EffectiveReturnDefined)
			assert.Equal(t, 0.0, res.EffectiveAnnualReturnPercent)
		}
	}
}

func TestEffectiveAnnualReturn(t *testing.T) {
	r, ok := EffectiveAnnualReturn(12100, 10000, 2)
	assert.True(t, ok)
	assert.InDelta(t, 10, r, 1e-9)

	_, ok = EffectiveAnnualReturn(5000, 0, 10)
	assert.False(t, ok, "undefined without initial capital")

	_, ok = EffectiveAnnualReturn(5000, 1000, 0)
	assert.False(t, ok, "undefined without a term")

	// Without contributions the effective return equals the compounded nominal rate.
	res := Project(10000, 12, 5, 0, domain.PeriodAnnual)
	assert.InDelta(t, 12, res.EffectiveAnnualReturnPercent, 1e-9)
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, SimpleInterest{}, StrategyFor(domain.PeriodNone))
	assert.Equal(t, PeriodicCompounding{PeriodsPerYear: 12}, StrategyFor(domain.PeriodMonthly))
	assert.Equal(t, PeriodicCompounding{PeriodsPerYear: 4}, StrategyFor(domain.PeriodQuarterly))
	assert.Equal(t, "semiannual compounding", StrategyFor(domain.PeriodSemiannual).Name())
	assert.Equal(t, "simple interest", StrategyFor(domain.PeriodNone).Name())
}

func TestNonPositiveTerm(t *testing.T) {
	for _, period := range domain.AllReinvestmentPeriods() {
		res := Project(1000, 5, 0, 100, period)
		assert.Equal(t, 1000.0, res.FinalAmount)
		assert.Empty(t, res.YearlyBreakdown)
	}
}

func TestHugeTermIsClamped(t *testing.T) {
	for _, period := range domain.AllReinvestmentPeriods() {
		t.Run(string(period), func(t *testing.T) {
			res := Project(1000, 5, 1e300, 100, period)
			assert.Equal(t, domain.MaxProjectionYears, res.Parameters.TermYears)
			assert.Len(t, res.YearlyBreakdown, int(domain.MaxProjectionYears))
			assert.False(t, math.IsNaN(res.FinalAmount))
			assert.Greater(t, res.FinalAmount, 0.0)
		})
	}
}

func TestPeriodCountGuards(t *testing.T) {
	assert.Equal(t, 12000, TotalPeriods(1e300, 12))
	assert.Equal(t, 12000, TotalPeriods(math.Inf(1), 12))
	assert.Equal(t, 0, TotalPeriods(math.NaN(), 12))
	assert.Equal(t, 1000, yearCount(1e300))
	assert.Equal(t, 0, yearCount(math.NaN()))
}
