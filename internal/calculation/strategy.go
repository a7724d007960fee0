package calculation

import (
	"math"

	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/decimal"
)

// periodEpsilon absorbs float artefacts such as 1.0000000000000002*12 before rounding a period count up.
const periodEpsilon = 1e-9

// Growth is the raw outcome of growing a capital over a term.
type Growth struct {
	FinalAmount           float64
	PeriodicContributions float64
	Years                 []domain.YearlyRecord
}

// GrowthStrategy defines how a balance accrues interest over the term.
type GrowthStrategy interface {
	Grow(capital, ratePercent, termYears, monthlyContribution float64) Growth
	Name() string
}

// StrategyFor selects the strategy matching a reinvestment period.
func StrategyFor(period domain.ReinvestmentPeriod) GrowthStrategy {
	if ppy := period.PeriodsPerYear(); ppy > 0 {
		return PeriodicCompounding{PeriodsPerYear: ppy}
	}
	return SimpleInterest{}
}

// TotalPeriods returns the number of compounding periods simulated for a term.
// A partial trailing period counts as a full one. Terms beyond MaxProjectionYears are capped.
func TotalPeriods(termYears float64, periodsPerYear int) int {
	if !(termYears > 0) || periodsPerYear <= 0 {
		return 0
	}
	termYears = math.Min(termYears, domain.MaxProjectionYears)
	return int(math.Ceil(termYears*float64(periodsPerYear) - periodEpsilon))
}

// yearCount returns the number of yearly records for a term.
func yearCount(termYears float64) int {
	if !(termYears > 0) {
		return 0
	}
	termYears = math.Min(termYears, domain.MaxProjectionYears)
	return int(math.Ceil(termYears - periodEpsilon))
}

// PeriodicCompounding reinvests interest every 12/PeriodsPerYear months.
// Contributions are credited at the end of each period, after that period's interest.
type PeriodicCompounding struct {
	PeriodsPerYear int
}

func (pc PeriodicCompounding) Name() string {
	switch pc.PeriodsPerYear {
	case 12:
		return "monthly compounding"
	case 4:
		return "quarterly compounding"
	case 2:
		return "semiannual compounding"
	case 1:
		return "annual compounding"
	default:
		return "periodic compounding"
	}
}

func (pc PeriodicCompounding) Grow(capital, ratePercent, termYears, monthlyContribution float64) Growth {
	ppy := pc.PeriodsPerYear
	if ppy <= 0 {
		ppy = 12
	}
	periodRate := ratePercent / 100 / float64(ppy)
	periodContribution := monthlyContribution * 12 / float64(ppy)
	totalPeriods := TotalPeriods(termYears, ppy)

	balance := capital
	contributed := 0.0
	years := make([]domain.YearlyRecord, 0, (totalPeriods+ppy-1)/ppy)

	yearStart := balance
	yearInterest, yearContributions := 0.0, 0.0
	for period := 0; period < totalPeriods; period++ {
		next := balance*(1+periodRate) + periodContribution
		yearInterest += next - balance - periodContribution
		yearContributions += periodContribution
		contributed += periodContribution
		balance = next

		if (period+1)%ppy == 0 || period == totalPeriods-1 {
			years = append(years, yearlyRecord(len(years)+1, yearStart, yearInterest, yearContributions, balance))
			yearStart = balance
			yearInterest, yearContributions = 0, 0
		}
	}

	return Growth{FinalAmount: balance, PeriodicContributions: contributed, Years: years}
}

// SimpleInterest accrues interest on the initial capital plus every contribution for the whole term,
// without reinvesting it. The yearly schedule spreads contributions and interest linearly.
type SimpleInterest struct{}

func (SimpleInterest) Name() string { return "simple interest" }

func (SimpleInterest) Grow(capital, ratePercent, termYears, monthlyContribution float64) Growth {
	if termYears <= 0 {
		return Growth{FinalAmount: capital}
	}
	periodic := monthlyContribution * 12 * termYears
	interest := (capital + periodic) * (ratePercent / 100) * termYears
	final := capital + periodic + interest

	n := yearCount(termYears)
	years := make([]domain.YearlyRecord, 0, n)
	balance := capital
	for y := 1; y <= n; y++ {
		fraction := math.Min(1, termYears-float64(y-1))
		contributions := monthlyContribution * 12 * fraction
		yearInterest := interest * fraction / termYears
		end := balance + contributions + yearInterest
		if y == n {
			end = final
		}
		years = append(years, yearlyRecord(y, balance, yearInterest, contributions, end))
		balance = end
	}

	return Growth{FinalAmount: final, PeriodicContributions: periodic, Years: years}
}

func yearlyRecord(year int, start, interest, contributions, end float64) domain.YearlyRecord {
	return domain.YearlyRecord{
		Year:            year,
		StartingBalance: decimal.RoundUnits(start),
		Interest:        decimal.RoundUnits(interest),
		Contributions:   decimal.RoundUnits(contributions),
		EndingBalance:   decimal.RoundUnits(end),
	}
}
