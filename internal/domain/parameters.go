package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned when a calculation mode name cannot be parsed.
	ErrUnknownMode = errors.New("unknown calculation mode")
	// ErrUnknownPeriod is returned when a reinvestment period name cannot be parsed.
	ErrUnknownPeriod = errors.New("unknown reinvestment period")
)

// CalculationMode selects which field of CalculationParameters is the unknown.
type CalculationMode string

const (
	ModeFinalAmount         CalculationMode = "final_amount"
	ModeInterestRate        CalculationMode = "interest_rate"
	ModeInitialCapital      CalculationMode = "initial_capital"
	ModeInvestmentTerm      CalculationMode = "investment_term"
	ModeMonthlyContribution CalculationMode = "monthly_contribution"
)

var modeAliases = map[string]CalculationMode{
	"final_amount":         ModeFinalAmount,
	"final":                ModeFinalAmount,
	"project":              ModeFinalAmount,
	"interest_rate":        ModeInterestRate,
	"rate":                 ModeInterestRate,
	"initial_capital":      ModeInitialCapital,
	"capital":              ModeInitialCapital,
	"investment_term":      ModeInvestmentTerm,
	"term":                 ModeInvestmentTerm,
	"monthly_contribution": ModeMonthlyContribution,
	"contribution":         ModeMonthlyContribution,
}

// AllModes lists the calculation modes in display order.
func AllModes() []CalculationMode {
	return []CalculationMode{ModeFinalAmount, ModeInterestRate, ModeInitialCapital, ModeInvestmentTerm, ModeMonthlyContribution}
}

// ParseCalculationMode resolves a mode name or alias (case-insensitive, '-' and '_' interchangeable).
func ParseCalculationMode(s string) (CalculationMode, error) {
	key := normalizeEnumName(s)
	if key == "" {
		return ModeFinalAmount, nil
	}
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// IsSolve reports whether the mode solves for an input instead of projecting.
func (m CalculationMode) IsSolve() bool {
	return m != ModeFinalAmount && m != ""
}

func (m CalculationMode) String() string { return string(m) }

func (m CalculationMode) MarshalText() ([]byte, error) {
	if m == "" {
		return []byte(ModeFinalAmount), nil
	}
	return []byte(m), nil
}

func (m *CalculationMode) UnmarshalText(text []byte) error {
	parsed, err := ParseCalculationMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ReinvestmentPeriod is the compounding frequency. PeriodNone means simple interest.
type ReinvestmentPeriod string

const (
	PeriodMonthly    ReinvestmentPeriod = "monthly"
	PeriodQuarterly  ReinvestmentPeriod = "quarterly"
	PeriodSemiannual ReinvestmentPeriod = "semiannual"
	PeriodAnnual     ReinvestmentPeriod = "annual"
	PeriodNone       ReinvestmentPeriod = "none"
)

var periodAliases = map[string]ReinvestmentPeriod{
	"monthly":     PeriodMonthly,
	"month":       PeriodMonthly,
	"quarterly":   PeriodQuarterly,
	"quarter":     PeriodQuarterly,
	"semiannual":  PeriodSemiannual,
	"semi_annual": PeriodSemiannual,
	"biannual":    PeriodSemiannual,
	"annual":      PeriodAnnual,
	"annually":    PeriodAnnual,
	"yearly":      PeriodAnnual,
	"none":        PeriodNone,
	"simple":      PeriodNone,
}

// AllReinvestmentPeriods lists the periods from most to least frequent, simple interest last.
func AllReinvestmentPeriods() []ReinvestmentPeriod {
	return []ReinvestmentPeriod{PeriodMonthly, PeriodQuarterly, PeriodSemiannual, PeriodAnnual, PeriodNone}
}

// ParseReinvestmentPeriod resolves a period name or alias. An empty string yields monthly.
func ParseReinvestmentPeriod(s string) (ReinvestmentPeriod, error) {
	key := normalizeEnumName(s)
	if key == "" {
		return PeriodMonthly, nil
	}
	if p, ok := periodAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// PeriodsPerYear returns the compounding count per year, or 0 for simple interest.
func (p ReinvestmentPeriod) PeriodsPerYear() int {
	switch p {
	case PeriodMonthly, "":
		return 12
	case PeriodQuarterly:
		return 4
	case PeriodSemiannual:
		return 2
	case PeriodAnnual:
		return 1
	default:
		return 0
	}
}

// Compounds reports whether interest is reinvested.
func (p ReinvestmentPeriod) Compounds() bool { return p.PeriodsPerYear() > 0 }

func (p ReinvestmentPeriod) String() string { return string(p) }

func (p ReinvestmentPeriod) MarshalText() ([]byte, error) {
	if p == "" {
		return []byte(PeriodMonthly), nil
	}
	return []byte(p), nil
}

func (p *ReinvestmentPeriod) UnmarshalText(text []byte) error {
	parsed, err := ParseReinvestmentPeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func normalizeEnumName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// CalculationParameters is the complete input of one calculation.
// TargetAmount is only read when Mode solves for another field.
type CalculationParameters struct {
	InitialCapital      float64            `json:"initial_capital" yaml:"initial_capital" toml:"initial_capital"`
	AnnualRatePercent   float64            `json:"annual_rate_percent" yaml:"annual_rate_percent" toml:"annual_rate_percent"`
	TermYears           float64            `json:"term_years" yaml:"term_years" toml:"term_years"`
	MonthlyContribution float64            `json:"monthly_contribution" yaml:"monthly_contribution" toml:"monthly_contribution"`
	ReinvestmentPeriod  ReinvestmentPeriod `json:"reinvestment_period" yaml:"reinvestment_period" toml:"reinvestment_period"`
	TargetAmount        float64            `json:"target_amount,omitempty" yaml:"target_amount,omitempty" toml:"target_amount"`
	Mode                CalculationMode    `json:"mode" yaml:"mode" toml:"mode"`
}

// WithValue returns a copy with the field solved by mode set to v.
// ModeFinalAmount returns the parameters unchanged.
func (p CalculationParameters) WithValue(mode CalculationMode, v float64) CalculationParameters {
	switch mode {
	case ModeInterestRate:
		p.AnnualRatePercent = v
	case ModeInitialCapital:
		p.InitialCapital = v
	case ModeInvestmentTerm:
		p.TermYears = v
	case ModeMonthlyContribution:
		p.MonthlyContribution = v
	}
	return p
}

// Value returns the field that mode solves for. ModeFinalAmount yields TargetAmount.
func (p CalculationParameters) Value(mode CalculationMode) float64 {
	switch mode {
	case ModeInterestRate:
		return p.AnnualRatePercent
	case ModeInitialCapital:
		return p.InitialCapital
	case ModeInvestmentTerm:
		return p.TermYears
	case ModeMonthlyContribution:
		return p.MonthlyContribution
	default:
		return p.TargetAmount
	}
}

// MaxProjectionYears caps the term of a projection. Longer terms are clamped to it.
const MaxProjectionYears = 1000.0

// DefaultParameters mirrors the calculator's initial form values.
func DefaultParameters() CalculationParameters {
	return CalculationParameters{
		InitialCapital:      10000,
		AnnualRatePercent:   8,
		TermYears:           5,
		MonthlyContribution: 500,
		TargetAmount:        50000,
		ReinvestmentPeriod:  PeriodMonthly,
		Mode:                ModeFinalAmount,
	}
}
