package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoScenarios is returned when a scenario file defines nothing to calculate.
	ErrNoScenarios = errors.New("no scenarios provided")
	// ErrUnsupportedFileType is returned for scenario files with an unknown extension.
	ErrUnsupportedFileType = errors.New("unsupported scenario file type")
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML, JSON or TOML file. Parameters are sanitized after
// decoding, so a negative or missing value becomes zero rather than an error.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, fileType(filename))
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Parse decodes scenario data of the given type ("yaml", "json" or "toml").
func (ip *InputParser) Parse(data []byte, kind string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch kind {
	case "yaml", "json":
		// JSON is valid YAML, so both go through the YAML decoder.
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", strings.ToUpper(kind), err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, kind)
	}

	for i := range config.Scenarios {
		config.Scenarios[i].Parameters = Sanitize(config.Scenarios[i].Parameters)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration checks the structure of a configuration. Numeric ranges are not
// validated; Sanitize clamps them instead.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if first, dup := seen[name]; dup {
			return fmt.Errorf("scenario %d: duplicate name %q (first used by scenario %d)", i, name, first)
		}
		seen[name] = i
	}
	return nil
}

// Sanitize applies the input-boundary rules: negative or non-finite amounts become zero, the term
// is capped at domain.MaxProjectionYears, an empty reinvestment period means monthly and an empty
// mode means final_amount.
func Sanitize(p domain.CalculationParameters) domain.CalculationParameters {
	p.InitialCapital = nonNegative(p.InitialCapital)
	p.AnnualRatePercent = nonNegative(p.AnnualRatePercent)
	p.TermYears = math.Min(nonNegative(p.TermYears), domain.MaxProjectionYears)
	p.MonthlyContribution = nonNegative(p.MonthlyContribution)
	p.TargetAmount = nonNegative(p.TargetAmount)
	if p.ReinvestmentPeriod == "" {
		p.ReinvestmentPeriod = domain.PeriodMonthly
	}
	if p.Mode == "" {
		p.Mode = domain.ModeFinalAmount
	}
	return p
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// CreateExampleConfiguration returns a scenario file covering every calculation mode with the
// calculator's default inputs.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := domain.DefaultParameters()

	withMode := func(mode domain.CalculationMode) domain.CalculationParameters {
		p := base
		p.Mode = mode
		return p
	}
	quarterly := base
	quarterly.ReinvestmentPeriod = domain.PeriodQuarterly
	simple := base
	simple.ReinvestmentPeriod = domain.PeriodNone

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Description: "10,000 at 8% for 5 years, 500 per month", Parameters: base},
			{Name: "Quarterly", Description: "Baseline compounded quarterly", Parameters: quarterly},
			{Name: "Simple interest", Description: "Baseline without reinvestment", Parameters: simple},
			{Name: "Required rate", Description: "Rate needed to reach 50,000", Parameters: withMode(domain.ModeInterestRate)},
			{Name: "Required capital", Description: "Initial capital needed to reach 50,000", Parameters: withMode(domain.ModeInitialCapital)},
			{Name: "Required term", Description: "Years needed to reach 50,000", Parameters: withMode(domain.ModeInvestmentTerm)},
			{Name: "Required contribution", Description: "Monthly contribution needed to reach 50,000", Parameters: withMode(domain.ModeMonthlyContribution)},
		},
	}
}

// SaveConfiguration writes a configuration as YAML, or TOML when the file name ends in .toml.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	var data []byte
	switch fileType(filename) {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		data = buf.Bytes()
	default:
		var err error
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

func fileType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
