package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file.
// Files ending in .json are decoded as JSON, everything else as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, isJSON(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes a configuration without validating it. Providers may be
// omitted, in which case the built-in catalog is used.
func (ip *InputParser) Parse(data []byte, asJSON bool) (*domain.Configuration, error) {
	var config domain.Configuration
	if asJSON {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if len(config.Providers) == 0 {
		config.Providers = calculation.BuiltInProviders()
	}
	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("%w: configuration is empty", calculation.ErrInvalidParameter)
	}
	if err := calculation.ValidateParameters(config.Simulation); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if err := calculation.ValidateProviders(config.Providers); err != nil {
		return fmt.Errorf("providers: %w", err)
	}
	return nil
}

// SaveConfiguration writes config to filename, as JSON when the name ends in
// .json and YAML otherwise.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		data []byte
		err  error
	)
	if isJSON(filename) {
		data, err = json.MarshalIndent(config, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration returns the default comparison: 833 a month for
// fifteen years at 7% growth, capped at the 150,000 PEA ceiling, across the
// built-in brokers plus a two-fund portfolio.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	limit := decimal.NewFromInt(150000)

	providers := calculation.BuiltInProviders()
	providers = append(providers, domain.Provider{
		Name:      "Bourse Direct (World + Emerging)",
		Brokerage: domain.FeeScheduleConfig{Preset: calculation.PresetBourseDirect},
		Portfolio: []domain.Holding{
			{Fund: calculation.AmundiMSCIWorld, Percentage: decimal.NewFromInt(80)},
			{Fund: domain.Fund{Name: "Amundi MSCI Emerging Markets", ExpenseRatio: decimal.NewFromFloat(0.2)}, Percentage: decimal.NewFromInt(20)},
		},
	})

	return &domain.Configuration{
		Simulation: domain.SimulationParameters{
			GrowthRatePercent:     decimal.NewFromInt(7),
			StartingValue:         decimal.Zero,
			MonthlyContribution:   decimal.NewFromInt(833),
			NumberOfYears:         15,
			ContributionLimit:     &limit,
			WithdrawalRatePercent: decimal.NewFromInt(4),
		},
		Providers: providers,
	}
}

func isJSON(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}
