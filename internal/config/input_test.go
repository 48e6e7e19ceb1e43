package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "simulation:\n" +
		"  growth_rate_percent: 7\n" +
		"  starting_value: 0\n" +
		"  monthly_contribution: 833\n" +
		"  number_of_years: 15\n" +
		"  contribution_limit: 150000\n" +
		"  withdrawal_rate_percent: 4\n" +
		"  expense_ratio_override: 0\n\n" +
		"providers:\n" +
		"  - name: \"Bourse Direct\"\n" +
		"    brokerage:\n" +
		"      preset: bourse-direct\n" +
		"    expense_ratio: 0.38\n" +
		"  - name: \"Custom\"\n" +
		"    brokerage:\n" +
		"      tiers:\n" +
		"        - up_to: 500\n" +
		"          flat: 1\n" +
		"        - rate_percent: 0.2\n" +
		"          max: 10\n" +
		"    withdrawal_fee:\n" +
		"      tiers:\n" +
		"        - flat: 2.5\n" +
		"    portfolio:\n" +
		"      - fund:\n" +
		"          name: \"World\"\n" +
		"          expense_ratio: 0.38\n" +
		"        percentage: 75\n" +
		"      - fund:\n" +
		"          name: \"Bonds\"\n" +
		"          expense_ratio: 0.1\n" +
		"        percentage: 25\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "config.yaml", testConfig))
	require.NoError(t, err)

	sim := config.Simulation
	assert.True(t, sim.GrowthRatePercent.Equal(decimal.NewFromInt(7)))
	assert.True(t, sim.MonthlyContribution.Equal(decimal.NewFromInt(833)))
	assert.Equal(t, 15, sim.NumberOfYears)
	require.NotNil(t, sim.ContributionLimit)
	assert.True(t, sim.ContributionLimit.Equal(decimal.NewFromInt(150000)))
	require.NotNil(t, sim.ExpenseRatioOverride, "explicit zero override must survive parsing")
	assert.True(t, sim.ExpenseRatioOverride.IsZero())
	assert.Nil(t, sim.TaxRatePercent)

	require.Len(t, config.Providers, 2)
	assert.Equal(t, calculation.PresetBourseDirect, config.Providers[0].Brokerage.Preset)
	custom := config.Providers[1]
	require.Len(t, custom.Brokerage.Tiers, 2)
	assert.Nil(t, custom.Brokerage.Tiers[1].UpTo)
	assert.True(t, custom.Brokerage.Tiers[1].Max.Equal(decimal.NewFromInt(10)))
	assert.True(t, custom.PortfolioPercentageTotal().Equal(decimal.NewFromInt(100)))
}

func TestLoadFromFile_DefaultsToBuiltInProviders(t *testing.T) {
	testConfig := "simulation:\n" +
		"  growth_rate_percent: 5\n" +
		"  monthly_contribution: 200\n" +
		"  number_of_years: 10\n" +
		"  withdrawal_rate_percent: 3.5\n" +
		"  tax_rate_percent: 30\n"

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "minimal.yml", testConfig))
	require.NoError(t, err)

	assert.Equal(t, domain.ProviderNames(calculation.BuiltInProviders()), domain.ProviderNames(config.Providers))
	assert.Nil(t, config.Simulation.ContributionLimit)
	assert.True(t, config.Simulation.EffectiveTaxRate().Equal(decimal.NewFromInt(30)))
}

func TestLoadFromFile_JSON(t *testing.T) {
	testConfig := `{
  "simulation": {
    "growth_rate_percent": 7,
    "monthly_contribution": "833",
    "number_of_years": 3,
    "contribution_limit": 15000,
    "withdrawal_rate_percent": 4
  },
  "providers": [
    {"name": "Saxo", "brokerage": {"preset": "saxo"}, "expense_ratio": 0.38}
  ]
}`

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "config.json", testConfig))
	require.NoError(t, err)
	assert.Equal(t, 3, config.Simulation.NumberOfYears)
	assert.True(t, config.Simulation.MonthlyContribution.Equal(decimal.NewFromInt(833)))
	require.Len(t, config.Providers, 1)
	assert.Equal(t, "Saxo", config.Providers[0].Name)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
simulation:
	growth_rate_percent: 7
	monthly_contribution: "not-a-number"
`

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", testConfig))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.json", `{"simulation": [}`))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	testConfig := "simulation:\n" +
		"  growth_rate_percent: 7\n" +
		"  monthly_contribution: 833\n" +
		"  number_of_years: 0\n"

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "invalid.yaml", testConfig))
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.True(t, errors.Is(err, calculation.ErrInvalidParameter))
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{"example is valid", func(*domain.Configuration) {}, ""},
		{"negative starting value", func(c *domain.Configuration) { c.Simulation.StartingValue = decimal.NewFromInt(-1) }, "simulation:"},
		{"no providers", func(c *domain.Configuration) { c.Providers = nil }, "providers:"},
		{"bad portfolio", func(c *domain.Configuration) {
			c.Providers[3].Portfolio[1].Percentage = decimal.NewFromInt(10)
		}, "sum to 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, parser.ValidateConfiguration(nil))
}

func TestCreateExampleConfiguration(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()

	assert.Equal(t, 15, config.Simulation.NumberOfYears)
	assert.True(t, config.Simulation.MonthlyContribution.Equal(decimal.NewFromInt(833)))
	require.Len(t, config.Providers, 4)
	assert.True(t, config.Providers[3].HasPortfolio())
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original := parser.CreateExampleConfiguration()

	for _, name := range []string{"example.yaml", "example.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, parser.SaveConfiguration(original, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, domain.ProviderNames(original.Providers), domain.ProviderNames(loaded.Providers))
			assert.True(t, loaded.Simulation.GrowthRatePercent.Equal(original.Simulation.GrowthRatePercent))
			assert.True(t, loaded.Simulation.ContributionLimit.Equal(*original.Simulation.ContributionLimit))
			assert.Nil(t, loaded.Simulation.ExpenseRatioOverride)
			assert.Equal(t, calculation.PresetSaxo, loaded.Providers[2].Brokerage.Preset)
			assert.True(t, loaded.Providers[3].Portfolio[1].Fund.ExpenseRatio.Equal(decimal.NewFromFloat(0.2)))
		})
	}
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	err := NewInputParser().SaveConfiguration(NewInputParser().CreateExampleConfiguration(),
		filepath.Join(t.TempDir(), "missing", "dir", "config.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}
