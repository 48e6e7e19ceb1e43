package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/config"
	"github.com/peasim/brokerage-simulator/internal/domain"
	"github.com/peasim/brokerage-simulator/internal/output"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the accumulation and withdrawal comparison",
	Long: `Project the contribution plan for every provider and print the
accumulation and withdrawal tables.

Without --config the built-in example plan and brokers are used. Plan values
can be overridden from the command line.

Examples:
  peasim simulate
  peasim simulate -c plan.yaml -f csv -o reports/
  peasim simulate --years 20 --monthly 500 --limit 150000 -f markdown --pretty`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var (
	simConfigPath string
	simFormat     string
	simOutputDir  string
	simParallel   bool
	simPretty     bool
	simStyle      string
	simWidth      int

	simYears          int
	simMonthly        string
	simGrowth         string
	simStart          string
	simLimit          string
	simWithdrawalRate string
	simTaxRate        string
	simExpenseRatio   string
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	f := simulateCmd.Flags()
	f.StringVarP(&simConfigPath, "config", "c", "", "path to YAML or JSON config (default: built-in example)")
	f.StringVarP(&simFormat, "format", "f", "console", fmt.Sprintf("output format (%s, all)", strings.Join(output.AvailableFormatterNames(), ", ")))
	f.StringVarP(&simOutputDir, "output", "o", "", "write the report into this directory instead of stdout")
	f.BoolVar(&simParallel, "parallel", false, "project providers concurrently")
	f.BoolVar(&simPretty, "pretty", false, "style markdown output for the terminal")
	f.StringVar(&simStyle, "style", "", "glamour style for --pretty (dark, light, notty, ...; default: auto)")
	f.IntVar(&simWidth, "width", 100, "word wrap width for --pretty")

	f.IntVar(&simYears, "years", 0, "override number of years")
	f.StringVar(&simMonthly, "monthly", "", "override monthly contribution")
	f.StringVar(&simGrowth, "growth", "", "override annual growth rate percent")
	f.StringVar(&simStart, "start", "", "override starting value")
	f.StringVar(&simLimit, "limit", "", "override contribution limit (\"none\" removes it)")
	f.StringVar(&simWithdrawalRate, "withdrawal-rate", "", "override annual withdrawal rate percent")
	f.StringVar(&simTaxRate, "tax-rate", "", "override tax rate on gains percent")
	f.StringVar(&simExpenseRatio, "expense-ratio", "", "override every provider's expense ratio percent")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadOrExample(simConfigPath)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, &cfg.Simulation); err != nil {
		return err
	}

	engine := calculation.NewSimulationEngine()
	engine.Parallel = simParallel
	engine.SetLogger(newLogger(cmd.ErrOrStderr()))

	res, err := engine.Run(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if simOutputDir != "" {
		paths, err := output.GenerateReport(res, simFormat, simOutputDir)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", p)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := output.Render(&buf, res, simFormat); err != nil {
		return err
	}
	data := buf.Bytes()
	if simPretty && output.NormalizeFormatName(simFormat) == "markdown" {
		if data, err = output.RenderTerminal(data, simStyle, simWidth); err != nil {
			return err
		}
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadOrExample reads path, or returns the example configuration when path is empty.
func loadOrExample(path string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if path == "" {
		return parser.CreateExampleConfiguration(), nil
	}
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cmd *cobra.Command, p *domain.SimulationParameters) error {
	flags := cmd.Flags()
	if flags.Changed("years") {
		p.NumberOfYears = simYears
	}

	decimals := []struct {
		flag  string
		value string
		set   func(decimal.Decimal)
	}{
		{"monthly", simMonthly, func(d decimal.Decimal) { p.MonthlyContribution = d }},
		{"growth", simGrowth, func(d decimal.Decimal) { p.GrowthRatePercent = d }},
		{"start", simStart, func(d decimal.Decimal) { p.StartingValue = d }},
		{"withdrawal-rate", simWithdrawalRate, func(d decimal.Decimal) { p.WithdrawalRatePercent = d }},
		{"tax-rate", simTaxRate, func(d decimal.Decimal) { p.TaxRatePercent = &d }},
		{"expense-ratio", simExpenseRatio, func(d decimal.Decimal) { p.ExpenseRatioOverride = &d }},
	}
	for _, o := range decimals {
		if !flags.Changed(o.flag) {
			continue
		}
		d, err := decimal.NewFromString(o.value)
		if err != nil {
			return fmt.Errorf("--%s: %w", o.flag, err)
		}
		o.set(d)
	}

	if flags.Changed("limit") {
		if simLimit == "none" {
			p.ContributionLimit = nil
			return nil
		}
		d, err := decimal.NewFromString(simLimit)
		if err != nil {
			return fmt.Errorf("--limit: %w", err)
		}
		p.ContributionLimit = &d
	}
	return nil
}
