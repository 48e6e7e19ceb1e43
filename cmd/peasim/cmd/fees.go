package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/output"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Tabulate brokerage fees per trade amount",
	Long: `Print the brokerage fee each provider charges for trade amounts from 0
to --max in steps of --step. Portfolio providers are charged once per fund.

Examples:
  peasim fees
  peasim fees -c plan.yaml --max 2000 --step 50 -f csv`,
	Args: cobra.NoArgs,
	RunE: runFees,
}

var (
	feesConfigPath string
	feesMax        string
	feesStep       string
	feesFormat     string
)

func init() {
	rootCmd.AddCommand(feesCmd)

	feesCmd.Flags().StringVarP(&feesConfigPath, "config", "c", "", "path to YAML or JSON config (default: built-in brokers)")
	feesCmd.Flags().StringVar(&feesMax, "max", "10000", "largest trade amount")
	feesCmd.Flags().StringVar(&feesStep, "step", "100", "trade amount increment")
	feesCmd.Flags().StringVarP(&feesFormat, "format", "f", "console", "output format (console, csv, markdown, json, html)")
}

func runFees(cmd *cobra.Command, args []string) error {
	maxAmount, err := decimal.NewFromString(feesMax)
	if err != nil {
		return fmt.Errorf("--max: %w", err)
	}
	step, err := decimal.NewFromString(feesStep)
	if err != nil {
		return fmt.Errorf("--step: %w", err)
	}

	providers := calculation.BuiltInProviders()
	if feesConfigPath != "" {
		cfg, err := loadOrExample(feesConfigPath)
		if err != nil {
			return err
		}
		providers = cfg.Providers
	}

	table, err := calculation.FeeComparisonTable(providers, maxAmount, step)
	if err != nil {
		return err
	}
	data, err := output.FormatTable(table, feesFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
