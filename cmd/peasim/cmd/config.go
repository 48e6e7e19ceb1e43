package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peasim/brokerage-simulator/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage simulation configuration files.

Subcommands:
  init     - Generate the example configuration
  validate - Validate an existing configuration file

Examples:
  peasim config init -o plan.yaml
  peasim config validate -f plan.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the example configuration file",
	Long: `Write the built-in example plan and brokers to a file. The format
follows the extension: .json writes JSON, anything else YAML.

Example:
  peasim config init -o plan.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check that a configuration file loads and passes validation.

Example:
  peasim config validate -f plan.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "peasim.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	_ = configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created example configuration: %s\n", configInitOutput)
	fmt.Fprintln(out, "\nEdit the file and run with:")
	fmt.Fprintf(out, "  peasim simulate -c %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sim := cfg.Simulation
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Configuration valid: %s\n", configValidatePath)
	fmt.Fprintf(out, "  Plan: %s monthly for %d years at %s%% growth\n", sim.MonthlyContribution, sim.NumberOfYears, sim.GrowthRatePercent)
	fmt.Fprintf(out, "  Providers: %d\n", len(cfg.Providers))
	return nil
}
