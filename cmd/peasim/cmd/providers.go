package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/peasim/brokerage-simulator/internal/calculation"
	"github.com/peasim/brokerage-simulator/internal/output"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the built-in brokers and fee presets",
	Long: `Show the brokerage presets that can be referenced from a configuration
with "preset:" and the brokers used when a configuration lists none.`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROVIDER\tPRESET\tEXPENSE RATIO")
	for _, p := range calculation.BuiltInProviders() {
		ratio := "-"
		if p.ExpenseRatio != nil {
			ratio = output.FormatPercentage(*p.ExpenseRatio)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Brokerage.Preset, ratio)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Presets:")
	for _, name := range calculation.PresetNames() {
		cfg, err := calculation.LookupSchedule(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s (%d tiers)\n", name, len(cfg.Tiers))
	}
	return nil
}
