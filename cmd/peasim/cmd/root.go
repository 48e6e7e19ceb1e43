package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/peasim/brokerage-simulator/internal/calculation"
)

var rootCmd = &cobra.Command{
	Use:   "peasim",
	Short: "Compare PEA brokers over a long-term monthly investment plan",
	Long: `Peasim projects a monthly contribution plan into a French PEA account at
several brokers, then compares the monthly income each final balance supports
after brokerage fees, withdrawal fees and tax on gains.

It provides tools for:
  - Year-by-year accumulation tables per broker
  - Withdrawal breakdowns at a target withdrawal rate
  - Brokerage fee comparisons across trade amounts
  - Generating and validating YAML/JSON configurations`,
	SilenceUsage: true,
}

var (
	verbose  bool
	logLevel string
)

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels a running simulation between years.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine progress to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum log level with --verbose (debug, info, warn, error)")
}

// newLogger returns the engine logger selected by the global flags.
func newLogger(stderr io.Writer) calculation.Logger {
	if !verbose {
		return calculation.NopLogger{}
	}
	return calculation.NewStdLogger(log.New(stderr, "peasim ", log.LstdFlags), calculation.ParseLevel(logLevel))
}
