package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the peasim CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "peasim version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "PEA brokerage accumulation and withdrawal simulator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
