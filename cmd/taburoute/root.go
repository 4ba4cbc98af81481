package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "taburoute",
	Short: "Cooperative truck/drone tabu search router",
	Long: `taburoute builds a feasible initial solution and refines it with a tabu
search over six move-family neighborhoods plus ejection-chain restarts,
reporting its progress as CSV/JSON and an optional convergence chart.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taburoute build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(version)

		return nil
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveMetricsCmd)
}
