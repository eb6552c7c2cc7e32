package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Project long-run investment outcomes under stochastic returns",
	Long: `nestegg projects an investment trajectory under stochastic market
returns and inflation, producing a distribution of outcomes rather than a
single number. Runs are fully determined by their seed, so a seed value is
all it takes to share a run.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(serveCmd)
}
