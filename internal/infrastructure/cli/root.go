// Package cli implements the scurve command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "scurve",
	Version: Version,
	Short:   "Planned vs. earned progress curves for project schedules",
	Long: `Scurve turns a task schedule into the classic S-curve of cumulative
planned vs. actual progress, resamples it for display, and produces a
variance report with AI-written commentary.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
