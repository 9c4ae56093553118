package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/wiring"
)

var (
	reportJSON bool
	reportSave bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a variance report with AI commentary",
	Long: `Report computes the S-curve, sends a down-sampled slice to the
configured AI provider, and prints the combined variance report. If the
analysis call fails, no partial report is produced.

Flags:
  --json   Output the full report in JSON format
  --save   Also write the report to .scurve/report.json`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	services, buildErr := wiring.BuildAppServices(cwd)
	if services == nil {
		return buildErr
	}
	if buildErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", buildErr)
	}

	tasks, err := services.Curve.Tasks()
	if err != nil {
		return MapError(err)
	}

	rep, err := services.Report.Generate(cmd.Context(), tasks)
	if err != nil {
		return MapError(err)
	}

	if reportSave {
		if err := services.Workspace.Repo.SaveReport(rep); err != nil {
			return err
		}
	}

	if reportJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Variance Report %s\n", rep.ID)
	fmt.Fprintln(cmd.OutOrStdout(), "------------------------------------")
	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(cmd.OutOrStdout(), "Span:      %d days\n", rep.SCurveData.TotalDays)
	if p, ok := rep.SCurveData.FinalPoint(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Final:     planned %.2f%%, actual %.2f%%\n", p.Planned, p.Actual)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nAnalysis\n--------\n%s\n", rep.Analysis.Analysis)
	fmt.Fprintf(cmd.OutOrStdout(), "\nOutlook\n-------\n%s\n", rep.Analysis.Outlook)

	return nil
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output in JSON format")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "Write the report to .scurve/report.json")
	RootCmd.AddCommand(reportCmd)
}
