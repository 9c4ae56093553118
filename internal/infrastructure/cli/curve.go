package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/wiring"
)

var (
	curveScale string
	curveJSON  bool
)

var (
	curveHeaderStyle = lipgloss.NewStyle().Bold(true)
	curveBehindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	curveAheadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the planned vs. actual S-curve",
	Long: `Curve computes the cumulative planned-vs-actual series from the
workspace schedule and prints it at the requested scale.

Flags:
  --scale   days, weeks, months or quarters (default days)
  --json    Output in JSON format`,
	RunE: runCurve,
}

func runCurve(cmd *cobra.Command, args []string) error {
	scale, err := curve.ParseScale(curveScale)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	services, buildErr := wiring.BuildAppServices(cwd)
	if services == nil {
		return buildErr
	}

	series, err := services.Curve.Series()
	if err != nil {
		return MapError(err)
	}

	if series.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No schedulable tasks yet. Nothing to plot.")
		return nil
	}

	points := curve.Resample(series, scale)

	if curveJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"scale":     scale,
			"totalDays": series.TotalDays,
			"points":    points,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), curveHeaderStyle.Render(fmt.Sprintf("%-12s %10s %10s", "Period", "Planned %", "Actual %")))
	for _, p := range points {
		line := fmt.Sprintf("%-12s %10.2f %10.2f", p.Label, p.Planned, p.Actual)
		switch {
		case p.Actual < p.Planned:
			line = curveBehindStyle.Render(line)
		case p.Actual > p.Planned:
			line = curveAheadStyle.Render(line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	variance := series.Variance()
	switch {
	case variance > 0:
		fmt.Fprintf(cmd.OutOrStdout(), "\nVariance: %.2f points behind plan\n", variance)
	case variance < 0:
		fmt.Fprintf(cmd.OutOrStdout(), "\nVariance: %.2f points ahead of plan\n", -variance)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "\nVariance: on plan")
	}

	return nil
}

func init() {
	curveCmd.Flags().StringVar(&curveScale, "scale", "days", "Resampling scale: days, weeks, months, quarters")
	curveCmd.Flags().BoolVar(&curveJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(curveCmd)
}
