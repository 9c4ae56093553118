package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/tui"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/wiring"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the S-curve interactively",
	Long:  `View opens a terminal table of the curve. Keys d/w/m/q switch the scale, esc quits.`,
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintln(cmd.OutOrStdout(), "No schedulable tasks yet. Nothing to view.")
		return nil
	}

	return tui.Run(series)
}

func init() {
	RootCmd.AddCommand(viewCmd)
}
