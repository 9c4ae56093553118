package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/watch"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/wiring"
)

var watchDebounceMs int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the curve whenever the schedule changes",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	services, buildErr := wiring.BuildAppServices(cwd)
	if services == nil {
		return buildErr
	}

	printCurve := func() {
		series, err := services.Curve.Series()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "schedule error: %v\n", MapError(err))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n[%s] schedule changed\n", time.Now().Format("15:04:05"))
		for _, p := range series.Points {
			fmt.Fprintf(cmd.OutOrStdout(), "Day %-4d %s  planned %6.2f  actual %6.2f\n", p.Day, p.Date, p.Planned, p.Actual)
		}
	}

	printCurve()

	watcher, err := watch.NewScheduleWatcher(
		services.Workspace.Repo.SchedulePath(),
		time.Duration(watchDebounceMs)*time.Millisecond,
		printCurve,
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nWatching schedule.yaml (ctrl+c to stop)...")
	return watcher.Run(cmd.Context())
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounceMs, "debounce", 500, "Debounce window in milliseconds")
	RootCmd.AddCommand(watchCmd)
}
