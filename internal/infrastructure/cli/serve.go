package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/dashboard"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/watch"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/wiring"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the curve and last report over HTTP",
	Long: `Serve exposes the computed curve as JSON for a rendering layer:

  GET /api/series          full daily series
  GET /api/curve?scale=    resampled view (days, weeks, months, quarters)
  GET /api/report          last saved report
  GET /ws                  websocket pushing the series on schedule changes`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	services, buildErr := wiring.BuildAppServices(cwd)
	if services == nil {
		return buildErr
	}

	server := dashboard.NewServer(serveAddr, services.Curve, services.Workspace.Repo)

	watcher, err := watch.NewScheduleWatcher(services.Workspace.Repo.SchedulePath(), 500*time.Millisecond, func() {
		series, err := services.Curve.Series()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "schedule error: %v\n", err)
			return
		}
		server.Broadcast(series)
	})
	if err != nil {
		return err
	}

	go func() {
		if err := watcher.Run(cmd.Context()); err != nil && cmd.Context().Err() == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher stopped: %v\n", err)
		}
	}()

	return server.Start()
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	RootCmd.AddCommand(serveCmd)
}
