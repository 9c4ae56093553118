package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/config"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a scurve workspace in the current directory",
	Long: `Init creates the .scurve directory with a starter schedule.yaml and
a default AI provider config. Edit schedule.yaml with your tasks, then
run 'scurve curve' or 'scurve report'.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	repo := storage.NewFilesystemRepository(cwd)
	if repo.IsInitialized() {
		fmt.Fprintln(cmd.OutOrStdout(), "Workspace already initialized.")
		return nil
	}

	if err := repo.Initialize(); err != nil {
		return err
	}

	today := time.Now().UTC()
	start := schedule.NewDate(today.Year(), today.Month(), today.Day())
	starter := []schedule.Task{
		{ID: "t1", Name: "Design", Start: start, End: start.AddDays(6), Progress: 0, Kind: schedule.KindTask},
		{ID: "t2", Name: "Build", Start: start.AddDays(7), End: start.AddDays(20), Progress: 0, Kind: schedule.KindTask},
		{ID: "m1", Name: "Launch", Start: start.AddDays(21), End: start.AddDays(21), Progress: 0, Kind: schedule.KindMilestone},
	}
	if err := repo.SaveSchedule(starter); err != nil {
		return err
	}

	if err := config.SaveAIConfig(cwd, &config.AIConfig{Provider: "gemini"}); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Initialized scurve workspace.")
	fmt.Fprintln(cmd.OutOrStdout(), "Edit .scurve/schedule.yaml, then run 'scurve curve'.")
	return nil
}

func init() {
	RootCmd.AddCommand(initCmd)
}
