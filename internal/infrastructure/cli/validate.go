package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/storage"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the schedule for malformed dates or progress values",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	repo := storage.NewFilesystemRepository(cwd)
	tasks, err := repo.LoadSchedule()
	if err != nil {
		return MapError(err)
	}

	if err := schedule.ValidateAll(tasks); err != nil {
		return MapError(err)
	}

	work := 0
	for _, t := range tasks {
		if t.IsWorkItem() {
			work++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Schedule OK: %d rows, %d work tasks.\n", len(tasks), work)
	return nil
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
