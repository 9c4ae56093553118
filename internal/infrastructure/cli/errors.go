package cli

import (
	"errors"
	"fmt"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var schedErr *schedule.InvalidScheduleError
	if errors.As(err, &schedErr) {
		return NewCLIError(
			schedErr.Error(),
			fmt.Sprintf("Fix field '%s' of task '%s' in schedule.yaml, then retry", schedErr.Field, schedErr.TaskID),
			err,
		)
	}

	var analysisErr *report.AnalysisFailedError
	if errors.As(err, &analysisErr) {
		switch analysisErr.Kind {
		case report.FailureMalformedResponse:
			return NewCLIError(
				"the AI provider returned an unusable response",
				"Retry, or switch provider/model in .scurve/ai.yaml",
				err,
			)
		default:
			return NewCLIError(
				"could not reach the AI provider",
				"Check network and API key, then run 'scurve report' again",
				err,
			)
		}
	}

	return err
}
