package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

func TestMapError_Nil(t *testing.T) {
	if MapError(nil) != nil {
		t.Error("nil must map to nil")
	}
}

func TestMapError_Unknown(t *testing.T) {
	err := errors.New("plain")
	if MapError(err) != err {
		t.Error("unmapped errors must pass through untouched")
	}
}

func TestMapError_InvalidSchedule(t *testing.T) {
	src := &schedule.InvalidScheduleError{TaskID: "t3", Field: "progress", Reason: "must be between 0 and 100"}

	mapped := MapError(src)
	var cliErr *CLIError
	if !errors.As(mapped, &cliErr) {
		t.Fatalf("expected CLIError, got %T", mapped)
	}
	if !strings.Contains(cliErr.Hint, "t3") || !strings.Contains(cliErr.Hint, "progress") {
		t.Errorf("hint should name the task and field: %q", cliErr.Hint)
	}
	if !errors.Is(mapped, schedule.ErrInvalidSchedule) {
		t.Error("wrapped error must still match the sentinel")
	}
}

func TestMapError_AnalysisFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"unavailable", report.NewUnavailableError(errors.New("timeout")), "API key"},
		{"malformed", report.NewMalformedResponseError(errors.New("not json")), "ai.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			var cliErr *CLIError
			if !errors.As(mapped, &cliErr) {
				t.Fatalf("expected CLIError, got %T", mapped)
			}
			if !strings.Contains(cliErr.Hint, tt.wantHint) {
				t.Errorf("hint %q should mention %q", cliErr.Hint, tt.wantHint)
			}
			if cliErr.ExitCode != 1 {
				t.Errorf("exit code = %d", cliErr.ExitCode)
			}
		})
	}
}
