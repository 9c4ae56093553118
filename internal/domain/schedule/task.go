package schedule

import (
	"errors"
	"fmt"
)

// Kind discriminates schedule row types. Only work tasks contribute
// progress to the curve; milestones and summary rows still widen the
// project window.
type Kind string

const (
	KindTask      Kind = "task"
	KindMilestone Kind = "milestone"
	KindSummary   Kind = "summary"
)

// Task is one row of a project schedule as supplied by the scheduling
// feature. The curve subsystem only ever reads a snapshot; it never
// mutates tasks.
type Task struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Start    Date    `json:"start" yaml:"start"`
	End      Date    `json:"end" yaml:"end"`
	Progress float64 `json:"progress" yaml:"progress"` // percent complete, 0-100
	Kind     Kind    `json:"kind" yaml:"kind"`
}

// IsWorkItem reports whether the row is a schedulable unit of work.
// Rows with no explicit kind are treated as work tasks.
func (t Task) IsWorkItem() bool {
	return t.Kind == KindTask || t.Kind == ""
}

// ErrInvalidSchedule is the sentinel for all schedule validation failures.
var ErrInvalidSchedule = errors.New("invalid schedule")

// InvalidScheduleError names the offending task and field so callers can
// surface an actionable message instead of propagating NaN percentages.
type InvalidScheduleError struct {
	TaskID string
	Field  string
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule: task %q: %s: %s", e.TaskID, e.Field, e.Reason)
}

// Is allows errors.Is to match against ErrInvalidSchedule.
func (e *InvalidScheduleError) Is(target error) bool {
	return target == ErrInvalidSchedule
}

// Validate checks a single task for malformed dates or progress.
func (t Task) Validate() error {
	if t.Start.IsZero() {
		return &InvalidScheduleError{TaskID: t.ID, Field: "start", Reason: "missing date"}
	}
	if t.End.IsZero() {
		return &InvalidScheduleError{TaskID: t.ID, Field: "end", Reason: "missing date"}
	}
	if t.End.Before(t.Start) {
		return &InvalidScheduleError{
			TaskID: t.ID,
			Field:  "end",
			Reason: fmt.Sprintf("end %s is before start %s", t.End, t.Start),
		}
	}
	if t.Progress < 0 || t.Progress > 100 {
		return &InvalidScheduleError{
			TaskID: t.ID,
			Field:  "progress",
			Reason: fmt.Sprintf("%.2f is outside [0, 100]", t.Progress),
		}
	}
	return nil
}

// ValidateAll checks every row and returns the first failure.
func ValidateAll(tasks []Task) error {
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
