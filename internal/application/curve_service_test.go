package application_test

import (
	"errors"
	"testing"

	"github.com/elmaestro544/sgroadmap-sub001/internal/application"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

type stubRepository struct {
	tasks []schedule.Task
	err   error
}

func (r *stubRepository) LoadSchedule() ([]schedule.Task, error) {
	return r.tasks, r.err
}

func TestCurveService_Series(t *testing.T) {
	svc := application.NewCurveService(&stubRepository{tasks: testSchedule(t)})

	series, err := svc.Series()
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if series.TotalDays != 5 {
		t.Errorf("expected 5 days, got %d", series.TotalDays)
	}
}

func TestCurveService_Resampled(t *testing.T) {
	svc := application.NewCurveService(&stubRepository{tasks: testSchedule(t)})

	points, err := svc.Resampled(curve.ScaleWeeks)
	if err != nil {
		t.Fatalf("Resampled: %v", err)
	}
	if len(points) != 1 {
		t.Errorf("5 days at weekly scale must yield 1 bucket, got %d", len(points))
	}
	if points[0].Label != "Week 1" {
		t.Errorf("label = %q", points[0].Label)
	}
}

func TestCurveService_RepositoryError(t *testing.T) {
	wantErr := errors.New("no workspace")
	svc := application.NewCurveService(&stubRepository{err: wantErr})

	if _, err := svc.Series(); !errors.Is(err, wantErr) {
		t.Errorf("repository error must propagate, got %v", err)
	}
}

func TestCurveService_InvalidSchedule(t *testing.T) {
	tasks := testSchedule(t)
	tasks[0].Progress = -5
	svc := application.NewCurveService(&stubRepository{tasks: tasks})

	_, err := svc.Tasks()
	if !errors.Is(err, schedule.ErrInvalidSchedule) {
		t.Errorf("expected ErrInvalidSchedule, got %v", err)
	}
}
