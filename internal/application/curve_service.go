package application

import (
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

// ScheduleRepository loads the task schedule snapshot the curve is
// computed from. Satisfied by storage.FilesystemRepository.
type ScheduleRepository interface {
	LoadSchedule() ([]schedule.Task, error)
}

// CurveService computes and resamples the S-curve for the workspace
// schedule. It holds no state; every call re-reads and recomputes.
type CurveService struct {
	repo ScheduleRepository
}

// NewCurveService creates a curve service over the given repository.
func NewCurveService(repo ScheduleRepository) *CurveService {
	return &CurveService{repo: repo}
}

// Tasks loads and validates the workspace schedule.
func (s *CurveService) Tasks() ([]schedule.Task, error) {
	tasks, err := s.repo.LoadSchedule()
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateAll(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Series computes the daily S-curve from the workspace schedule.
func (s *CurveService) Series() (curve.Series, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return curve.Series{}, err
	}
	return curve.Compute(tasks), nil
}

// Resampled computes the series and re-buckets it at the given scale.
func (s *CurveService) Resampled(scale curve.Scale) ([]curve.ResampledPoint, error) {
	series, err := s.Series()
	if err != nil {
		return nil, err
	}
	return curve.Resample(series, scale), nil
}
