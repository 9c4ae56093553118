package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

// Analyst is the narrow contract the assembler needs from the variance
// analyst. Satisfied by *AnalystService.
type Analyst interface {
	RequestAnalysis(ctx context.Context, sample []curve.Point) (*report.Analysis, error)
}

// ReportService assembles full variance reports: compute the series, send
// a down-sampled slice to the analyst, merge the result. Every call
// recomputes and re-requests from scratch; there is no memoization and no
// partial result on failure.
type ReportService struct {
	analyst Analyst
}

// NewReportService creates a report assembler backed by the given analyst.
func NewReportService(analyst Analyst) *ReportService {
	return &ReportService{analyst: analyst}
}

// Generate validates the schedule, computes the S-curve, requests the
// variance analysis, and returns the combined report. If any step fails
// the error propagates untouched and no report is returned.
func (s *ReportService) Generate(ctx context.Context, tasks []schedule.Task) (*report.Report, error) {
	if err := schedule.ValidateAll(tasks); err != nil {
		return nil, err
	}

	series := curve.Compute(tasks)

	analysis, err := s.analyst.RequestAnalysis(ctx, curve.Downsample(series))
	if err != nil {
		return nil, err
	}

	return &report.Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		SCurveData:  series,
		Analysis:    *analysis,
	}, nil
}
