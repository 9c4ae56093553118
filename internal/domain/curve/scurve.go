// Package curve computes cumulative planned-vs-earned progress series
// (the classic project-management S-curve) from a task schedule.
package curve

import (
	"math"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/schedule"
)

// Point is one day of the S-curve: cumulative planned and actual progress
// as percentages of the whole schedule.
type Point struct {
	Day     int           `json:"day"`  // 1-based ordinal day from project start
	Date    schedule.Date `json:"date"` // calendar date for Day
	Planned float64       `json:"planned"`
	Actual  float64       `json:"actual"`
}

// Series is the full daily S-curve spanning the project window. It is
// created once per computation and never mutated afterwards; resampling
// always produces fresh derived slices.
type Series struct {
	Points    []Point `json:"points"`
	TotalDays int     `json:"totalDays"`
}

// IsEmpty reports whether the series carries no data (no qualifying tasks).
func (s Series) IsEmpty() bool {
	return s.TotalDays == 0
}

// FinalPoint returns the last point of the series and whether one exists.
func (s Series) FinalPoint() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Variance returns planned minus actual at the final day. Positive values
// mean the schedule is behind plan.
func (s Series) Variance() float64 {
	p, ok := s.FinalPoint()
	if !ok {
		return 0
	}
	return round2(p.Planned - p.Actual)
}

// Compute builds the daily S-curve series from a task schedule.
//
// The project window spans the minimum start to the maximum end across ALL
// rows, since milestones and summary rows can define the window edges. Only
// work tasks contribute to the curve values. A schedule with no work tasks
// yields an empty series, which is a "no data yet" signal rather than an
// error.
//
// Planned progress on a day is the share of work tasks whose end date has
// passed by that day (inclusive). Actual progress is the summed reported
// percent-complete of every work task that has started by that day, taken
// at face value from the input rather than derived from elapsed duration.
// Both values are rounded to two decimals at emission; intermediate sums
// are not rounded.
//
// Compute assumes the schedule passed eager validation; see
// schedule.ValidateAll.
func Compute(tasks []schedule.Task) Series {
	var work []schedule.Task
	for _, t := range tasks {
		if t.IsWorkItem() {
			work = append(work, t)
		}
	}
	if len(work) == 0 {
		return Series{Points: []Point{}, TotalDays: 0}
	}

	projectStart := tasks[0].Start
	projectEnd := tasks[0].End
	for _, t := range tasks[1:] {
		if t.Start.Before(projectStart) {
			projectStart = t.Start
		}
		if t.End.After(projectEnd) {
			projectEnd = t.End
		}
	}

	totalDays := schedule.DaysBetween(projectStart, projectEnd) + 1
	totalTasks := float64(len(work))
	points := make([]Point, 0, totalDays)

	for i := 0; i < totalDays; i++ {
		currentDate := projectStart.AddDays(i)

		plannedCount := 0
		earnedSum := 0.0
		for _, t := range work {
			if t.End.Compare(currentDate) <= 0 {
				plannedCount++
			}
			if t.Start.Compare(currentDate) <= 0 {
				earnedSum += t.Progress / 100
			}
		}

		points = append(points, Point{
			Day:     i + 1,
			Date:    currentDate,
			Planned: round2(float64(plannedCount) / totalTasks * 100),
			Actual:  round2(earnedSum / totalTasks * 100),
		})
	}

	return Series{Points: points, TotalDays: totalDays}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
