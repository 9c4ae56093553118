package curve

import (
	"fmt"
	"math"
)

// Scale selects the bucket width for presentation resampling.
type Scale string

const (
	ScaleDays     Scale = "days"
	ScaleWeeks    Scale = "weeks"
	ScaleMonths   Scale = "months"
	ScaleQuarters Scale = "quarters"
)

// ParseScale validates a user-supplied scale string.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleDays, ScaleWeeks, ScaleMonths, ScaleQuarters:
		return Scale(s), nil
	case "":
		return ScaleDays, nil
	default:
		return "", fmt.Errorf("unknown scale %q (want days, weeks, months or quarters)", s)
	}
}

// ResampledPoint is a presentation bucket: a label replaces the day/date
// pair, and the values are the last point of the bucket. Progress is read
// as an end-of-period snapshot, never averaged.
type ResampledPoint struct {
	Label   string  `json:"label"`
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// Resample re-buckets the daily series for display at the given scale.
// The source series is never mutated; the result is always a fresh slice.
// An empty series yields an empty result.
func Resample(s Series, scale Scale) []ResampledPoint {
	out := []ResampledPoint{}
	if len(s.Points) == 0 {
		return out
	}

	switch scale {
	case ScaleWeeks:
		for i := 0; i < len(s.Points); i += 7 {
			end := i + 7
			if end > len(s.Points) {
				end = len(s.Points)
			}
			last := s.Points[end-1]
			out = append(out, ResampledPoint{
				Label:   fmt.Sprintf("Week %d", i/7+1),
				Planned: last.Planned,
				Actual:  last.Actual,
			})
		}

	case ScaleMonths:
		out = groupByKey(s.Points, func(p Point) (string, string) {
			key := fmt.Sprintf("%04d-%02d", p.Date.Year, int(p.Date.Month))
			label := fmt.Sprintf("%s %d", p.Date.Month.String()[:3], p.Date.Year)
			return key, label
		})

	case ScaleQuarters:
		out = groupByKey(s.Points, func(p Point) (string, string) {
			key := fmt.Sprintf("%d-Q%d", p.Date.Year, p.Date.Quarter())
			return key, key
		})

	default: // ScaleDays: identity mapping
		for _, p := range s.Points {
			out = append(out, ResampledPoint{
				Label:   fmt.Sprintf("Day %d", p.Day),
				Planned: p.Planned,
				Actual:  p.Actual,
			})
		}
	}

	return out
}

// groupByKey buckets chronological points by key in first-encounter order
// and keeps the last point of each bucket. Input points are already
// chronological, so encounter order matches calendar order.
func groupByKey(points []Point, keyFn func(Point) (key, label string)) []ResampledPoint {
	out := []ResampledPoint{}
	index := map[string]int{}
	for _, p := range points {
		key, label := keyFn(p)
		rp := ResampledPoint{Label: label, Planned: p.Planned, Actual: p.Actual}
		if i, ok := index[key]; ok {
			out[i] = rp
			continue
		}
		index[key] = len(out)
		out = append(out, rp)
	}
	return out
}

// Downsample selects at most ten evenly spaced points from the series for
// the analyst payload. The stride is ceil(n/10) with a minimum of one, a
// backpressure bound against unbounded schedules.
func Downsample(s Series) []Point {
	if len(s.Points) == 0 {
		return []Point{}
	}
	stride := int(math.Ceil(float64(len(s.Points)) / 10))
	if stride < 1 {
		stride = 1
	}
	out := make([]Point, 0, 10)
	for i := 0; i < len(s.Points); i += stride {
		out = append(out, s.Points[i])
	}
	return out
}
