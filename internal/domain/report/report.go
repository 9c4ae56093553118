// Package report defines the variance report assembled from a computed
// S-curve series and the analyst's narrative commentary.
package report

import (
	"time"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
)

// Analysis is the structured narrative returned by the variance analyst.
// Beyond shape validation the text is opaque to this core.
type Analysis struct {
	Analysis string `json:"analysis"` // commentary on planned vs actual to date
	Outlook  string `json:"outlook"`  // forward-looking assessment
}

// Report is the unit handed to the presentation layer. Once returned it is
// owned by the caller; the core keeps no state between calls.
type Report struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	SCurveData  curve.Series `json:"sCurveData"`
	Analysis    Analysis     `json:"analysis"`
}
