package report

import (
	"errors"
	"fmt"
)

// ErrAnalysisFailed is the sentinel for every analyst failure.
var ErrAnalysisFailed = errors.New("variance analysis failed")

// FailureKind distinguishes "service down" from "service returned garbage"
// so callers can pick the right retry affordance.
type FailureKind string

const (
	// FailureUnavailable covers transport errors, non-2xx statuses and
	// timeouts on the analyst call.
	FailureUnavailable FailureKind = "unavailable"
	// FailureMalformedResponse covers responses that do not parse or do
	// not match the expected {analysis, outlook} shape.
	FailureMalformedResponse FailureKind = "malformed_response"
)

// AnalysisFailedError wraps the underlying cause of a failed analysis
// request. The assembler never retries; the caller decides.
type AnalysisFailedError struct {
	Kind  FailureKind
	Cause error
}

func (e *AnalysisFailedError) Error() string {
	return fmt.Sprintf("variance analysis failed (%s): %v", e.Kind, e.Cause)
}

func (e *AnalysisFailedError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to match against ErrAnalysisFailed.
func (e *AnalysisFailedError) Is(target error) bool {
	return target == ErrAnalysisFailed
}

// NewUnavailableError marks a failed call to the analyst service.
func NewUnavailableError(cause error) *AnalysisFailedError {
	return &AnalysisFailedError{Kind: FailureUnavailable, Cause: cause}
}

// NewMalformedResponseError marks an analyst response that failed decoding
// or shape validation.
func NewMalformedResponseError(cause error) *AnalysisFailedError {
	return &AnalysisFailedError{Kind: FailureMalformedResponse, Cause: cause}
}
