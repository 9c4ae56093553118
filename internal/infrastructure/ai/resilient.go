package ai

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
)

// DefaultTimeout bounds the single analyst hop. The analyst contract is
// one shot per report, so the wrapper applies a timeout but no retry.
const DefaultTimeout = 120 * time.Second

// ResilientProvider wraps a provider with a timeout bound. It is the only
// resilience on the analysis path; failed calls surface to the caller.
type ResilientProvider struct {
	inner   ai.Provider
	timeout time.Duration
}

// NewResilientProvider wraps the provider with the default timeout.
func NewResilientProvider(inner ai.Provider) *ResilientProvider {
	return NewResilientProviderWithTimeout(inner, DefaultTimeout)
}

// NewResilientProviderWithTimeout wraps the provider with a custom timeout.
func NewResilientProviderWithTimeout(inner ai.Provider, d time.Duration) *ResilientProvider {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &ResilientProvider{inner: inner, timeout: d}
}

func (p *ResilientProvider) ID() string {
	return p.inner.ID()
}

func (p *ResilientProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	t := timeout.New[*ai.CompletionResponse](timeout.Config{
		DefaultTimeout: p.timeout,
	})

	return t.Execute(ctx, p.timeout, func(ctx context.Context) (*ai.CompletionResponse, error) {
		return p.inner.Complete(ctx, req)
	})
}
