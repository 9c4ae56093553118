// Package ai defines the boundary to generative text providers. The curve
// core treats the underlying model as a black box text generator.
package ai

import (
	"context"
)

// CompletionRequest carries a single prompt to the provider.
type CompletionRequest struct {
	Prompt      string
	System      string
	Temperature float32
	MaxTokens   int
}

// CompletionResponse is the provider's answer.
type CompletionResponse struct {
	Text  string
	Usage TokenUsage
	Model string
}

// TokenUsage tracks consumption for cost accounting.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Provider is the interface all AI backends implement.
type Provider interface {
	ID() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
