package ai

import (
	"context"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
)

// MockProvider returns a canned analysis response without any network
// call. Used by tests and as the offline provider for demos.
type MockProvider struct {
	Model    string
	Response string
	Err      error
}

const mockAnalysisJSON = `{"analysis": "Actual progress tracks planned progress with a minor lag in the middle of the schedule.", "outlook": "At the current earning rate the project completes close to plan."}`

func (p *MockProvider) ID() string {
	return "mock:" + p.Model
}

func (p *MockProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	text := p.Response
	if text == "" {
		text = mockAnalysisJSON
	}
	return &ai.CompletionResponse{
		Text:  text,
		Model: p.Model,
	}, nil
}
