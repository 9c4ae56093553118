package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		wantID   string
	}{
		{"gemini", "gemini-1.5-pro", "gemini:gemini-1.5-pro"},
		{"", "", "gemini:gemini-1.5-flash"},
		{"openai", "", "openai:gpt-4o-mini"},
		{"ollama", "llama3", "ollama:llama3"},
		{"mock", "test", "mock:test"},
	}

	for _, tt := range tests {
		p, err := NewProvider(tt.provider, tt.model)
		if err != nil {
			t.Errorf("NewProvider(%q, %q): %v", tt.provider, tt.model, err)
			continue
		}
		if p.ID() != tt.wantID {
			t.Errorf("NewProvider(%q, %q).ID() = %s, want %s", tt.provider, tt.model, p.ID(), tt.wantID)
		}
	}
}

func TestNewProvider_Unsupported(t *testing.T) {
	_, err := NewProvider("watson", "")
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	if !strings.Contains(err.Error(), "watson") {
		t.Errorf("error should name the provider: %v", err)
	}
}

func TestGetDefaultProvider_EnvOverride(t *testing.T) {
	t.Setenv("SCURVE_AI_PROVIDER", "mock")
	t.Setenv("SCURVE_AI_MODEL", "env-model")

	p, err := GetDefaultProvider("gemini", "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("GetDefaultProvider: %v", err)
	}
	if p.ID() != "mock:env-model" {
		t.Errorf("env override not honored, got %s", p.ID())
	}
}

func TestResilientProvider_Passthrough(t *testing.T) {
	inner := &MockProvider{Model: "m", Response: "hello"}
	p := NewResilientProvider(inner)

	if p.ID() != "mock:m" {
		t.Errorf("ID must pass through, got %s", p.ID())
	}

	resp, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("response not passed through: %s", resp.Text)
	}
}

func TestResilientProvider_NoRetry(t *testing.T) {
	calls := 0
	inner := &countingProvider{fn: func() (*ai.CompletionResponse, error) {
		calls++
		return nil, errors.New("boom")
	}}

	p := NewResilientProviderWithTimeout(inner, time.Second)
	if _, err := p.Complete(context.Background(), ai.CompletionRequest{}); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("provider must be called exactly once, got %d", calls)
	}
}

type countingProvider struct {
	fn func() (*ai.CompletionResponse, error)
}

func (p *countingProvider) ID() string { return "counting:test" }

func (p *countingProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	return p.fn()
}
