package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
)

func geminiCannedResponse(text string) string {
	return `{
		"candidates": [{"content": {"parts": [{"text": ` + mustQuote(text) + `}]}}],
		"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 34}
	}`
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGeminiProvider_Complete(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(geminiCannedResponse(`{"analysis": "a", "outlook": "b"}`)))
	}))
	defer server.Close()

	p := NewGeminiProviderWithClient("gemini-1.5-flash", "test-key", server.URL, server.Client())

	resp, err := p.Complete(context.Background(), ai.CompletionRequest{
		Prompt: "analyze this",
		System: "you are an analyst",
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if !strings.Contains(resp.Text, `"analysis"`) {
		t.Errorf("unexpected text: %s", resp.Text)
	}
	if resp.Model != "gemini-1.5-flash" {
		t.Errorf("unexpected model: %s", resp.Model)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 34 {
		t.Errorf("usage not carried through: %+v", resp.Usage)
	}

	if len(captured.Contents) != 1 || captured.Contents[0].Parts[0].Text != "analyze this" {
		t.Errorf("prompt not forwarded: %+v", captured)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "you are an analyst" {
		t.Errorf("system instruction not forwarded: %+v", captured.SystemInstruction)
	}
}

func TestGeminiProvider_NoSystemInstruction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.SystemInstruction != nil {
			t.Error("system_instruction must be omitted when empty")
		}
		w.Write([]byte(geminiCannedResponse("ok")))
	}))
	defer server.Close()

	p := NewGeminiProviderWithClient("", "test-key", server.URL, server.Client())
	if _, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
}

func TestGeminiProvider_MissingAPIKey(t *testing.T) {
	p := NewGeminiProvider("", "")
	_, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error should point at the env var: %v", err)
	}
}

func TestGeminiProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewGeminiProviderWithClient("", "test-key", server.URL, server.Client())
	if _, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestGeminiProvider_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	p := NewGeminiProviderWithClient("", "test-key", server.URL, server.Client())
	if _, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error on empty candidates")
	}
}

func TestGeminiProvider_Defaults(t *testing.T) {
	p := NewGeminiProvider("", "key")
	if p.Model != "gemini-1.5-flash" {
		t.Errorf("default model = %s", p.Model)
	}
	if p.ID() != "gemini:gemini-1.5-flash" {
		t.Errorf("ID = %s", p.ID())
	}
}
