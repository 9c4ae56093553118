// Package application wires the curve domain to storage and the AI
// provider boundary.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
)

// analysisSchemaJSON is the contract the analyst's response must satisfy.
const analysisSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["analysis", "outlook"],
  "properties": {
    "analysis": { "type": "string", "minLength": 1 },
    "outlook": { "type": "string", "minLength": 1 }
  }
}`

var analysisSchemaLoader = gojsonschema.NewStringLoader(analysisSchemaJSON)

const analystSystemPrompt = "You are a project controls analyst. You compare cumulative planned " +
	"progress against earned progress and return ONLY a JSON object with two string fields: " +
	"\"analysis\" (variance commentary on the data to date) and \"outlook\" (a forward-looking " +
	"assessment). No surrounding text, no markdown, no code fences."

// AnalystService requests narrative variance commentary for a down-sampled
// S-curve from a generative text provider. It makes exactly one call per
// request; the only resilience applied is the timeout bound on the
// provider itself. Callers decide whether to retry.
type AnalystService struct {
	provider ai.Provider
}

// NewAnalystService creates an analyst backed by the given provider.
func NewAnalystService(provider ai.Provider) *AnalystService {
	return &AnalystService{provider: provider}
}

// RequestAnalysis sends the sample to the provider and decodes the
// {analysis, outlook} response. Transport failures surface as
// FailureUnavailable; undecodable or shape-mismatched responses as
// FailureMalformedResponse.
func (s *AnalystService) RequestAnalysis(ctx context.Context, sample []curve.Point) (*report.Analysis, error) {
	payload, err := json.Marshal(sample)
	if err != nil {
		return nil, fmt.Errorf("marshal curve sample: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze this S-curve progress data. Each point carries the day index, the calendar date, cumulative planned progress and cumulative actual progress, all as percentages of the whole schedule.

%s

Return a JSON object with "analysis" and "outlook" string fields.`, payload)

	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		System:      analystSystemPrompt,
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, report.NewUnavailableError(err)
	}

	return decodeAnalysis(resp.Text)
}

// decodeAnalysis extracts the JSON payload from the raw model output and
// validates it against the analysis schema before unmarshalling.
func decodeAnalysis(text string) (*report.Analysis, error) {
	cleanJSON := extractJSONPayload(text)
	if cleanJSON == "" {
		return nil, report.NewMalformedResponseError(fmt.Errorf("empty response"))
	}

	result, err := gojsonschema.Validate(analysisSchemaLoader, gojsonschema.NewStringLoader(cleanJSON))
	if err != nil {
		return nil, report.NewMalformedResponseError(fmt.Errorf("response is not valid JSON: %w", err))
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, d := range result.Errors() {
			descs = append(descs, d.String())
		}
		return nil, report.NewMalformedResponseError(fmt.Errorf("response shape invalid: %s", strings.Join(descs, "; ")))
	}

	var analysis report.Analysis
	if err := json.Unmarshal([]byte(cleanJSON), &analysis); err != nil {
		return nil, report.NewMalformedResponseError(fmt.Errorf("unmarshal response: %w", err))
	}

	return &analysis, nil
}

// extractJSONPayload strips code fences and surrounding prose, keeping the
// first JSON object/array span in the text.
func extractJSONPayload(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	start := strings.IndexAny(clean, "{[")
	if start == -1 {
		return clean
	}
	end := strings.LastIndexAny(clean, "}]")
	if end == -1 || end <= start {
		return clean
	}
	return strings.TrimSpace(clean[start : end+1])
}
