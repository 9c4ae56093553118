package ai

import (
	"fmt"
	"os"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
)

// NewProvider builds a provider by name. Gemini is the default backend.
func NewProvider(providerName string, modelName string) (ai.Provider, error) {
	switch providerName {
	case "gemini", "":
		apiKey := os.Getenv("GEMINI_API_KEY")
		return NewGeminiProvider(modelName, apiKey), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		return NewOpenAIProvider(modelName, apiKey), nil
	case "ollama":
		return NewOllamaProvider(modelName), nil
	case "mock":
		return &MockProvider{Model: modelName}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerName)
	}
}

// GetDefaultProvider returns a provider honoring environment overrides.
func GetDefaultProvider(providerName, modelName string) (ai.Provider, error) {
	if envProvider := os.Getenv("SCURVE_AI_PROVIDER"); envProvider != "" {
		providerName = envProvider
	}
	if envModel := os.Getenv("SCURVE_AI_MODEL"); envModel != "" {
		modelName = envModel
	}

	return NewProvider(providerName, modelName)
}
