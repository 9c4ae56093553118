package wiring

import (
	"time"

	domainai "github.com/elmaestro544/sgroadmap-sub001/internal/domain/ai"
	infraai "github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/ai"
	"github.com/elmaestro544/sgroadmap-sub001/internal/infrastructure/config"
)

// LoadAIProvider builds the configured provider for the workspace,
// wrapped with the timeout bound.
func LoadAIProvider(root string) (domainai.Provider, error) {
	cfg, err := config.LoadAIConfig(root)
	if err != nil {
		return nil, err
	}

	providerName := ""
	modelName := ""
	timeout := infraai.DefaultTimeout

	if cfg != nil {
		providerName = cfg.Provider
		modelName = cfg.Model
		if cfg.TimeoutSec > 0 {
			timeout = time.Duration(cfg.TimeoutSec) * time.Second
		}
	}

	baseProvider, err := infraai.GetDefaultProvider(providerName, modelName)
	if err != nil {
		return nil, err
	}

	return infraai.NewResilientProviderWithTimeout(baseProvider, timeout), nil
}
