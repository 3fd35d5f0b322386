package llm

import (
	"context"
	"fmt"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
)

type ImageGenerator interface {
	Ready(model string) error
	GenerateImage(ctx context.Context, prompt string, model string) (string, error)
}

type MultiProviderImageClient struct {
	providers map[string]ImageGenerator
}

func NewMultiProviderImageClient(providers map[string]ImageGenerator) *MultiProviderImageClient {
	return &MultiProviderImageClient{
		providers: providers,
	}
}

func (c *MultiProviderImageClient) Ready(model string) error {
	provider, err := c.provider(model)
	if err != nil {
		return err
	}

	return provider.Ready(model)
}

func (c *MultiProviderImageClient) GenerateImage(ctx context.Context, prompt string, model string) (string, error) {
	provider, err := c.provider(model)
	if err != nil {
		return "", err
	}

	return provider.GenerateImage(ctx, prompt, model)
}

func (c *MultiProviderImageClient) provider(model string) (ImageGenerator, error) {
	provider, ok := c.providers[model]
	if !ok {
		return nil, fmt.Errorf("no provider found for model %s: %w", model, domain.ErrNotConfigured)
	}
	return provider, nil
}
