package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	readyErr error
	url      string
	prompts  []string
}

func (m *mockProvider) Ready(string) error { return m.readyErr }

func (m *mockProvider) GenerateImage(_ context.Context, prompt string, _ string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.url, nil
}

func TestMultiProviderImageClient(t *testing.T) {
	ctx := context.Background()
	gw := &mockProvider{url: "data:image/png;base64,AAAA"}
	c := NewMultiProviderImageClient(map[string]ImageGenerator{
		domain.GeminiFlashImageModel: gw,
	})

	t.Run("routes to the provider registered for the model", func(t *testing.T) {
		require.NoError(t, c.Ready(domain.GeminiFlashImageModel))

		url, err := c.GenerateImage(ctx, "prompt", domain.GeminiFlashImageModel)

		require.NoError(t, err)
		assert.Equal(t, gw.url, url)
		assert.Equal(t, []string{"prompt"}, gw.prompts)
	})

	t.Run("unknown model is a configuration error", func(t *testing.T) {
		assert.ErrorIs(t, c.Ready("dall-e-3"), domain.ErrNotConfigured)

		_, err := c.GenerateImage(ctx, "prompt", "dall-e-3")
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})

	t.Run("provider readiness is propagated", func(t *testing.T) {
		notReady := errors.New("no key")
		c := NewMultiProviderImageClient(map[string]ImageGenerator{
			domain.GeminiFlashImageModel: &mockProvider{readyErr: notReady},
		})
		assert.ErrorIs(t, c.Ready(domain.GeminiFlashImageModel), notReady)
	})
}
