package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
)

const (
	DefaultURL = "https://ai.gateway.lovable.dev/v1/chat/completions"

	maxErrorBodySize = 64 << 10
)

type client struct {
	token string
	url   string
	hc    *http.Client
}

type Option func(*client)

func WithURL(url string) Option {
	return func(c *client) {
		if url != "" {
			c.url = url
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// NewClient accepts an empty token; every call then fails with a
// configuration error until the deployment is fixed.
func NewClient(token string, opts ...Option) *client {
	c := &client{
		token: token,
		url:   DefaultURL,
		hc:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Ready(model string) error {
	if c.token == "" {
		return fmt.Errorf("LOVABLE_API_KEY is %w", domain.ErrNotConfigured)
	}
	return nil
}

// GenerateImage sends one prompt and returns the URL of the first generated
// image, usually a base64 data URL.
func (c *client) GenerateImage(ctx context.Context, prompt string, model string) (string, error) {
	if err := c.Ready(model); err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(chatCompletionRequest{
		Model: model,
		Messages: []chatCompletionMessage{
			{Role: chatMessageRoleUser, Content: prompt},
		},
		Modalities: []modality{modalityImage, modalityText},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.doRequest(req)
	if err != nil {
		return "", err
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse chat completion response: %w: %w", domain.ErrNoImage, err)
	}

	imageURL := resp.firstImageURL()
	if imageURL == "" {
		return "", domain.ErrNoImage
	}

	return imageURL, nil
}

// doRequest returns *domain.UpstreamError for transport failures and
// non-2xx responses.
func (c *client) doRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return respBody, nil
}
