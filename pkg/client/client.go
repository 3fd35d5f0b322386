// Package client calls the icon generation endpoint and saves the returned
// images locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/samber/lo"
)

// ErrNoImages is returned when a successful response carries no images.
var ErrNoImages = errors.New("画像が生成されませんでした")

// ErrImageCount is returned when a successful response does not carry one
// image per style.
var ErrImageCount = errors.New("unexpected number of images")

// APIError is an error response of the endpoint. Message is shown to users
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	endpoint string
	apiKey   string
	hc       *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithAPIKey sets the publishable key sent as both apikey and bearer token.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		hc:       &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateIconResponse struct {
	Images []domain.GeneratedImage `json:"images"`
	Error  string                  `json:"error"`
}

// GenerateIcons rejects an empty description without calling the endpoint.
func (c *Client) GenerateIcons(ctx context.Context, description string) ([]domain.GeneratedImage, error) {
	req := domain.GenerationRequest{Description: description}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("apikey", c.apiKey)
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling generate-icon: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var out generateIconResponse
	decodeErr := json.Unmarshal(respBody, &out)

	if resp.StatusCode != http.StatusOK {
		msg := lo.CoalesceOrEmpty(out.Error, strings.TrimSpace(string(respBody)), http.StatusText(resp.StatusCode))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decoding response: %w", decodeErr)
	}
	if len(out.Images) == 0 {
		return nil, ErrNoImages
	}
	if len(out.Images) != len(domain.Styles) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrImageCount, len(out.Images), len(domain.Styles))
	}

	return out.Images, nil
}
