package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = domain.GeminiFlashImageModel

func newTestServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GenerateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the chat completion request and returns the first image", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req chatCompletionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, testModel, req.Model)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)
			assert.Equal(t, "draw a cat", req.Messages[0].Content)
			assert.Equal(t, []modality{modalityImage, modalityText}, req.Modalities)

			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"here","images":[
				{"type":"image_url","image_url":{"url":"data:image/png;base64,AAAA"}},
				{"type":"image_url","image_url":{"url":"data:image/png;base64,BBBB"}}]}}]}`))
		})

		c := NewClient("secret", WithURL(srv.URL))
		url, err := c.GenerateImage(ctx, "draw a cat", testModel)

		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,AAAA", url)
	})

	t.Run("missing token fails without calling upstream", func(t *testing.T) {
		called := false
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })

		c := NewClient("", WithURL(srv.URL))
		_, err := c.GenerateImage(ctx, "p", testModel)

		assert.ErrorIs(t, err, domain.ErrNotConfigured)
		assert.EqualError(t, err, "LOVABLE_API_KEY is not configured")
		assert.False(t, called)
	})

	t.Run("status codes are classified", func(t *testing.T) {
		tests := []struct {
			status int
			want   error
		}{
			{http.StatusTooManyRequests, domain.ErrRateLimited},
			{http.StatusPaymentRequired, domain.ErrInsufficientCredits},
			{http.StatusInternalServerError, domain.ErrUpstream},
			{http.StatusBadRequest, domain.ErrUpstream},
		}
		for _, tt := range tests {
			t.Run(http.StatusText(tt.status), func(t *testing.T) {
				srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					w.Write([]byte("upstream says no"))
				})

				_, err := NewClient("secret", WithURL(srv.URL)).GenerateImage(ctx, "p", testModel)

				require.Error(t, err)
				assert.ErrorIs(t, err, tt.want)
				var upErr *domain.UpstreamError
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, tt.status, upErr.StatusCode)
				assert.Equal(t, "upstream says no", upErr.Body)
			})
		}
	})

	t.Run("response without image", func(t *testing.T) {
		bodies := []string{
			`{"choices":[]}`,
			`{"choices":[{"message":{"content":"sorry"}}]}`,
			`{"choices":[{"message":{"images":[{"type":"image_url"}]}}]}`,
			`not json`,
		}
		for _, body := range bodies {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			_, err := NewClient("secret", WithURL(srv.URL)).GenerateImage(ctx, "p", testModel)
			assert.ErrorIs(t, err, domain.ErrNoImage, body)
		}
	})

	t.Run("timeout surfaces as generic upstream error", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})

		ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := NewClient("secret", WithURL(srv.URL)).GenerateImage(ctx, "p", testModel)

		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
