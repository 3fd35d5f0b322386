package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError_Classification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    error
		wantNotIs []error
		wantMsg   string
		status    int
	}{
		{
			name:      "rate limited",
			err:       &UpstreamError{StatusCode: http.StatusTooManyRequests, Body: "slow down"},
			wantIs:    ErrRateLimited,
			wantNotIs: []error{ErrUpstream, ErrInsufficientCredits},
			wantMsg:   ErrRateLimited.Error(),
			status:    http.StatusTooManyRequests,
		},
		{
			name:      "payment required",
			err:       &UpstreamError{StatusCode: http.StatusPaymentRequired, Body: "pay"},
			wantIs:    ErrInsufficientCredits,
			wantNotIs: []error{ErrUpstream, ErrRateLimited},
			wantMsg:   ErrInsufficientCredits.Error(),
			status:    http.StatusPaymentRequired,
		},
		{
			name:      "generic status",
			err:       &UpstreamError{StatusCode: http.StatusBadGateway, Body: "bad gateway"},
			wantIs:    ErrUpstream,
			wantNotIs: []error{ErrRateLimited, ErrInsufficientCredits},
			wantMsg:   "AI Gateway error: 502 bad gateway",
			status:    http.StatusInternalServerError,
		},
		{
			name:    "transport failure",
			err:     &UpstreamError{Err: context.DeadlineExceeded},
			wantIs:  ErrUpstream,
			wantMsg: "AI Gateway error: context deadline exceeded",
			status:  http.StatusInternalServerError,
		},
		{
			name:    "no image",
			err:     &NoImageError{Style: StyleFlat},
			wantIs:  ErrUpstream,
			wantMsg: "No image was generated for style: フラット",
			status:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.wantIs)
			for _, target := range tt.wantNotIs {
				assert.NotErrorIs(t, tt.err, target)
			}
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestUpstreamError_UnwrapsCause(t *testing.T) {
	err := &UpstreamError{Err: context.DeadlineExceeded}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidDescription))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(fmt.Errorf("decoding body: %w", ErrInvalidRequest)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("LOVABLE_API_KEY is %w", ErrNotConfigured)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestSeverity(t *testing.T) {
	credits := &UpstreamError{StatusCode: http.StatusPaymentRequired}
	limited := &UpstreamError{StatusCode: http.StatusTooManyRequests}
	generic := &NoImageError{Style: Style3D}

	assert.Greater(t, Severity(credits), Severity(limited))
	assert.Greater(t, Severity(limited), Severity(generic))
	assert.Greater(t, Severity(generic), Severity(nil))
}

func TestGenerationRequest_Validate(t *testing.T) {
	req := GenerationRequest{Description: "  顧客管理のアイコン \n"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "顧客管理のアイコン", req.Description)

	for _, d := range []string{"", "   ", "\t\n"} {
		req := GenerationRequest{Description: d}
		assert.ErrorIs(t, req.Validate(), ErrInvalidDescription)
	}
}
