package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidDescription  = errors.New("アイコンの説明を入力してください")
	ErrInvalidRequest      = errors.New("invalid request body")
	ErrNotConfigured       = errors.New("not configured")
	ErrRateLimited         = errors.New("レート制限に達しました。しばらく待ってから再度お試しください。")
	ErrInsufficientCredits = errors.New("クレジットが不足しています。Lovable AIワークスペースに資金を追加してください。")
	ErrUpstream            = errors.New("AI Gateway error")

	// ErrNoImage is returned by providers whose successful response carries
	// no image URL.
	ErrNoImage = errors.New("response contains no image")
)

// UpstreamError is a failed call to the AI gateway. StatusCode is zero when
// no HTTP response was received (transport failure or timeout).
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited.Error()
	case e.StatusCode == http.StatusPaymentRequired:
		return ErrInsufficientCredits.Error()
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %d %s", ErrUpstream, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrUpstream, e.Err)
	}
	return ErrUpstream.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrInsufficientCredits:
		return e.StatusCode == http.StatusPaymentRequired
	case ErrUpstream:
		return e.StatusCode != http.StatusTooManyRequests && e.StatusCode != http.StatusPaymentRequired
	}
	return false
}

// NoImageError reports a successful upstream response that carried no image.
type NoImageError struct {
	Style string
	Err   error
}

func (e *NoImageError) Error() string {
	return "No image was generated for style: " + e.Style
}

func (e *NoImageError) Unwrap() error { return e.Err }

func (e *NoImageError) Is(target error) bool { return target == ErrUpstream }

// HTTPStatus maps an error to the status code returned to the caller.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidDescription), errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// Severity ranks upstream failures when several styles fail at once.
// Higher wins.
func Severity(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInsufficientCredits):
		return 3
	case errors.Is(err, ErrRateLimited):
		return 2
	}
	return 1
}
