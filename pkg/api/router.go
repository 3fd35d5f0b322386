// Package api wires the HTTP routes of the icon generation service.
package api

import (
	"context"
	"net/http"

	"github.com/dskvich/kintone-icon-generator/pkg/api/handlers"
	"github.com/dskvich/kintone-icon-generator/pkg/api/middleware"
	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/gorilla/mux"
)

type iconGenerator interface {
	Generate(ctx context.Context, description string) ([]domain.GeneratedImage, error)
}

var generateIconPaths = []string{
	"/generate-icon",
	"/functions/v1/generate-icon",
}

// NewHandler returns the service handler. Middleware wraps the router as a
// whole so unmatched requests get CORS headers too.
func NewHandler(generator iconGenerator) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = handlers.NotFound()
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed()

	for _, path := range generateIconPaths {
		r.HandleFunc(path, handlers.GenerateIcon(generator)).Methods(http.MethodPost)
		r.HandleFunc(path, handlers.Preflight()).Methods(http.MethodOptions)
	}
	r.HandleFunc("/styles", handlers.ListStyles(domain.Styles, domain.ExampleDescriptions)).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handlers.Health()).Methods(http.MethodGet)

	var h http.Handler = r
	h = middleware.CORS(h)
	h = middleware.AccessLog(h)
	h = middleware.RequestID(h)
	return h
}
