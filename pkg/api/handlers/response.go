package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/dskvich/kintone-icon-generator/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Writing response failed", logger.Err(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := domain.HTTPStatus(err)
	slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "status", status, logger.Err(err))
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

// Preflight answers OPTIONS requests that are not CORS preflights.
func Preflight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}
