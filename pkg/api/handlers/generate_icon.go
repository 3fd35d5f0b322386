package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
)

type generateIconGenerator interface {
	Generate(ctx context.Context, description string) ([]domain.GeneratedImage, error)
}

type generateIconResponse struct {
	Images []domain.GeneratedImage `json:"images"`
}

func GenerateIcon(generator generateIconGenerator) http.HandlerFunc {
	const maxBodySize = 64 << 10

	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.GenerationRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
			return
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			writeError(w, r, fmt.Errorf("%w: unexpected data after JSON object", domain.ErrInvalidRequest))
			return
		}

		images, err := generator.Generate(r.Context(), req.Description)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, generateIconResponse{Images: images})
	}
}
