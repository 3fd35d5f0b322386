package handlers

import (
	"net/http"

	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/samber/lo"
)

type listStylesResponse struct {
	Styles   []string `json:"styles"`
	Examples []string `json:"examples"`
}

func ListStyles(styles []domain.Style, examples []string) http.HandlerFunc {
	resp := listStylesResponse{
		Styles:   lo.Map(styles, func(s domain.Style, _ int) string { return s.Name }),
		Examples: lo.Ternary(examples == nil, []string{}, examples),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
