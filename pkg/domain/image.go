package domain

import "strings"

type GenerationRequest struct {
	Description string `json:"description"`
}

// Validate trims the description in place and rejects an empty one.
func (r *GenerationRequest) Validate() error {
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return ErrInvalidDescription
	}
	return nil
}

type GeneratedImage struct {
	Style    string `json:"style"`
	ImageURL string `json:"imageUrl"`
}
