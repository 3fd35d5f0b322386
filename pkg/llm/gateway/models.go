package gateway

type chatCompletionRequest struct {
	Model      string                  `json:"model"`
	Messages   []chatCompletionMessage `json:"messages"`
	Modalities []modality              `json:"modalities"`
}

type chatCompletionResponse struct {
	Choices []chatCompletionChoice `json:"choices"`
}

type chatCompletionChoice struct {
	Message chatCompletionResponseMessage `json:"message"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponseMessage struct {
	Role    string             `json:"role"`
	Content string             `json:"content"`
	Images  []chatMessageImage `json:"images"`
}

type chatMessageImage struct {
	Type     string               `json:"type"`
	ImageURL *chatMessageImageURL `json:"image_url"`
}

type chatMessageImageURL struct {
	URL string `json:"url"`
}

type modality string

const (
	modalityImage modality = "image"
	modalityText  modality = "text"
)

const chatMessageRoleUser = "user"

// firstImageURL returns choices[0].message.images[0].image_url.url or "".
func (r *chatCompletionResponse) firstImageURL() string {
	if len(r.Choices) == 0 {
		return ""
	}
	images := r.Choices[0].Message.Images
	if len(images) == 0 || images[0].ImageURL == nil {
		return ""
	}
	return images[0].ImageURL.URL
}
