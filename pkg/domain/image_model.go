package domain

const (
	GeminiFlashImageModel = "google/gemini-2.5-flash-image-preview"
	GeminiFlashImage25    = "google/gemini-2.5-flash-image"
)

const DefaultImageModel = GeminiFlashImageModel

var SupportedImageModels = []string{
	GeminiFlashImageModel,
	GeminiFlashImage25,
}
