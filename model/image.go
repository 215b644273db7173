package model

import (
	ai "github.com/spetersoncode/visualizer"
)

// ImageModel represents an image generation model from any provider.
type ImageModel struct {
	id       string
	provider ai.Provider
	label    string
	pricing  ImagePricing
}

// String returns the API identifier for this model.
func (m ImageModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ImageModel) Provider() ai.Provider { return m.provider }

// Label returns a human-readable name for display.
func (m ImageModel) Label() string { return m.label }

// Pricing returns the pricing for this model.
func (m ImageModel) Pricing() ImagePricing { return m.pricing }

// Google Gemini image models
// Model pricing last verified: September 2, 2025
var (
	GeminiFlashImage        = ImageModel{id: "gemini-2.5-flash-image", provider: ai.ProviderGoogle, label: "Gemini 2.5 Flash Image", pricing: ImagePricing{PerImage: 0.039}}
	GeminiFlashImagePreview = ImageModel{id: "gemini-2.5-flash-image-preview", provider: ai.ProviderGoogle, label: "Gemini 2.5 Flash Image (preview)", pricing: ImagePricing{PerImage: 0.039}}

	// DefaultGeminiImageModel is the recommended default Google image model.
	DefaultGeminiImageModel = GeminiFlashImage
)

// Vertex AI image models
var (
	VertexFlashImage = ImageModel{id: "gemini-2.5-flash-image", provider: ai.ProviderVertex, label: "Gemini 2.5 Flash Image (Vertex AI)", pricing: ImagePricing{PerImage: 0.039}}

	// DefaultVertexImageModel is the recommended default Vertex AI image model.
	DefaultVertexImageModel = VertexFlashImage
)

// OpenAI image models
// Model pricing last verified: December 14, 2025
var (
	GPTImage1     = ImageModel{id: "gpt-image-1", provider: ai.ProviderOpenAI, label: "GPT Image 1", pricing: ImagePricing{LowQuality: 0.011, MediumQuality: 0.042, HighQuality: 0.167}}
	GPTImage1Mini = ImageModel{id: "gpt-image-1-mini", provider: ai.ProviderOpenAI, label: "GPT Image 1 Mini", pricing: ImagePricing{LowQuality: 0.005, MediumQuality: 0.013, HighQuality: 0.052}}

	// DefaultGPTImageModel is the recommended default OpenAI image model.
	DefaultGPTImageModel = GPTImage1
)

// Default is the model used when nothing else is configured.
var Default = DefaultGeminiImageModel

// All returns every known image model, Gemini API first.
func All() []ImageModel {
	return []ImageModel{
		GeminiFlashImage,
		GeminiFlashImagePreview,
		GPTImage1,
		GPTImage1Mini,
		VertexFlashImage,
	}
}

// Lookup finds a known model by its API identifier.
func Lookup(id string) (ImageModel, bool) {
	for _, m := range All() {
		if m.id == id {
			return m, true
		}
	}
	return ImageModel{}, false
}

// LookupProvider finds a known model by identifier and provider. Unknown
// pairs fall back to Custom.
func LookupProvider(id string, provider ai.Provider) ImageModel {
	for _, m := range All() {
		if m.id == id && m.provider == provider {
			return m
		}
	}
	return Custom(id, provider)
}

// Custom creates a model that is not in the catalog, such as a newly released
// identifier. It carries no pricing.
func Custom(id string, provider ai.Provider) ImageModel {
	return ImageModel{id: id, provider: provider, label: id}
}

var _ ai.Model = ImageModel{}
