package visualizer

// Provider identifies a generation backend.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderGoogle Provider = "google"
	ProviderOpenAI Provider = "openai"
	ProviderVertex Provider = "vertex"
)

// Model identifies an image model and the provider that serves it.
type Model interface {
	String() string
	Provider() Provider
}
