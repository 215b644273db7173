package google

import (
	"context"

	ai "github.com/spetersoncode/visualizer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model that accepts and returns inline images.
const DefaultModel = "gemini-2.5-flash-image"

// contentGenerator is the subset of the genai Models service used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Google GenAI SDK to implement ai.Generator.
type Client struct {
	models contentGenerator
	model  string
}

// New creates a new Google GenAI client with the given API key.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return newClient(client.Models, opts...), nil
}

// NewWithModels wraps an existing genai Models service, such as one bound to
// the Vertex AI backend.
func NewWithModels(models *genai.Models, opts ...ClientOption) *Client {
	return newClient(models, opts...)
}

func newClient(models contentGenerator, opts ...ClientOption) *Client {
	c := &Client{
		models: models,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Generate sends the prompt, preceded by the reference image when present,
// and unpacks the reply. It never retries.
func (c *Client) Generate(ctx context.Context, req ai.GenerationRequest, opts ...ai.Option) (*ai.GenerationResult, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != nil {
		model = options.Model.String()
	}

	contents, err := buildContents(req)
	if err != nil {
		return nil, err
	}

	// Image models reject responseMimeType and responseSchema, so no config.
	resp, err := c.models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, wrapError(err)
	}

	return parseResponse(resp)
}

var _ ai.Generator = (*Client)(nil)
