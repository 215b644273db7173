package openai

import (
	"bytes"
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/visualizer"
)

// DefaultModel is the OpenAI model that supports both generation and edits.
const DefaultModel = "gpt-image-1"

// imageService is the subset of the OpenAI images API used here.
type imageService interface {
	Generate(ctx context.Context, body openai.ImageGenerateParams, opts ...option.RequestOption) (*openai.ImagesResponse, error)
	Edit(ctx context.Context, body openai.ImageEditParams, opts ...option.RequestOption) (*openai.ImagesResponse, error)
}

// Client wraps the OpenAI SDK to implement ai.Generator.
type Client struct {
	images imageService
	model  string
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return newClient(&client.Images, opts...)
}

func newClient(images imageService, opts ...ClientOption) *Client {
	c := &Client{
		images: images,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Generate creates an image from the prompt, or edits the reference image
// when one is given. Revised prompts become the result text.
func (c *Client) Generate(ctx context.Context, req ai.GenerationRequest, opts ...ai.Option) (*ai.GenerationResult, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != nil {
		model = options.Model.String()
	}

	var (
		resp *openai.ImagesResponse
		err  error
	)
	if req.HasReference() {
		data, decodeErr := ai.DecodeDataURL(req.ReferenceImage)
		if decodeErr != nil {
			return nil, decodeErr
		}
		params := openai.ImageEditParams{
			Image: openai.ImageEditParamsImageUnion{
				OfFile: openai.File(bytes.NewReader(data), "image.png", ai.PNGMimeType),
			},
			Prompt: req.Prompt,
			Model:  openai.ImageModel(model),
		}
		if options.Size != "" {
			params.Size = openai.ImageEditParamsSize(options.Size)
		}
		if options.Quality != "" {
			params.Quality = openai.ImageEditParamsQuality(options.Quality)
		}
		resp, err = c.images.Edit(ctx, params)
	} else {
		params := openai.ImageGenerateParams{
			Prompt: req.Prompt,
			Model:  openai.ImageModel(model),
		}
		if options.Size != "" {
			params.Size = openai.ImageGenerateParamsSize(options.Size)
		}
		if options.Quality != "" {
			params.Quality = openai.ImageGenerateParamsQuality(options.Quality)
		}
		resp, err = c.images.Generate(ctx, params)
	}
	if err != nil {
		return nil, wrapError(err)
	}

	return parseResponse(resp)
}

// parseResponse keeps the last base64 image. URL-only images are skipped
// since they cannot be carried as encoded-image references without a fetch.
func parseResponse(resp *openai.ImagesResponse) (*ai.GenerationResult, error) {
	if resp == nil {
		return nil, ai.ErrEmptyResponse
	}

	result := &ai.GenerationResult{}
	var text strings.Builder
	for _, img := range resp.Data {
		if img.RevisedPrompt != "" {
			text.WriteString(img.RevisedPrompt)
		}
		if img.B64JSON != "" {
			result.Image = ai.NewDataURL(img.B64JSON)
		}
	}
	result.Text = text.String()

	return result, nil
}

var _ ai.Generator = (*Client)(nil)
