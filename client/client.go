package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/internal/provider/google"
	"github.com/spetersoncode/visualizer/internal/provider/openai"
	"github.com/spetersoncode/visualizer/internal/provider/vertex"
	"go.uber.org/zap"
)

// APIKeys holds API keys for different providers.
// Only configure keys for providers you intend to use.
type APIKeys struct {
	Google string
	OpenAI string
}

// VertexConfig holds Vertex AI settings. Authentication uses Application
// Default Credentials, so no key is needed.
type VertexConfig struct {
	Project  string
	Location string
}

// Defaults holds default models.
// The model's provider determines which backend is used.
type Defaults struct {
	Image ai.Model
}

// Config holds configuration for creating a unified client.
type Config struct {
	// APIKeys contains authentication keys for each provider.
	APIKeys APIKeys

	// Vertex configures the Vertex AI backend.
	Vertex VertexConfig

	// Defaults contains the default image model.
	Defaults Defaults

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when a model is used but no API key
// is configured for that model's provider.
type ErrMissingAPIKey struct {
	Provider string
	Model    string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no API key configured for %s (required by model %q)", e.Provider, e.Model)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrMissingVertexConfig is returned when a Vertex AI model is used without
// a project and location.
type ErrMissingVertexConfig struct {
	Model string
}

func (e *ErrMissingVertexConfig) Error() string {
	return fmt.Sprintf("vertex project and location are required by model %q", e.Model)
}

// ErrNoModel is returned when no model is specified and no default is configured.
type ErrNoModel struct {
	Operation string
}

func (e *ErrNoModel) Error() string {
	return fmt.Sprintf("no model specified for %s: set client.Config Defaults.Image or use visualizer.WithModel()", e.Operation)
}

// ErrUnsupportedProvider is returned when a model names a provider with no backend.
type ErrUnsupportedProvider struct {
	Provider string
}

func (e *ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.Provider)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithGenerator installs a backend for a provider, bypassing lazy SDK setup.
func WithGenerator(provider ai.Provider, g ai.Generator) ClientOption {
	return func(c *Client) {
		c.overrides[provider] = g
	}
}

// Client is a unified Generator over every supported provider.
// Provider clients are lazily initialized when first needed.
type Client struct {
	apiKeys   APIKeys
	vertex    VertexConfig
	defaults  Defaults
	events    chan<- Event
	logger    *zap.Logger
	overrides map[ai.Provider]ai.Generator

	// Lazy-initialized providers (protected by mutex)
	mu            sync.RWMutex
	openaiClient  *openai.Client
	googleClient  *google.Client
	googleInitErr error
	vertexClient  *google.Client
	vertexInitErr error
}

// New creates a unified client with the given configuration.
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		apiKeys:   cfg.APIKeys,
		vertex:    cfg.Vertex,
		defaults:  cfg.Defaults,
		events:    cfg.Events,
		logger:    zap.NewNop(),
		overrides: make(map[ai.Provider]ai.Generator),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getOpenAIClient returns the OpenAI client, initializing it if needed.
func (c *Client) getOpenAIClient() (*openai.Client, error) {
	c.mu.RLock()
	if c.openaiClient != nil {
		defer c.mu.RUnlock()
		return c.openaiClient, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.openaiClient != nil {
		return c.openaiClient, nil
	}

	if c.apiKeys.OpenAI == "" {
		return nil, &ErrMissingAPIKey{Provider: "openai"}
	}

	c.openaiClient = openai.New(c.apiKeys.OpenAI)
	return c.openaiClient, nil
}

// getGoogleClient returns the Google client, initializing it if needed.
func (c *Client) getGoogleClient(ctx context.Context) (*google.Client, error) {
	c.mu.RLock()
	if c.googleClient != nil {
		defer c.mu.RUnlock()
		return c.googleClient, nil
	}
	if c.googleInitErr != nil {
		defer c.mu.RUnlock()
		return nil, c.googleInitErr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.googleClient != nil {
		return c.googleClient, nil
	}
	if c.googleInitErr != nil {
		return nil, c.googleInitErr
	}

	if c.apiKeys.Google == "" {
		return nil, &ErrMissingAPIKey{Provider: "google"}
	}

	client, err := google.New(ctx, c.apiKeys.Google)
	if err != nil {
		c.googleInitErr = fmt.Errorf("failed to initialize Google client: %w", err)
		return nil, c.googleInitErr
	}

	c.googleClient = client
	return c.googleClient, nil
}

// getVertexClient returns the Vertex AI client, initializing it if needed.
func (c *Client) getVertexClient(ctx context.Context, model ai.Model) (*google.Client, error) {
	c.mu.RLock()
	if c.vertexClient != nil {
		defer c.mu.RUnlock()
		return c.vertexClient, nil
	}
	if c.vertexInitErr != nil {
		defer c.mu.RUnlock()
		return nil, c.vertexInitErr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.vertexClient != nil {
		return c.vertexClient, nil
	}
	if c.vertexInitErr != nil {
		return nil, c.vertexInitErr
	}

	if c.vertex.Project == "" || c.vertex.Location == "" {
		return nil, &ErrMissingVertexConfig{Model: model.String()}
	}

	client, err := vertex.New(ctx, c.vertex.Project, c.vertex.Location)
	if err != nil {
		c.vertexInitErr = fmt.Errorf("failed to initialize Vertex AI client: %w", err)
		return nil, c.vertexInitErr
	}

	c.vertexClient = client
	return c.vertexClient, nil
}

// getGenerator returns the backend for the given model.
func (c *Client) getGenerator(ctx context.Context, model ai.Model) (ai.Generator, error) {
	provider := model.Provider()
	if g, ok := c.overrides[provider]; ok {
		return g, nil
	}

	switch provider {
	case ai.ProviderGoogle:
		client, err := c.getGoogleClient(ctx)
		if err != nil {
			return nil, withModel(err, model)
		}
		return client, nil
	case ai.ProviderOpenAI:
		client, err := c.getOpenAIClient()
		if err != nil {
			return nil, withModel(err, model)
		}
		return client, nil
	case ai.ProviderVertex:
		client, err := c.getVertexClient(ctx, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, &ErrUnsupportedProvider{Provider: provider.String()}
	}
}

func withModel(err error, model ai.Model) error {
	if missing, ok := err.(*ErrMissingAPIKey); ok {
		return &ErrMissingAPIKey{Provider: missing.Provider, Model: model.String()}
	}
	return err
}

// Generate sends a generation request to the backend serving the model.
// The model can be specified via WithModel option, or the default image model is used.
// Requests are never retried.
func (c *Client) Generate(ctx context.Context, req ai.GenerationRequest, opts ...ai.Option) (*ai.GenerationResult, error) {
	options := ai.ApplyOptions(opts...)

	// Determine which model to use
	model := options.Model
	if model == nil {
		model = c.defaults.Image
	}
	if model == nil {
		return nil, &ErrNoModel{Operation: "generate"}
	}

	generator, err := c.getGenerator(ctx, model)
	if err != nil {
		return nil, err
	}

	provider := model.Provider()
	log := c.logger.With(
		zap.String("provider", provider.String()),
		zap.String("model", model.String()),
		zap.Bool("reference", req.HasReference()),
	)

	start := time.Now()
	emit(c.events, Event{
		Type:     EventRequestStart,
		Provider: provider,
		Model:    model.String(),
	})
	log.Debug("generation request started", zap.Int("prompt_len", len(req.Prompt)))

	// Ensure model is passed to the underlying provider
	if options.Model == nil {
		opts = append([]ai.Option{ai.WithModel(model)}, opts...)
	}

	res, err := generator.Generate(ctx, req, opts...)
	elapsed := time.Since(start)
	if err != nil {
		emit(c.events, Event{
			Type:     EventRequestError,
			Provider: provider,
			Model:    model.String(),
			Duration: elapsed,
			Error:    err,
		})
		log.Warn("generation request failed",
			zap.Duration("elapsed", elapsed),
			zap.String("category", string(ai.CategoryOf(err))),
			zap.Error(err),
		)
		return nil, err
	}
	if res == nil {
		res = &ai.GenerationResult{}
	}

	emit(c.events, Event{
		Type:     EventRequestComplete,
		Provider: provider,
		Model:    model.String(),
		Duration: elapsed,
	})
	log.Info("generation request completed",
		zap.Duration("elapsed", elapsed),
		zap.Int("text_len", len(res.Text)),
		zap.Bool("image", res.HasImage()),
	)
	return res, nil
}

// SupportsProvider reports whether the client can reach the given provider.
func (c *Client) SupportsProvider(p ai.Provider) bool {
	if _, ok := c.overrides[p]; ok {
		return true
	}
	switch p {
	case ai.ProviderGoogle:
		return c.apiKeys.Google != ""
	case ai.ProviderOpenAI:
		return c.apiKeys.OpenAI != ""
	case ai.ProviderVertex:
		return c.vertex.Project != "" && c.vertex.Location != ""
	default:
		return false
	}
}

// DefaultModel returns the configured default image model, or nil.
func (c *Client) DefaultModel() ai.Model {
	return c.defaults.Image
}

var _ ai.Generator = (*Client)(nil)
