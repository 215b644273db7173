package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	ai "github.com/spetersoncode/visualizer"
	"github.com/spetersoncode/visualizer/model"
)

const (
	envPrefix      = "VISUALIZER"
	defaultLogFile = "visualizer.log"
)

// Config holds the application configuration resolved from flags, the
// environment and an optional .env file.
type Config struct {
	// API Keys
	GoogleKey string
	OpenAIKey string

	// Vertex AI (uses ADC for auth)
	VertexProject  string
	VertexLocation string

	// Provider forces the backend for Model. Empty infers it from the model.
	Provider string
	Model    string
	Size     ai.ImageSize
	Quality  ai.ImageQuality

	OutputDir string
	LogFile   string
	Debug     bool
}

// newViper returns a viper instance with defaults and environment bindings.
// Flags are bound separately by the root command.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("model", model.Default.String())
	v.SetDefault("log-file", defaultLogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("google-api-key", "GOOGLE_API_KEY", "GEMINI_API_KEY", "API_KEY")
	_ = v.BindEnv("openai-api-key", "OPENAI_API_KEY")
	_ = v.BindEnv("vertex-project", "VERTEX_PROJECT")
	_ = v.BindEnv("vertex-location", "VERTEX_LOCATION")

	return v
}

// LoadConfig resolves configuration from v.
// It loads a .env file if present (silent fail if not found).
func LoadConfig(v *viper.Viper) (*Config, error) {
	godotenv.Load() // Load .env file if present

	size, err := ai.ParseImageSize(v.GetString("size"))
	if err != nil {
		return nil, err
	}
	quality, err := ai.ParseImageQuality(v.GetString("quality"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GoogleKey:      v.GetString("google-api-key"),
		OpenAIKey:      v.GetString("openai-api-key"),
		VertexProject:  v.GetString("vertex-project"),
		VertexLocation: v.GetString("vertex-location"),
		Provider:       strings.ToLower(strings.TrimSpace(v.GetString("provider"))),
		Model:          strings.TrimSpace(v.GetString("model")),
		Size:           size,
		Quality:        quality,
		OutputDir:      v.GetString("output-dir"),
		LogFile:        v.GetString("log-file"),
		Debug:          v.GetBool("debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ImageModel resolves the configured model identifier. Identifiers outside
// the catalog are accepted; their provider is inferred from the name unless
// Provider is set.
func (c *Config) ImageModel() model.ImageModel {
	if c.Provider != "" {
		return model.LookupProvider(c.Model, ai.Provider(c.Provider))
	}
	if m, ok := model.Lookup(c.Model); ok {
		return m
	}
	return model.Custom(c.Model, inferProvider(c.Model))
}

func inferProvider(id string) ai.Provider {
	if strings.HasPrefix(id, "gpt-") || strings.HasPrefix(id, "dall-e") {
		return ai.ProviderOpenAI
	}
	return ai.ProviderGoogle
}

// GenerateOptions returns the per-request options implied by the config.
func (c *Config) GenerateOptions() []ai.Option {
	var opts []ai.Option
	if c.Size != "" {
		opts = append(opts, ai.WithImageSize(c.Size))
	}
	if c.Quality != "" {
		opts = append(opts, ai.WithImageQuality(c.Quality))
	}
	return opts
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("a model is required (see `visualizer models`)")
	}

	switch ai.Provider(c.Provider) {
	case "", ai.ProviderGoogle, ai.ProviderOpenAI, ai.ProviderVertex:
	default:
		return fmt.Errorf("unknown provider: %s (must be google, openai, or vertex)", c.Provider)
	}

	switch c.ImageModel().Provider() {
	case ai.ProviderGoogle:
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for model %s", c.Model)
		}
	case ai.ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for model %s", c.Model)
		}
	case ai.ProviderVertex:
		if c.VertexProject == "" || c.VertexLocation == "" {
			return fmt.Errorf("VERTEX_PROJECT and VERTEX_LOCATION are required for vertex provider")
		}
	}

	return nil
}
