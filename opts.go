package vibecheck

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/casualjim/vibecheck/provider"
	"github.com/casualjim/vibecheck/provider/openai"
	"github.com/fogfish/opts"
	"golang.org/x/time/rate"
)

// EnvAPIKey is the environment variable consulted when no APIKey option is given.
const EnvAPIKey = "OPENAI_API_KEY"

const (
	DefaultModel       = openai.DefaultModel
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500
)

// Config is the resolved, immutable configuration of a Client.
type Config struct {
	// APIKey is sent as the bearer credential
	APIKey string
	// Model identifies the remote chat model
	Model string
	// Temperature is passed through to the completion request
	Temperature float64
	// MaxTokens caps the generated reply; 0 leaves it to the service
	MaxTokens int64
	// BaseURL points at an OpenAI-compatible endpoint; empty means the SDK default.
	// Resolved values always end in a slash.
	BaseURL string
	// Vibes asks the model for the decorative vibe field and requires it in the reply
	Vibes bool
	// Concurrency caps in-flight requests of ClassifyMany; 0 means unlimited
	Concurrency int
	// RateLimit paces requests per second across the client; 0 disables pacing
	RateLimit rate.Limit
	// Burst is the bucket size used with RateLimit
	Burst int
	// HTTPClient overrides the transport used to reach the service
	HTTPClient *http.Client
	// Provider replaces the OpenAI provider altogether
	Provider provider.Provider
	// Logger receives the client's structured logs
	Logger *slog.Logger
}

var (
	APIKey      = opts.ForName[Config, string]("APIKey")
	Model       = opts.ForName[Config, string]("Model")
	Temperature = opts.ForName[Config, float64]("Temperature")
	MaxTokens   = opts.ForName[Config, int64]("MaxTokens")
	BaseURL     = opts.ForName[Config, string]("BaseURL")
	Vibes       = opts.ForName[Config, bool]("Vibes")
	Concurrency = opts.ForName[Config, int]("Concurrency")
	HTTPClient  = opts.ForName[Config, *http.Client]("HTTPClient")
	Provider    = opts.ForName[Config, provider.Provider]("Provider")
	Logger      = opts.ForName[Config, *slog.Logger]("Logger")
)

// RateLimit paces every request the client makes to at most perSecond
// requests per second, allowing bursts of burst requests.
func RateLimit(perSecond float64, burst int) opts.Option[Config] {
	return opts.Type[Config](func(c *Config) error {
		c.RateLimit = rate.Limit(perSecond)
		c.Burst = burst
		return nil
	})
}

func defaultConfig() Config {
	return Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// ResolveConfig applies options over the defaults, falls back to the
// environment for the credential and validates the result. It is what New
// uses; it never touches the network.
func ResolveConfig(options ...opts.Option[Config]) (Config, error) {
	cfg := defaultConfig()
	if err := opts.Apply(&cfg, options); err != nil {
		return Config{}, &ConfigError{Err: fmt.Errorf("%w: %w", ErrInvalidConfig, err)}
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	}
	if cfg.APIKey == "" {
		return Config{}, &ConfigError{Field: "api_key", Err: ErrMissingAPIKey}
	}

	cfg.Model = strings.TrimSpace(cfg.Model)
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return Config{}, invalid("base_url", err.Error())
	}
	cfg.BaseURL = baseURL

	switch {
	case cfg.Model == "":
		return Config{}, invalid("model", "must not be empty")
	case math.IsNaN(cfg.Temperature) || cfg.Temperature < 0 || cfg.Temperature > 2:
		return Config{}, invalid("temperature", fmt.Sprintf("must be between 0 and 2, got %v", cfg.Temperature))
	case cfg.MaxTokens < 0:
		return Config{}, invalid("max_tokens", fmt.Sprintf("must not be negative, got %d", cfg.MaxTokens))
	case cfg.Concurrency < 0:
		return Config{}, invalid("concurrency", fmt.Sprintf("must not be negative, got %d", cfg.Concurrency))
	case cfg.RateLimit < 0:
		return Config{}, invalid("rate_limit", fmt.Sprintf("must not be negative, got %v", cfg.RateLimit))
	}

	if cfg.RateLimit > 0 && cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg, nil
}

// normalizeBaseURL validates the endpoint and appends the trailing slash the
// SDK needs to resolve "chat/completions" below the last path segment.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("must be a valid URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("must be an absolute http(s) URL, got %q", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), nil
}

func invalid(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Err: fmt.Errorf("%w: %s", ErrInvalidConfig, reason)}
}
