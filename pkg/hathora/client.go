package hathora

import (
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// APIKeyEnvVar is the environment variable consulted when no API key
	// is passed to NewClient.
	APIKeyEnvVar = "HATHORA_API_KEY"

	// DefaultChatBaseURL is the default base URL for chat models.
	DefaultChatBaseURL = "https://models.hathora.dev"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the Hathora models API client.
type Client struct {
	// Speech provides text-to-speech synthesis operations.
	Speech *SpeechService

	// Transcription provides speech-to-text operations.
	Transcription *TranscriptionService

	// Chat provides LLM chat completion operations.
	Chat *ChatService

	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration. It is assembled once in
// NewClient and never mutated afterwards.
type clientConfig struct {
	apiKey      string
	apiKeyEnv   string
	httpClient  *http.Client
	timeout     time.Duration
	chatBaseURL string
	modelURLs   map[string]string
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithModelURL overrides the base URL for a single model. The schema ties
// endpoints to models, not capabilities, so overrides are per model too.
func WithModelURL(model, baseURL string) Option {
	return func(c *clientConfig) {
		if c.modelURLs == nil {
			c.modelURLs = make(map[string]string)
		}
		c.modelURLs[model] = strings.TrimRight(baseURL, "/")
	}
}

// WithChatBaseURL overrides the base URL shared by chat models.
func WithChatBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.chatBaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithAPIKeyFromEnv names the environment variable consulted when no API
// key is passed explicitly. Defaults to HATHORA_API_KEY.
func WithAPIKeyFromEnv(name string) Option {
	return func(c *clientConfig) {
		c.apiKeyEnv = name
	}
}

// NewClient creates a new Hathora models API client.
//
// An empty apiKey falls back to the HATHORA_API_KEY environment variable
// (or the variable named with WithAPIKeyFromEnv). Requests go out without
// an Authorization header when neither is set.
//
// Example:
//
//	client := hathora.NewClient("your-api-key")
//	client := hathora.NewClient("", hathora.WithTimeout(60*time.Second))
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		apiKey:      apiKey,
		apiKeyEnv:   APIKeyEnvVar,
		timeout:     DefaultTimeout,
		chatBaseURL: DefaultChatBaseURL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv(cfg.apiKeyEnv)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	c.Speech = newSpeechService(c)
	c.Transcription = newTranscriptionService(c)
	c.Chat = newChatService(c)

	return c
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.config.apiKey
}

// endpointURL resolves the full endpoint URL for a model, applying any
// per-model base URL override from construction time.
func (c *Client) endpointURL(spec *modelSpec) string {
	base := spec.baseURL
	if spec.capability == CapabilityChat {
		base = c.config.chatBaseURL
		if base == "" {
			base = DefaultChatBaseURL
		}
	}
	if override := c.config.modelURLs[spec.name]; override != "" {
		base = override
	}
	return base + endpointPath(spec)
}

// endpointPath returns the request path for a model. Chat paths are derived
// from the model's full upstream name.
func endpointPath(spec *modelSpec) string {
	if spec.capability == CapabilityChat {
		return "/model/" + chatModelSlug(spec.fullName) + "/v1/chat/completions"
	}
	return spec.path
}

// chatModelSlug converts an upstream model name like "Qwen/Qwen3-30B-A3B"
// into its URL form: lowercased, with "/" and "_" replaced by "-".
func chatModelSlug(fullName string) string {
	s := strings.ToLower(fullName)
	s = strings.ReplaceAll(s, "/", "-")
	return strings.ReplaceAll(s, "_", "-")
}
