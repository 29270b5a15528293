package agent

import (
	"fmt"
	"os"
	"time"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Config holds agent endpoint configuration.
type Config struct {
	// Provider selects the client implementation.
	// Values: "openai" (any OpenAI-compatible endpoint), "mock".
	Provider string

	// APIKey is the bearer token for the agent endpoint.
	APIKey string

	// Model is the model identifier sent with every request.
	Model string

	// BaseURL overrides the endpoint, for OpenRouter or any
	// OpenAI-compatible gateway. Empty means the OpenAI default.
	BaseURL string

	// Timeout applies to the underlying HTTP transport. The
	// orchestrator does not enforce its own deadline on top.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		Model:    DefaultModel,
		Timeout:  30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("STUDYLOOP_AGENT_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("STUDYLOOP_AGENT_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("STUDYLOOP_AGENT_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("STUDYLOOP_AGENT_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	return cfg
}

// Validate checks that the config can produce a working client.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.APIKey == "" {
			return fmt.Errorf("STUDYLOOP_AGENT_API_KEY (or OPENAI_API_KEY) is required")
		}
		if c.Model == "" {
			return fmt.Errorf("agent model must not be empty")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown agent provider: %q", c.Provider)
	}
	return nil
}

// NewClient creates a Client from configuration.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIClient(cfg)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown agent provider: %q", cfg.Provider)
	}
}
