package llm

import (
	"fmt"
	"time"
)

// Config selects and configures one LLM provider.
type Config struct {
	// Provider is one of "openai", "anthropic", "gemini", "openrouter", "mock".
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=openai anthropic gemini openrouter mock"`

	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`

	// Timeout bounds a single generation call. Zero means no deadline.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Standard vendor key variables. They are read as fallbacks for the
// per-provider api_key settings.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvAnthropicKey  = "ANTHROPIC_API_KEY"
	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvOpenRouterKey = "OPENROUTER_API_KEY"
)

// DefaultConfig targets OpenAI gpt-4o.
func DefaultConfig() Config {
	return Config{
		Provider:   "openai",
		OpenAI:     OpenAIConfig{Model: "gpt-4o"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-4o"},
		Timeout:    60 * time.Second,
	}
}

// Discover fills in Provider when it is empty: the first vendor with an
// API key wins, in the order OpenAI, Anthropic, Gemini, OpenRouter. With no
// keys at all it selects OpenAI, which then fails validation and leaves the
// caller without a provider.
func (c Config) Discover() Config {
	if c.Provider != "" {
		return c
	}
	switch {
	case c.OpenAI.APIKey != "":
		c.Provider = "openai"
	case c.Anthropic.APIKey != "":
		c.Provider = "anthropic"
	case c.Gemini.APIKey != "":
		c.Provider = "gemini"
	case c.OpenRouter.APIKey != "":
		c.Provider = "openrouter"
	default:
		c.Provider = "openai"
	}
	return c
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%s is required for the openai provider", EnvOpenAIKey)
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("%s is required for the anthropic provider", EnvAnthropicKey)
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("%s is required for the gemini provider", EnvGeminiKey)
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("%s is required for the openrouter provider", EnvOpenRouterKey)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
