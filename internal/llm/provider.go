package llm

import (
	"context"
	"encoding/json"
)

// Provider sends a single prompt to an LLM vendor and returns its output.
type Provider interface {
	// Generate performs one request. When req.Schema is set the provider
	// asks for structured output and Response.Content is the validated JSON
	// object; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single-turn or multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, selects the vendor's structured output mode.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must satisfy.
type Schema struct {
	// Name is kebab-case, e.g. "mcq-batch". It doubles as the cache key for
	// the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a provider's output for one request.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
