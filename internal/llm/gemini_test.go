package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":       map[string]any{"type": "string"},
			"options":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 4, "maxItems": 4},
			"correct_answer": map[string]any{"type": "string", "enum": []string{"A", "B", "C", "D"}},
			"explanation":    map[string]any{"type": "string"},
		},
		"required": []string{"question", "options", "correct_answer", "explanation"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if got := schema.PropertyOrdering; len(got) != 4 || got[0] != "question" || got[3] != "explanation" {
		t.Fatalf("unexpected property ordering %v", got)
	}
	opts := schema.Properties["options"]
	if opts.Type != genai.TypeArray || opts.Items.Type != genai.TypeString {
		t.Fatalf("unexpected options schema %+v", opts)
	}
	if opts.MinItems == nil || *opts.MinItems != 4 || opts.MaxItems == nil || *opts.MaxItems != 4 {
		t.Fatalf("expected options bounded to 4 items")
	}
	if len(schema.Properties["correct_answer"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["correct_answer"].Enum))
	}
	if len(schema.Required) != 4 {
		t.Fatalf("expected 4 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_DecodedJSON(t *testing.T) {
	def := map[string]any{
		"type":     "object",
		"required": []any{"b", "a"},
		"properties": map[string]any{
			"a": map[string]any{"type": "integer"},
			"b": map[string]any{"type": "boolean", "enum": []any{"x"}},
		},
	}
	schema := buildGeminiSchema(def)
	if schema.PropertyOrdering[0] != "b" || schema.PropertyOrdering[1] != "a" {
		t.Fatalf("unexpected ordering %v", schema.PropertyOrdering)
	}
	if schema.Properties["a"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER, got %s", schema.Properties["a"].Type)
	}
}

func TestMapGeminiError(t *testing.T) {
	unauth := mapGeminiError(fmt.Errorf("generate: %w", genai.APIError{Code: http.StatusForbidden, Message: "denied"}))
	var ue *ErrUnauthorized
	if !errors.As(unauth, &ue) {
		t.Fatalf("expected ErrUnauthorized, got %T", unauth)
	}

	limited := mapGeminiError(genai.APIError{Code: http.StatusTooManyRequests})
	var rl *ErrRateLimit
	if !errors.As(limited, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", limited)
	}

	other := mapGeminiError(errors.New("dial tcp: connection refused"))
	var unavail *ErrProviderUnavailable
	if !errors.As(other, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", other)
	}
}
