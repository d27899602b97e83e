package contentgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/llm"
)

// Client produces educational content for a request.
type Client interface {
	// Generate makes a single call to the content service. Service
	// failures are reported as *GenerationError.
	Generate(ctx context.Context, req content.Request) (content.Content, error)
}

// LLMClient implements Client on top of an LLM provider.
type LLMClient struct {
	provider llm.Provider
	config   Config
}

var _ Client = (*LLMClient)(nil)

// New creates a new LLMClient with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMClient {
	return &LLMClient{provider: provider, config: cfg}
}

// mcqOutput is the raw LLM response before validation.
type mcqOutput struct {
	Questions []content.MCQItem `json:"questions"`
}

// Generate dispatches on the request's content type.
func (c *LLMClient) Generate(ctx context.Context, req content.Request) (content.Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Type {
	case content.TypeMCQ:
		return c.generateMCQs(ctx, req)
	case content.TypeLessonPlan:
		return c.generateLessonPlan(ctx, req)
	default:
		return nil, fmt.Errorf("unsupported content type %q", req.Type)
	}
}

func (c *LLMClient) generateMCQs(ctx context.Context, req content.Request) (content.Content, error) {
	ctx = llm.WithPurpose(ctx, "mcq-gen")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: mcqSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMCQMessage(req)},
		},
		Schema:      MCQSchema,
		MaxTokens:   c.config.mcqTokenBudget(req.Params.NumQuestions),
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return nil, newGenerationError(req.Type, err)
	}

	var raw mcqOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{
			Kind: KindMalformed,
			Type: req.Type,
			Err:  fmt.Errorf("failed to parse LLM response: %w", err),
		}
	}

	batch := &content.MCQContent{
		Topic:      req.Topic,
		Difficulty: req.Params.Difficulty,
		Questions:  raw.Questions,
	}

	// Run validators in order.
	for _, v := range c.config.MCQValidators {
		if verr := v.Validate(batch, req); verr != nil {
			return nil, newGenerationError(req.Type, verr)
		}
	}

	batch.NumQuestions = len(batch.Questions)
	return batch, nil
}

func (c *LLMClient) generateLessonPlan(ctx context.Context, req content.Request) (content.Content, error) {
	ctx = llm.WithPurpose(ctx, "lesson-plan")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonMessage(req)},
		},
		Schema:      LessonPlanSchema,
		MaxTokens:   c.config.LessonMaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return nil, newGenerationError(req.Type, err)
	}

	node, err := content.Decode(resp.Content)
	if err != nil {
		return nil, &GenerationError{
			Kind: KindMalformed,
			Type: req.Type,
			Err:  fmt.Errorf("failed to parse LLM response: %w", err),
		}
	}
	tree, ok := node.(*content.Map)
	if !ok {
		return nil, &GenerationError{
			Kind: KindMalformed,
			Type: req.Type,
			Err:  fmt.Errorf("lesson plan is not an object"),
		}
	}

	plan := &content.LessonPlanContent{
		Subject:    req.Topic,
		Duration:   req.Params.Duration,
		GradeLevel: req.Params.GradeLevel,
		Plan:       tree,
	}

	for _, v := range c.config.LessonValidators {
		if verr := v.Validate(plan, req); verr != nil {
			return nil, newGenerationError(req.Type, verr)
		}
	}

	return plan, nil
}
