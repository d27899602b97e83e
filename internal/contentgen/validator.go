package contentgen

import (
	"fmt"

	"github.com/abhisek/educontent/internal/content"
)

// MCQValidator checks a generated batch of questions. Implementations
// should be stateless and safe for concurrent use.
type MCQValidator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "count".
	Name() string

	// Validate returns nil if the batch passes. It may trim
	// batch.Questions.
	Validate(batch *content.MCQContent, req content.Request) *ValidationError
}

// LessonValidator checks a generated lesson plan.
type LessonValidator interface {
	Name() string
	Validate(plan *content.LessonPlanContent, req content.Request) *ValidationError
}

// ValidationError describes why generated content failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
