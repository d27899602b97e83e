package contentgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/educontent/internal/content"
)

// Length limits, in bytes.
const (
	maxQuestionLen    = 500
	maxOptionLen      = 200
	maxExplanationLen = 1000
)

// StructuralValidator checks that every question has its required fields,
// four distinct options, an answer letter pointing at one of them, and
// fields within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(batch *content.MCQContent, _ content.Request) *ValidationError {
	for i, q := range batch.Questions {
		if msg := checkQuestion(q); msg != "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: %s", i+1, msg),
			}
		}
	}
	return nil
}

func checkQuestion(q content.MCQItem) string {
	if err := q.Validate(); err != nil {
		return err.Error()
	}
	if strings.TrimSpace(q.Question) == "" {
		return "question is blank"
	}
	if len(q.Question) > maxQuestionLen {
		return fmt.Sprintf("question exceeds %d characters", maxQuestionLen)
	}
	if len(q.Explanation) > maxExplanationLen {
		return fmt.Sprintf("explanation exceeds %d characters", maxExplanationLen)
	}

	seen := make(map[string]bool, len(q.Options))
	for j, opt := range q.Options {
		norm := strings.ToLower(strings.TrimSpace(opt))
		if norm == "" {
			return fmt.Sprintf("option %s is blank", content.OptionLetter(j))
		}
		if len(opt) > maxOptionLen {
			return fmt.Sprintf("option %s exceeds %d characters", content.OptionLetter(j), maxOptionLen)
		}
		if seen[norm] {
			return fmt.Sprintf("option %s duplicates an earlier option", content.OptionLetter(j))
		}
		seen[norm] = true
	}
	return ""
}

// CountValidator rejects an empty batch and trims a batch that is longer
// than requested.
type CountValidator struct{}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(batch *content.MCQContent, req content.Request) *ValidationError {
	if len(batch.Questions) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "no questions returned",
		}
	}
	if n := req.Params.NumQuestions; n > 0 && len(batch.Questions) > n {
		batch.Questions = batch.Questions[:n]
	}
	return nil
}

// LessonPlanValidator requires a title and a non-empty lesson structure.
type LessonPlanValidator struct{}

func (v *LessonPlanValidator) Name() string { return "lesson-plan" }

func (v *LessonPlanValidator) Validate(plan *content.LessonPlanContent, _ content.Request) *ValidationError {
	if plan.Plan == nil {
		return &ValidationError{Validator: v.Name(), Message: "lesson plan is empty"}
	}
	if title, ok := plan.Plan.GetString("title"); !ok || strings.TrimSpace(title) == "" {
		return &ValidationError{Validator: v.Name(), Message: "title is empty"}
	}
	node, ok := plan.Plan.Get("lesson_structure")
	structure, isMap := node.(*content.Map)
	if !ok || !isMap || structure.Len() == 0 {
		return &ValidationError{Validator: v.Name(), Message: "lesson_structure is empty"}
	}
	return nil
}
