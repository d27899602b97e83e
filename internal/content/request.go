package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default request parameters.
const (
	DefaultTopic        = "Python Programming Basics"
	DefaultNumQuestions = 5
	DefaultDifficulty   = "medium"
	DefaultDuration     = "45 minutes"
	DefaultGradeLevel   = "beginner"
)

// DefaultObjectives are sent with lesson plan requests when the caller
// gives none.
var DefaultObjectives = []string{
	"Understanding the process",
	"Identifying key components",
}

// Request describes one piece of content to generate. Build it with
// NewMCQRequest or NewLessonPlanRequest and pass it by value.
type Request struct {
	Type Type `validate:"oneof=multiple_choice_questions lesson_plan"`

	// Topic is the MCQ topic or the lesson plan subject.
	Topic string `validate:"required"`

	Params Params
}

// Params holds the type-specific request parameters.
type Params struct {
	// MCQ parameters.
	NumQuestions int    `validate:"gte=0,lte=50"`
	Difficulty   string `validate:"omitempty,oneof=easy medium hard"`

	// Lesson plan parameters.
	Duration   string
	GradeLevel string
	Objectives []string `validate:"dive,required"`
}

// NewMCQRequest builds and validates a request for n questions on topic.
func NewMCQRequest(topic string, n int, difficulty string) (Request, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	r := Request{
		Type:  TypeMCQ,
		Topic: strings.TrimSpace(topic),
		Params: Params{
			NumQuestions: n,
			Difficulty:   strings.ToLower(difficulty),
		},
	}
	return r, r.Validate()
}

// NewLessonPlanRequest builds and validates a lesson plan request.
func NewLessonPlanRequest(subject, duration, gradeLevel string, objectives ...string) (Request, error) {
	if len(objectives) == 0 {
		objectives = DefaultObjectives
	}
	r := Request{
		Type:  TypeLessonPlan,
		Topic: strings.TrimSpace(subject),
		Params: Params{
			Duration:   duration,
			GradeLevel: gradeLevel,
			Objectives: append([]string(nil), objectives...),
		},
	}
	return r, r.Validate()
}

// Validate checks the request fields and the parameters its type needs.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid %s request: %w", r.Type, describe(err))
	}
	return nil
}

// Validate checks the item's fields and that the answer letter indexes one
// of its options.
func (it MCQItem) Validate() error {
	if err := validate.Struct(it); err != nil {
		return describe(err)
	}
	if it.AnswerIndex() < 0 {
		return fmt.Errorf("correct_answer %q does not index an option", it.CorrectAnswer)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(requestStructLevel, Request{})
	return v
}

func requestStructLevel(sl validator.StructLevel) {
	r := sl.Current().Interface().(Request)
	switch r.Type {
	case TypeMCQ:
		if r.Params.NumQuestions < 1 {
			sl.ReportError(r.Params.NumQuestions, "NumQuestions", "NumQuestions", "min", "1")
		}
	case TypeLessonPlan:
		if strings.TrimSpace(r.Params.Duration) == "" {
			sl.ReportError(r.Params.Duration, "Duration", "Duration", "required", "")
		}
		if strings.TrimSpace(r.Params.GradeLevel) == "" {
			sl.ReportError(r.Params.GradeLevel, "GradeLevel", "GradeLevel", "required", "")
		}
	}
}

// describe flattens validator output into a single readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
