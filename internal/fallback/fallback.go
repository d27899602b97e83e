// Package fallback serves deterministic canned content when remote
// generation is unavailable.
package fallback

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/educontent/internal/content"
)

//go:embed bank.yaml
var bankYAML []byte

// SubjectPlaceholder is replaced with the requested subject in every
// string of the lesson template.
const SubjectPlaceholder = "{subject}"

// Difficulty is reported for every fallback MCQ batch.
const Difficulty = "medium"

type bank struct {
	Questions  []content.MCQItem `yaml:"questions"`
	LessonPlan yaml.Node         `yaml:"lesson_plan"`
}

// Provider holds a question bank and a lesson template. It is read-only
// after construction.
type Provider struct {
	questions []content.MCQItem
	lesson    *content.Map
}

// New parses a bank document. Every question must be a valid MCQ and the
// lesson template must be a mapping.
func New(data []byte) (*Provider, error) {
	var b bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse fallback bank: %w", err)
	}

	for i, q := range b.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("fallback question %d: %w", i+1, err)
		}
	}

	tmpl, err := content.FromYAML(&b.LessonPlan)
	if err != nil {
		return nil, fmt.Errorf("fallback lesson template: %w", err)
	}
	lesson, ok := tmpl.(*content.Map)
	if !ok {
		return nil, fmt.Errorf("fallback lesson template: expected mapping, got %T", tmpl)
	}

	return &Provider{questions: b.Questions, lesson: lesson}, nil
}

var loadDefault = sync.OnceValue(func() *Provider {
	p, err := New(bankYAML)
	if err != nil {
		panic(err)
	}
	return p
})

// Default returns the provider backed by the embedded bank.
func Default() *Provider {
	return loadDefault()
}

// Size returns the number of questions in the bank.
func (p *Provider) Size() int {
	return len(p.questions)
}

// MCQs returns the first min(n, Size()) bank questions. A negative n
// yields an empty batch. NumQuestions reports the count actually returned.
func (p *Provider) MCQs(topic string, n int) *content.MCQContent {
	n = max(0, min(n, len(p.questions)))

	items := make([]content.MCQItem, n)
	for i, q := range p.questions[:n] {
		q.Options = append([]string(nil), q.Options...)
		items[i] = q
	}

	return &content.MCQContent{
		Topic:        topic,
		NumQuestions: n,
		Difficulty:   Difficulty,
		Questions:    items,
		Note:         content.FallbackNote,
	}
}

// LessonPlan instantiates the lesson template for subject.
func (p *Provider) LessonPlan(subject, duration, gradeLevel string) *content.LessonPlanContent {
	r := strings.NewReplacer(SubjectPlaceholder, subject)
	plan := content.Rewrite(p.lesson, r.Replace).(*content.Map)

	return &content.LessonPlanContent{
		Subject:    subject,
		Duration:   duration,
		GradeLevel: gradeLevel,
		Plan:       plan,
		Note:       content.FallbackNote,
	}
}
