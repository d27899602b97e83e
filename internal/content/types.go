package content

// Type identifies the kind of generated content. Values match the
// content_type field written to output files.
type Type string

const (
	TypeMCQ        Type = "multiple_choice_questions"
	TypeLessonPlan Type = "lesson_plan"
)

// FallbackNote is attached to content that did not come from the LLM.
const FallbackNote = "Generated using fallback content due to API limitations"

// OptionsPerQuestion is the fixed number of choices on every MCQ.
const OptionsPerQuestion = 4

// Content is the result of a generation request. It is implemented by
// *MCQContent and *LessonPlanContent only.
type Content interface {
	ContentType() Type

	// Metadata returns the descriptive fields that precede generated_at in
	// the envelope, in output order.
	Metadata() *Map

	// Payload returns the generated body as a tree.
	Payload() Node

	// Annotation returns the note to embed in the envelope, if any.
	Annotation() string

	sealed()
}

// MCQItem is a single multiple-choice question.
type MCQItem struct {
	Question      string   `json:"question" yaml:"question" validate:"required"`
	Options       []string `json:"options" yaml:"options" validate:"len=4,dive,required"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer" validate:"oneof=A B C D"`
	Explanation   string   `json:"explanation" yaml:"explanation" validate:"required"`
}

// AnswerIndex returns the option index the answer letter points at, or -1
// when the letter does not index a present option.
func (it MCQItem) AnswerIndex() int {
	if len(it.CorrectAnswer) != 1 {
		return -1
	}
	idx := int(it.CorrectAnswer[0] - 'A')
	if idx < 0 || idx >= len(it.Options) {
		return -1
	}
	return idx
}

// Node returns the item as an ordered tree.
func (it MCQItem) Node() *Map {
	return NewMap().
		Set("question", String(it.Question)).
		Set("options", Strings(it.Options...)).
		Set("correct_answer", String(it.CorrectAnswer)).
		Set("explanation", String(it.Explanation))
}

// OptionLetter returns the label for the option at position i: A, B, C, ...
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

// MCQContent is a batch of generated questions for one topic.
type MCQContent struct {
	Topic        string
	NumQuestions int
	Difficulty   string
	Questions    []MCQItem
	Note         string
}

func (c *MCQContent) ContentType() Type { return TypeMCQ }

func (c *MCQContent) Metadata() *Map {
	return NewMap().
		Set("topic", String(c.Topic)).
		Set("num_questions", Number(c.NumQuestions)).
		Set("difficulty", String(c.Difficulty))
}

func (c *MCQContent) Payload() Node {
	l := make(List, 0, len(c.Questions))
	for _, q := range c.Questions {
		l = append(l, q.Node())
	}
	return l
}

func (c *MCQContent) Annotation() string { return c.Note }

func (*MCQContent) sealed() {}

// LessonPlanContent is a lesson plan for one subject. Plan holds the
// free-form sections (title, overview, objectives, structure, ...).
type LessonPlanContent struct {
	Subject    string
	Duration   string
	GradeLevel string
	Plan       *Map
	Note       string
}

func (c *LessonPlanContent) ContentType() Type { return TypeLessonPlan }

func (c *LessonPlanContent) Metadata() *Map {
	return NewMap().
		Set("subject", String(c.Subject)).
		Set("duration", String(c.Duration)).
		Set("grade_level", String(c.GradeLevel))
}

func (c *LessonPlanContent) Payload() Node {
	if c.Plan == nil {
		return NewMap()
	}
	return c.Plan
}

func (c *LessonPlanContent) Annotation() string { return c.Note }

func (*LessonPlanContent) sealed() {}
