package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/educontent/internal/content"
)

func TestDefault_LoadsEmbeddedBank(t *testing.T) {
	p := Default()
	require.NotNil(t, p)
	assert.Equal(t, 5, p.Size())
	assert.Same(t, p, Default())
}

func TestMCQs_Count(t *testing.T) {
	p := Default()

	for n := 1; n <= 5; n++ {
		got := p.MCQs("Python Programming Basics", n)
		require.Len(t, got.Questions, n)
		assert.Equal(t, n, got.NumQuestions)
		for i, q := range got.Questions {
			assert.NoError(t, q.Validate(), "question %d", i+1)
			assert.Len(t, q.Options, content.OptionsPerQuestion)
		}
	}

	for _, n := range []int{6, 10, 100} {
		got := p.MCQs("Python Programming Basics", n)
		assert.Len(t, got.Questions, 5)
		assert.Equal(t, 5, got.NumQuestions)
	}

	for _, n := range []int{0, -1} {
		got := p.MCQs("Python Programming Basics", n)
		assert.Empty(t, got.Questions)
		assert.Equal(t, 0, got.NumQuestions)
	}
}

func TestMCQs_PythonBasicsThree(t *testing.T) {
	got := Default().MCQs("Python Programming Basics", 3)

	require.Len(t, got.Questions, 3)
	first := got.Questions[0]
	assert.Equal(t, "A", first.CorrectAnswer)
	assert.Equal(t, []string{"my_list = []", "my_list = ()", "my_list = {}", "my_list = <>"}, first.Options)

	assert.Equal(t, "Python Programming Basics", got.Topic)
	assert.Equal(t, "medium", got.Difficulty)
	assert.Equal(t, content.FallbackNote, got.Note)
	assert.Equal(t, "Generated using fallback content due to API limitations", got.Annotation())
}

func TestMCQs_ReturnsCopies(t *testing.T) {
	p := Default()
	a := p.MCQs("x", 1)
	a.Questions[0].Options[0] = "mutated"
	a.Questions[0].Question = "mutated"

	b := p.MCQs("x", 1)
	assert.Equal(t, "my_list = []", b.Questions[0].Options[0])
	assert.NotEqual(t, "mutated", b.Questions[0].Question)
}

func TestLessonPlan_Structure(t *testing.T) {
	got := Default().LessonPlan("Photosynthesis", "45 minutes", "beginner")

	assert.Equal(t, "Photosynthesis", got.Subject)
	assert.Equal(t, "45 minutes", got.Duration)
	assert.Equal(t, "beginner", got.GradeLevel)
	assert.Equal(t, content.FallbackNote, got.Note)

	assert.Equal(t,
		[]string{"title", "overview", "learning_objectives", "materials_needed", "lesson_structure", "assessment", "differentiation"},
		got.Plan.Keys())

	title, _ := got.Plan.GetString("title")
	assert.Equal(t, "Introduction to Photosynthesis", title)

	homework, _ := got.Plan.Get("assessment")
	hw, _ := homework.(*content.Map).GetString("homework")
	assert.Equal(t, "Complete Photosynthesis practice problems", hw)

	node, ok := got.Plan.Get("lesson_structure")
	require.True(t, ok)
	structure := node.(*content.Map)
	assert.Equal(t, []string{"introduction", "main_content", "conclusion"}, structure.Keys())

	var durations []string
	for _, phase := range structure.Keys() {
		p, _ := structure.Get(phase)
		d, ok := p.(*content.Map).GetString("duration")
		require.True(t, ok, phase)
		durations = append(durations, d)
	}
	assert.Equal(t, []string{"10 minutes", "25 minutes", "10 minutes"}, durations)
}

func TestLessonPlan_NoPlaceholderLeft(t *testing.T) {
	got := Default().LessonPlan("Go <Generics> & Types", "45 minutes", "advanced")

	data, err := got.Plan.MarshalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), SubjectPlaceholder)
	assert.Contains(t, string(data), "Introduction to Go <Generics> & Types")
}

func TestLessonPlan_Independent(t *testing.T) {
	p := Default()
	a := p.LessonPlan("Cells", "45 minutes", "beginner")
	a.Plan.Set("title", content.String("mutated"))

	b := p.LessonPlan("Cells", "45 minutes", "beginner")
	title, _ := b.Plan.GetString("title")
	assert.Equal(t, "Introduction to Cells", title)
}

func TestNew_RejectsBadBank(t *testing.T) {
	tests := map[string]string{
		"bad yaml": "questions: [",
		"three options": `
questions:
  - question: "Q"
    options: ["a", "b", "c"]
    correct_answer: "A"
    explanation: "E"
lesson_plan:
  title: "T"
`,
		"lesson not a mapping": `
questions: []
lesson_plan: ["a", "b"]
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New([]byte(doc))
			assert.Error(t, err)
		})
	}
}
