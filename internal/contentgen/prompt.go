package contentgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/educontent/internal/content"
)

const mcqSystemPrompt = `You are an experienced teacher writing multiple-choice quiz questions.

Rules:
- Write exactly the requested number of questions about the given topic, at the given difficulty.
- Every question has exactly 4 options. Exactly one option is correct.
- Distractors should reflect common misconceptions, not random values.
- correct_answer is the letter of the correct option: A for the first option, B for the second, and so on.
- Do not prefix options with letters; the letters are added when the quiz is displayed.
- The explanation states briefly why the correct option is right.
- Do not repeat questions.`

const lessonSystemPrompt = `You are an experienced teacher writing a lesson plan for one class session.

Rules:
- Fit the plan to the given subject, total duration, and grade level.
- Split the session into introduction, main_content, and conclusion phases. Give each phase a duration such as "10 minutes"; the phase durations must add up to the total duration.
- List activities in each phase in the order they happen.
- Address every listed learning objective.
- Keep every entry short: one sentence or a phrase.`

// buildMCQMessage constructs the user message for an MCQ request.
func buildMCQMessage(req content.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Number of questions: %d\n", req.Params.NumQuestions)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Params.Difficulty)

	return b.String()
}

// buildLessonMessage constructs the user message for a lesson plan request.
func buildLessonMessage(req content.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", req.Topic)
	fmt.Fprintf(&b, "Duration: %s\n", req.Params.Duration)
	fmt.Fprintf(&b, "Grade level: %s\n", req.Params.GradeLevel)

	b.WriteString("\nLearning objectives:\n")
	for _, o := range req.Params.Objectives {
		fmt.Fprintf(&b, "- %s\n", o)
	}

	return b.String()
}
