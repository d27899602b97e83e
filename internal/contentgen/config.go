package contentgen

// Config controls the behavior of the LLMClient.
type Config struct {
	// MCQValidators run in order on every generated batch; the first
	// failure stops the pipeline. Validators may trim the batch.
	MCQValidators []MCQValidator

	// LessonValidators run in order on every generated lesson plan.
	LessonValidators []LessonValidator

	// TokensPerQuestion is the response budget per requested question.
	TokensPerQuestion int

	// LessonMaxTokens is the response budget for a lesson plan.
	LessonMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chains
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		MCQValidators: []MCQValidator{
			&CountValidator{},
			&StructuralValidator{},
		},
		LessonValidators: []LessonValidator{
			&LessonPlanValidator{},
		},
		TokensPerQuestion: 300,
		LessonMaxTokens:   2048,
		Temperature:       0.7,
	}
}

// mcqTokenBudget leaves room for the JSON wrapper around n questions.
func (c Config) mcqTokenBudget(n int) int {
	return 200 + n*c.TokensPerQuestion
}
