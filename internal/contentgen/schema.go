package contentgen

import "github.com/abhisek/educontent/internal/llm"

// MCQSchema defines the JSON schema for a batch of multiple-choice
// questions.
var MCQSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of multiple-choice questions on one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the student",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, in display order",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "Letter of the correct option: A for the first, D for the last",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right",
						},
					},
					"required":             []any{"question", "options", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// LessonPlanSchema defines the JSON schema for a lesson plan. Sections
// are listed in presentation order.
var LessonPlanSchema = &llm.Schema{
	Name:        "lesson-plan",
	Description: "A structured lesson plan for one class session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "One or two sentences describing the lesson",
			},
			"learning_objectives": stringArray("What students should be able to do afterwards"),
			"materials_needed":    stringArray("Materials and tools the lesson uses"),
			"lesson_structure": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"introduction": phaseSchema("Opening phase"),
					"main_content": phaseSchema("Core teaching phase"),
					"conclusion":   phaseSchema("Wrap-up phase"),
				},
				"required":             []any{"introduction", "main_content", "conclusion"},
				"additionalProperties": false,
			},
			"assessment": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"formative": map[string]any{"type": "string"},
					"summative": map[string]any{"type": "string"},
					"homework":  map[string]any{"type": "string"},
				},
				"required":             []any{"formative", "summative", "homework"},
				"additionalProperties": false,
			},
			"differentiation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"for_beginners": map[string]any{"type": "string"},
					"for_advanced":  map[string]any{"type": "string"},
				},
				"required":             []any{"for_beginners", "for_advanced"},
				"additionalProperties": false,
			},
		},
		"required": []any{
			"title", "overview", "learning_objectives", "materials_needed",
			"lesson_structure", "assessment", "differentiation",
		},
		"additionalProperties": false,
	},
}

func stringArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

func phaseSchema(desc string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": desc,
		"properties": map[string]any{
			"duration": map[string]any{
				"type":        "string",
				"description": "Time allotted, e.g. \"10 minutes\"",
			},
			"activities": stringArray("Activities in the order they happen"),
		},
		"required":             []any{"duration", "activities"},
		"additionalProperties": false,
	}
}
