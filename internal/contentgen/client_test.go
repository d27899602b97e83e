package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/llm"
)

func mcqJSON(n int) json.RawMessage {
	items := make([]string, 0, n)
	for i := range n {
		items = append(items, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["alpha %d", "beta %d", "gamma %d", "delta %d"],
			"correct_answer": "B",
			"explanation": "Beta is right."
		}`, i+1, i, i, i, i))
	}
	return json.RawMessage(`{"questions": [` + strings.Join(items, ",") + `]}`)
}

func lessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Cells 101",
		"overview": "What cells are made of.",
		"learning_objectives": ["Name organelles"],
		"materials_needed": ["Microscope"],
		"lesson_structure": {
			"introduction": {"duration": "5 minutes", "activities": ["Hook question"]},
			"main_content": {"duration": "20 minutes", "activities": ["Slides", "Lab"]},
			"conclusion": {"duration": "5 minutes", "activities": ["Exit ticket"]}
		},
		"assessment": {"formative": "Q&A", "summative": "Quiz", "homework": "Worksheet"},
		"differentiation": {"for_beginners": "Diagrams", "for_advanced": "Extra reading"}
	}`)
}

func mcqRequest(t *testing.T, n int) content.Request {
	t.Helper()
	req, err := content.NewMCQRequest("Go Channels", n, "hard")
	require.NoError(t, err)
	return req
}

func lessonRequest(t *testing.T) content.Request {
	t.Helper()
	req, err := content.NewLessonPlanRequest("Biology", "30 minutes", "grade 7", "Name organelles")
	require.NoError(t, err)
	return req
}

func TestGenerate_MCQ(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqJSON(3)})
	client := New(mock, DefaultConfig())

	got, err := client.Generate(context.Background(), mcqRequest(t, 3))
	require.NoError(t, err)

	batch, ok := got.(*content.MCQContent)
	require.True(t, ok)
	assert.Equal(t, "Go Channels", batch.Topic)
	assert.Equal(t, "hard", batch.Difficulty)
	assert.Equal(t, 3, batch.NumQuestions)
	assert.Len(t, batch.Questions, 3)
	assert.Equal(t, []string{"alpha 0", "beta 0", "gamma 0", "delta 0"}, batch.Questions[0].Options)
	assert.Equal(t, "B", batch.Questions[0].CorrectAnswer)
	assert.Empty(t, batch.Annotation())

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, MCQSchema, call.Schema)
	assert.Equal(t, mcqSystemPrompt, call.System)
	require.Len(t, call.Messages, 1)
	assert.Equal(t, llm.RoleUser, call.Messages[0].Role)
	assert.Contains(t, call.Messages[0].Content, "Topic: Go Channels\n")
	assert.Contains(t, call.Messages[0].Content, "Number of questions: 3\n")
	assert.Contains(t, call.Messages[0].Content, "Difficulty: hard\n")
	assert.Equal(t, 1100, call.MaxTokens)
}

func TestGenerate_MCQTruncatesExtra(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqJSON(7)})
	got, err := New(mock, DefaultConfig()).Generate(context.Background(), mcqRequest(t, 5))
	require.NoError(t, err)

	batch := got.(*content.MCQContent)
	assert.Len(t, batch.Questions, 5)
	assert.Equal(t, 5, batch.NumQuestions)
}

func TestGenerate_MCQFewerThanRequested(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqJSON(2)})
	got, err := New(mock, DefaultConfig()).Generate(context.Background(), mcqRequest(t, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, got.(*content.MCQContent).NumQuestions)
}

func TestGenerate_MCQFencedResponse(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(mcqJSON(1)) + "\n```")
	mock := llm.NewMockProvider(llm.MockResponse{Content: fenced})

	got, err := New(mock, DefaultConfig()).Generate(context.Background(), mcqRequest(t, 1))
	require.NoError(t, err)
	assert.Len(t, got.(*content.MCQContent).Questions, 1)
}

func TestGenerate_LessonPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: lessonJSON()})

	got, err := New(mock, DefaultConfig()).Generate(context.Background(), lessonRequest(t))
	require.NoError(t, err)

	plan, ok := got.(*content.LessonPlanContent)
	require.True(t, ok)
	assert.Equal(t, "Biology", plan.Subject)
	assert.Equal(t, "30 minutes", plan.Duration)
	assert.Equal(t, "grade 7", plan.GradeLevel)
	assert.Equal(t,
		[]string{"title", "overview", "learning_objectives", "materials_needed", "lesson_structure", "assessment", "differentiation"},
		plan.Plan.Keys())

	structure, _ := plan.Plan.Get("lesson_structure")
	assert.Equal(t, []string{"introduction", "main_content", "conclusion"}, structure.(*content.Map).Keys())

	call := mock.Calls[0]
	assert.Equal(t, LessonPlanSchema, call.Schema)
	assert.Equal(t, 2048, call.MaxTokens)
	assert.Contains(t, call.Messages[0].Content, "Subject: Biology\n")
	assert.Contains(t, call.Messages[0].Content, "Grade level: grade 7\n")
	assert.Contains(t, call.Messages[0].Content, "Learning objectives:\n- Name organelles\n")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		req  func(*testing.T) content.Request
		kind Kind
	}{
		{
			name: "rate limited",
			resp: llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("slow down")}},
			req:  func(t *testing.T) content.Request { return mcqRequest(t, 2) },
			kind: KindUnavailable,
		},
		{
			name: "server down",
			resp: llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}},
			req:  lessonRequest,
			kind: KindUnavailable,
		},
		{
			name: "deadline",
			resp: llm.MockResponse{Err: context.DeadlineExceeded},
			req:  lessonRequest,
			kind: KindUnavailable,
		},
		{
			name: "unauthorized",
			resp: llm.MockResponse{Err: &llm.ErrUnauthorized{StatusCode: 401, Err: errors.New("bad key")}},
			req:  func(t *testing.T) content.Request { return mcqRequest(t, 2) },
			kind: KindUnauthorized,
		},
		{
			name: "schema mismatch",
			resp: llm.MockResponse{Content: json.RawMessage(`{"questions": [{"question": "Q?"}]}`)},
			req:  func(t *testing.T) content.Request { return mcqRequest(t, 2) },
			kind: KindMalformed,
		},
		{
			name: "not json",
			resp: llm.MockResponse{Content: json.RawMessage(`Sure! Here are your questions`)},
			req:  func(t *testing.T) content.Request { return mcqRequest(t, 2) },
			kind: KindMalformed,
		},
		{
			name: "truncated",
			resp: llm.MockResponse{Content: mcqJSON(1), StopReason: "max_tokens"},
			req:  func(t *testing.T) content.Request { return mcqRequest(t, 1) },
			kind: KindMalformed,
		},
		{
			name: "empty batch",
			resp: llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
			req:  func(t *testing.T) content.Request { return mcqRequest(t, 2) },
			kind: KindMalformed,
		},
		{
			name: "blank title",
			resp: llm.MockResponse{Content: json.RawMessage(strings.Replace(string(lessonJSON()), `"Cells 101"`, `"  "`, 1))},
			req:  lessonRequest,
			kind: KindMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			req := tt.req(t)

			got, err := New(mock, DefaultConfig()).Generate(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, got)

			var gerr *GenerationError
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.kind, gerr.Kind, "error: %v", err)
			assert.Equal(t, req.Type, gerr.Type)
		})
	}
}

func TestGenerate_ValidatorFailureUnwraps(t *testing.T) {
	bad := json.RawMessage(`{"questions": [{
		"question": "Pick one",
		"options": ["same", "same", "other", "last"],
		"correct_answer": "A",
		"explanation": "x"
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})

	_, err := New(mock, DefaultConfig()).Generate(context.Background(), mcqRequest(t, 1))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "structural", verr.Validator)
	assert.Contains(t, verr.Message, "question 1: option B duplicates")
}

func TestGenerate_EmptyQueueIsUnavailable(t *testing.T) {
	_, err := New(llm.NewMockProvider(), DefaultConfig()).Generate(context.Background(), mcqRequest(t, 1))

	var gerr *GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUnavailable, gerr.Kind)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcqJSON(1)})

	_, err := New(mock, DefaultConfig()).Generate(context.Background(), content.Request{Type: content.TypeMCQ})
	require.Error(t, err)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerationError_Message(t *testing.T) {
	err := &GenerationError{Kind: KindUnauthorized, Type: content.TypeMCQ, Err: errors.New("bad key")}
	assert.Equal(t, "generate multiple_choice_questions: unauthorized: bad key", err.Error())
	assert.Equal(t, "malformed response", KindMalformed.String())
	assert.Equal(t, "unavailable", KindUnavailable.String())
}
