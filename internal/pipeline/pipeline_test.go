package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/contentgen"
	"github.com/abhisek/educontent/internal/llm"
	"github.com/abhisek/educontent/internal/logger"
	"github.com/abhisek/educontent/internal/ui/theme"
)

type clientFunc func(ctx context.Context, req content.Request) (content.Content, error)

func (f clientFunc) Generate(ctx context.Context, req content.Request) (content.Content, error) {
	return f(ctx, req)
}

func failingClient(kind contentgen.Kind) contentgen.Client {
	return clientFunc(func(_ context.Context, req content.Request) (content.Content, error) {
		return nil, &contentgen.GenerationError{Kind: kind, Type: req.Type, Err: errors.New("boom")}
	})
}

func mcqRequest(t *testing.T, n int) content.Request {
	t.Helper()
	req, err := content.NewMCQRequest(content.DefaultTopic, n, "")
	require.NoError(t, err)
	return req
}

func lessonRequest(t *testing.T) content.Request {
	t.Helper()
	req, err := content.NewLessonPlanRequest(content.DefaultTopic, content.DefaultDuration, content.DefaultGradeLevel)
	require.NoError(t, err)
	return req
}

func stages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.FilterMessage("pipeline stage").All() {
		out = append(out, e.ContextMap()["stage"].(string))
	}
	return out
}

func TestRun_GenerationErrorUsesFallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "sample_mcqs.json")

	p := New(Options{
		Client: failingClient(contentgen.KindUnavailable),
		Out:    &out,
		Logger: logger.FromCore(core),
	})

	res, err := p.Run(context.Background(), mcqRequest(t, 3), path)
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	assert.True(t, res.UsedFallback())
	assert.Equal(t, content.FallbackNote, res.Envelope.Note)
	assert.Nil(t, res.WriteErr)

	var gerr *contentgen.GenerationError
	require.ErrorAs(t, res.Cause, &gerr)

	payload := res.Envelope.Payload.(content.List)
	assert.Len(t, payload, 3)

	assert.Equal(t, []string{"attempting_remote", "using_fallback", "completed"}, stages(logs))
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warn, 1)
	assert.Equal(t, "multiple_choice_questions", warn[0].ContextMap()["content_type"])

	assert.Contains(t, out.String(), "GENERATED CONTENT: MULTIPLE_CHOICE_QUESTIONS")
	assert.Contains(t, out.String(), "Note: "+content.FallbackNote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := content.ParseEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, content.FallbackNote, parsed.Note)
}

func TestRun_RemoteContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": [{
		"question": "What does fmt.Println print after its operands?",
		"options": ["A newline", "A tab", "Nothing", "A space"],
		"correct_answer": "A",
		"explanation": "Println appends a newline."
	}]}`)})

	core, logs := observer.New(zapcore.InfoLevel)
	path := filepath.Join(t.TempDir(), "mcqs.json")
	p := New(Options{
		Client: contentgen.New(mock, contentgen.DefaultConfig()),
		Logger: logger.FromCore(core),
	})

	res, err := p.Run(context.Background(), mcqRequest(t, 1), path)
	require.NoError(t, err)

	assert.Equal(t, SourceRemote, res.Source)
	assert.Nil(t, res.Cause)
	assert.Empty(t, res.Envelope.Note)
	assert.Equal(t, []string{"attempting_remote", "completed"}, stages(logs))
	assert.FileExists(t, path)

	n, _ := res.Envelope.Metadata.Get("num_questions")
	assert.Equal(t, "1", n.(content.Scalar).Text())
}

func TestRun_NoClientSkipsRemote(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	initErr := errors.New("OPENAI_API_KEY not set")

	p := New(Options{InitErr: initErr, Logger: logger.FromCore(core)})
	res, err := p.Run(context.Background(), lessonRequest(t), filepath.Join(t.TempDir(), "lesson.json"))
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	assert.ErrorIs(t, res.Cause, initErr)
	assert.Equal(t, content.TypeLessonPlan, res.Envelope.Type)
	assert.Equal(t, content.FallbackNote, res.Envelope.Note)
	assert.Equal(t, []string{"using_fallback", "completed"}, stages(logs))
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, initErr.Error(), logs.FilterMessage("pipeline stage").All()[0].ContextMap()["reason"])
}

func TestRun_NoClientDefaultCause(t *testing.T) {
	res, err := New(Options{}).Run(context.Background(), mcqRequest(t, 1), filepath.Join(t.TempDir(), "x.json"))
	require.NoError(t, err)
	assert.ErrorIs(t, res.Cause, errNoClient)
}

func TestRun_WriteFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer
	p := New(Options{Out: &out, Logger: logger.FromCore(core)})

	res, err := p.Run(context.Background(), lessonRequest(t), filepath.Join(blocker, "lesson.json"))
	require.NoError(t, err)

	require.Error(t, res.WriteErr)
	require.NotNil(t, res.Envelope)
	assert.Contains(t, out.String(), "LESSON PLAN:")
	assert.Equal(t, 1, logs.FilterMessage("failed to save content").Len())
	assert.Equal(t, "completed", stages(logs)[len(stages(logs))-1])
}

func TestRun_AppliesTimeout(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	client := clientFunc(func(ctx context.Context, req content.Request) (content.Content, error) {
		deadline, hasDeadline = ctx.Deadline()
		return nil, errors.New("offline")
	})

	p := New(Options{Client: client, Timeout: time.Minute})
	start := time.Now()
	_, err := p.Run(context.Background(), mcqRequest(t, 1), filepath.Join(t.TempDir(), "x.json"))
	require.NoError(t, err)

	require.True(t, hasDeadline)
	assert.WithinDuration(t, start.Add(time.Minute), deadline, 5*time.Second)

	p = New(Options{Client: client})
	_, err = p.Run(context.Background(), mcqRequest(t, 1), filepath.Join(t.TempDir(), "y.json"))
	require.NoError(t, err)
	assert.False(t, hasDeadline)
}

func TestRun_InvalidRequest(t *testing.T) {
	res, err := New(Options{}).Run(context.Background(), content.Request{Type: content.TypeMCQ}, "x.json")
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestWriteReport(t *testing.T) {
	fb := New(Options{})
	dir := t.TempDir()

	mcq, err := fb.Run(context.Background(), mcqRequest(t, 2), filepath.Join(dir, "sample_mcqs.json"))
	require.NoError(t, err)
	lesson, err := fb.Run(context.Background(), lessonRequest(t), filepath.Join(dir, "sample_lesson_plan.json"))
	require.NoError(t, err)
	lesson.WriteErr = errors.New("disk full")

	var out bytes.Buffer
	require.NoError(t, WriteReport(&out, theme.Plain(), mcq, nil, lesson))

	got := out.String()
	assert.Contains(t, got, "CONTENT GENERATION COMPLETED\n")
	assert.Contains(t, got, "Generated files:\n• "+mcq.Path+" - Multiple choice questions (fallback content)\n")
	assert.Contains(t, got, "Not saved:\n• "+lesson.Path+" - disk full\n")
}
