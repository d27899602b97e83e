// Package pipeline runs content generation end to end: ask the content
// service, fall back to canned content on failure, print the result and
// save it.
package pipeline

import (
	"context"
	"errors"
	"io"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/contentgen"
	"github.com/abhisek/educontent/internal/fallback"
	"github.com/abhisek/educontent/internal/format"
	"github.com/abhisek/educontent/internal/logger"
	"github.com/abhisek/educontent/internal/output"
	"github.com/abhisek/educontent/internal/ui/theme"
)

// Stage is a step in a single pipeline run.
type Stage string

const (
	StageAttemptingRemote Stage = "attempting_remote"
	StageUsingFallback    Stage = "using_fallback"
	StageCompleted        Stage = "completed"
)

// Source records where the content of a Result came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// errNoClient stands in for a missing initialization error.
var errNoClient = errors.New("content client not initialized")

// Result is the outcome of one run.
type Result struct {
	Envelope *content.Envelope
	Source   Source
	Path     string

	// Cause is why fallback content was used. Nil for remote content.
	Cause error

	// WriteErr is set when the envelope could not be saved. The run still
	// counts as completed.
	WriteErr error
}

// UsedFallback reports whether the content is canned.
func (r *Result) UsedFallback() bool { return r.Source == SourceFallback }

// Options configures a Pipeline. Only Client and InitErr are required to be
// meaningful; everything else has a default.
type Options struct {
	// Client is nil when it could not be built; InitErr says why.
	Client  contentgen.Client
	InitErr error

	Fallback  *fallback.Provider
	Formatter *format.Formatter
	Writer    *output.Writer

	// Out receives the rendered content. Defaults to io.Discard.
	Out    io.Writer
	Logger *logger.Logger

	// Timeout bounds each content service call. Zero means no timeout.
	Timeout time.Duration
}

// Pipeline generates, displays, and saves content. It is not safe for
// concurrent use.
type Pipeline struct {
	client   contentgen.Client
	initErr  error
	fallback *fallback.Provider
	format   *format.Formatter
	writer   *output.Writer
	out      io.Writer
	log      *logger.Logger
	timeout  time.Duration
}

// New creates a Pipeline, filling in defaults for unset options.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		client:   opts.Client,
		initErr:  opts.InitErr,
		fallback: opts.Fallback,
		format:   opts.Formatter,
		writer:   opts.Writer,
		out:      opts.Out,
		log:      opts.Logger,
		timeout:  opts.Timeout,
	}
	if p.fallback == nil {
		p.fallback = fallback.Default()
	}
	if p.format == nil {
		p.format = format.New(theme.Plain())
	}
	if p.writer == nil {
		p.writer = output.NewWriter()
	}
	if p.out == nil {
		p.out = io.Discard
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	if p.initErr == nil {
		p.initErr = errNoClient
	}
	return p
}

// Run generates content for req, prints it and saves it to path. The
// returned error is non-nil only for an invalid request; service and write
// failures are recorded in the Result.
func (p *Pipeline) Run(ctx context.Context, req content.Request, path string) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := p.log.With("content_type", string(req.Type), "topic", req.Topic)
	res := &Result{Path: path, Source: SourceRemote}

	c, err := p.generate(ctx, log, req)
	if err != nil {
		// Initialization failures are reported once by whoever built the client.
		if p.client != nil {
			log.Warn("content generation failed, using fallback content", "error", err)
		}
		p.stage(log, StageUsingFallback, "reason", err.Error())
		c = p.fallbackFor(req)
		res.Source = SourceFallback
		res.Cause = err
	}

	res.Envelope = p.format.WrapContent(c)
	if _, err := lipgloss.Fprint(p.out, p.format.Render(res.Envelope)); err != nil {
		log.Warn("failed to print content", "error", err)
	}

	if err := p.writer.Write(res.Envelope, path); err != nil {
		log.Error("failed to save content", "path", path, "error", err)
		res.WriteErr = err
	} else {
		log.Info("content saved", "path", path)
	}

	p.stage(log, StageCompleted, "source", string(res.Source))
	return res, nil
}

func (p *Pipeline) generate(ctx context.Context, log *logger.Logger, req content.Request) (content.Content, error) {
	if p.client == nil {
		return nil, p.initErr
	}

	p.stage(log, StageAttemptingRemote)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	c, err := p.client.Generate(ctx, req)
	if err == nil && c == nil {
		err = errors.New("content client returned no content")
	}
	return c, err
}

// fallbackFor builds canned content for a validated request.
func (p *Pipeline) fallbackFor(req content.Request) content.Content {
	if req.Type == content.TypeLessonPlan {
		return p.fallback.LessonPlan(req.Topic, req.Params.Duration, req.Params.GradeLevel)
	}
	return p.fallback.MCQs(req.Topic, req.Params.NumQuestions)
}

func (p *Pipeline) stage(log *logger.Logger, s Stage, kv ...any) {
	log.Info("pipeline stage", append([]any{"stage", string(s)}, kv...)...)
}
