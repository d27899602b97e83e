package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/educontent/internal/config"
	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/contentgen"
	"github.com/abhisek/educontent/internal/format"
	"github.com/abhisek/educontent/internal/llm"
	"github.com/abhisek/educontent/internal/logger"
	"github.com/abhisek/educontent/internal/pipeline"
	"github.com/abhisek/educontent/internal/ui/theme"
)

const bannerTitle = "EduContent Setup and Content Generation"

// app holds the dependencies shared by every command that generates
// content.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	pipeline *pipeline.Pipeline
	styles   theme.Styles
	out      io.Writer
}

// newApp loads configuration, builds the logger and tries to build the LLM
// provider. A provider that cannot be built is logged and leaves the
// pipeline on fallback content; only configuration errors are returned.
func newApp(cmd *cobra.Command) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	log = log.With("run_id", uuid.NewString())

	var client contentgen.Client
	provider, initErr := llm.NewProvider(cmd.Context(), cfg.LLM, log)
	if initErr != nil {
		log.Warn("LLM provider not configured, fallback content will be used",
			"provider", cfg.LLM.Provider, "error", initErr)
	} else {
		log.Info("LLM provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())
		client = contentgen.New(provider, contentgen.DefaultConfig())
	}

	styles := theme.Default()
	out := cmd.OutOrStdout()

	return &app{
		cfg: cfg,
		log: log,
		pipeline: pipeline.New(pipeline.Options{
			Client:    client,
			InitErr:   initErr,
			Formatter: format.New(styles),
			Out:       out,
			Logger:    log,
			Timeout:   cfg.LLM.Timeout,
		}),
		styles: styles,
		out:    out,
	}, nil
}

type mcqParams struct {
	topic      string
	num        int
	difficulty string
	path       string
}

func (a *app) runMCQ(ctx context.Context, p mcqParams) (*pipeline.Result, error) {
	req, err := content.NewMCQRequest(p.topic, p.num, p.difficulty)
	if err != nil {
		return nil, err
	}
	return a.pipeline.Run(ctx, req, p.path)
}

type lessonParams struct {
	subject    string
	duration   string
	grade      string
	objectives []string
	path       string
}

func (a *app) runLesson(ctx context.Context, p lessonParams) (*pipeline.Result, error) {
	req, err := content.NewLessonPlanRequest(p.subject, p.duration, p.grade, p.objectives...)
	if err != nil {
		return nil, err
	}
	return a.pipeline.Run(ctx, req, p.path)
}

func (a *app) banner() {
	lipgloss.Fprint(a.out,
		a.styles.Banner.Render(bannerTitle)+"\n"+
			a.styles.Banner.Render(strings.Repeat("=", 50))+"\n")
}

func (a *app) step(n int, title string) {
	lipgloss.Fprint(a.out, "\n"+a.styles.Step.Render(fmt.Sprintf("%d. %s...", n, title))+"\n")
}

func (a *app) report(results ...*pipeline.Result) error {
	return pipeline.WriteReport(a.out, a.styles, results...)
}
