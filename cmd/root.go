package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "educontent",
	Short: "Generate educational content with an LLM",
	Long: "educontent asks an LLM for multiple-choice questions and lesson plans, falls back to\n" +
		"built-in sample content when the service is unavailable, and saves the results as JSON.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default: ./educontent.yaml or $XDG_CONFIG_HOME/educontent/educontent.yaml)")
	pf.String("out-dir", "", "Directory for generated JSON files")
	pf.String("provider", "", "LLM provider: openai, anthropic, gemini, openrouter or mock")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-mode", "", "Log encoding: dev or prod")

	rootCmd.AddCommand(mcqCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(versionCmd)
}

// runAll runs the MCQ pipeline and then the lesson plan pipeline with the
// configured defaults.
func runAll(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	a.banner()

	a.step(1, "Generating Multiple Choice Questions")
	mcq, err := a.runMCQ(cmd.Context(), mcqParams{
		topic:      a.cfg.Defaults.Topic,
		num:        a.cfg.Defaults.NumQuestions,
		difficulty: a.cfg.Defaults.Difficulty,
		path:       a.cfg.MCQPath(),
	})
	if err != nil {
		return err
	}

	a.step(2, "Generating Lesson Plan")
	lesson, err := a.runLesson(cmd.Context(), lessonParams{
		subject:    a.cfg.Defaults.Subject,
		duration:   a.cfg.Defaults.Duration,
		grade:      a.cfg.Defaults.GradeLevel,
		objectives: a.cfg.Defaults.Objectives,
		path:       a.cfg.LessonPath(),
	})
	if err != nil {
		return err
	}

	return a.report(mcq, lesson)
}
