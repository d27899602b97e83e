package cmd

import (
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate a lesson plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()

		f := cmd.Flags()
		p := lessonParams{
			subject:    a.cfg.Defaults.Subject,
			duration:   a.cfg.Defaults.Duration,
			grade:      a.cfg.Defaults.GradeLevel,
			objectives: a.cfg.Defaults.Objectives,
			path:       a.cfg.LessonPath(),
		}
		if f.Changed("subject") {
			p.subject, _ = f.GetString("subject")
		}
		if f.Changed("duration") {
			p.duration, _ = f.GetString("duration")
		}
		if f.Changed("grade") {
			p.grade, _ = f.GetString("grade")
		}
		if f.Changed("objective") {
			p.objectives, _ = f.GetStringArray("objective")
		}
		if f.Changed("out") {
			p.path, _ = f.GetString("out")
		}

		res, err := a.runLesson(cmd.Context(), p)
		if err != nil {
			return err
		}
		return a.report(res)
	},
}

func init() {
	lessonCmd.Flags().String("subject", "", "Lesson subject (default from config)")
	lessonCmd.Flags().String("duration", "", "Total lesson length, e.g. \"45 minutes\" (default from config)")
	lessonCmd.Flags().String("grade", "", "Grade level, e.g. beginner (default from config)")
	lessonCmd.Flags().StringArray("objective", nil, "Learning objective; repeat for several (default from config)")
	lessonCmd.Flags().String("out", "", "Output file (default: <out-dir>/sample_lesson_plan.json)")
}
