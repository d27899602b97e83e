package cmd

import (
	"github.com/spf13/cobra"
)

var mcqCmd = &cobra.Command{
	Use:   "mcq",
	Short: "Generate multiple-choice questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()

		f := cmd.Flags()
		p := mcqParams{
			topic:      a.cfg.Defaults.Topic,
			num:        a.cfg.Defaults.NumQuestions,
			difficulty: a.cfg.Defaults.Difficulty,
			path:       a.cfg.MCQPath(),
		}
		if f.Changed("topic") {
			p.topic, _ = f.GetString("topic")
		}
		if f.Changed("num") {
			p.num, _ = f.GetInt("num")
		}
		if f.Changed("difficulty") {
			p.difficulty, _ = f.GetString("difficulty")
		}
		if f.Changed("out") {
			p.path, _ = f.GetString("out")
		}

		res, err := a.runMCQ(cmd.Context(), p)
		if err != nil {
			return err
		}
		return a.report(res)
	},
}

func init() {
	mcqCmd.Flags().String("topic", "", "Question topic (default from config)")
	mcqCmd.Flags().Int("num", 0, "Number of questions, 1-50 (default from config)")
	mcqCmd.Flags().String("difficulty", "", "Difficulty: easy, medium or hard (default from config)")
	mcqCmd.Flags().String("out", "", "Output file (default: <out-dir>/sample_mcqs.json)")
}
