package pipeline

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/ui/theme"
)

var typeLabels = map[content.Type]string{
	content.TypeMCQ:        "Multiple choice questions",
	content.TypeLessonPlan: "Lesson plan",
}

// WriteReport prints the completion summary: files written, files that
// could not be written, and which runs used fallback content.
func WriteReport(w io.Writer, styles theme.Styles, results ...*Result) error {
	var b strings.Builder
	rule := styles.Banner.Render(strings.Repeat("=", 60))

	b.WriteString("\n" + rule + "\n")
	b.WriteString(styles.Done.Render("CONTENT GENERATION COMPLETED") + "\n")
	b.WriteString(rule + "\n")

	var written, failed []*Result
	for _, r := range results {
		if r == nil {
			continue
		}
		if r.WriteErr != nil {
			failed = append(failed, r)
		} else {
			written = append(written, r)
		}
	}

	if len(written) > 0 {
		b.WriteString("Generated files:\n")
		for _, r := range written {
			fmt.Fprintf(&b, "• %s - %s%s\n", r.Path, label(r), fallbackHint(styles, r))
		}
	}
	if len(failed) > 0 {
		b.WriteString("Not saved:\n")
		for _, r := range failed {
			fmt.Fprintf(&b, "• %s - %s\n", r.Path, styles.Hint.Render(r.WriteErr.Error()))
		}
	}

	_, err := lipgloss.Fprint(w, b.String())
	return err
}

func label(r *Result) string {
	if r.Envelope == nil {
		return "unknown content"
	}
	if l, ok := typeLabels[r.Envelope.Type]; ok {
		return l
	}
	return string(r.Envelope.Type)
}

func fallbackHint(styles theme.Styles, r *Result) string {
	if !r.UsedFallback() {
		return ""
	}
	return " " + styles.Hint.Render("(fallback content)")
}
