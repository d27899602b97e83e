// Package format wraps generated content in envelopes and renders them
// for the console.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/ui/theme"
)

const (
	bannerWidth  = 60
	sectionWidth = 40
	indentUnit   = "  "
	bullet       = "•"
)

// metadataLabels overrides the title-cased key for metadata lines.
var metadataLabels = map[string]string{
	"num_questions": "Number of Questions",
}

// Formatter builds and renders envelopes. Now is the clock used for
// generated_at.
type Formatter struct {
	Now    func() time.Time
	Styles theme.Styles
}

// New returns a Formatter using the wall clock.
func New(styles theme.Styles) *Formatter {
	return &Formatter{Now: time.Now, Styles: styles}
}

// Wrap stamps payload with the current time and the given metadata.
func (f *Formatter) Wrap(t content.Type, metadata *content.Map, payload content.Node) *content.Envelope {
	if metadata == nil {
		metadata = content.NewMap()
	}
	return &content.Envelope{
		Type:        t,
		Metadata:    metadata,
		GeneratedAt: f.now(),
		PayloadKey:  content.PayloadKeyFor(t),
		Payload:     payload,
	}
}

// WrapContent wraps c, carrying its note across.
func (f *Formatter) WrapContent(c content.Content) *content.Envelope {
	env := f.Wrap(c.ContentType(), c.Metadata(), c.Payload())
	env.Note = c.Annotation()
	return env
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Render returns the human-readable printout of env.
func (f *Formatter) Render(env *content.Envelope) string {
	r := &renderer{
		styles: f.Styles,
		title:  cases.Title(language.Und),
	}

	r.banner(env.Type)
	switch env.Type {
	case content.TypeMCQ:
		r.metadata(env)
		r.questions(env.Payload)
	case content.TypeLessonPlan:
		r.metadata(env)
		r.lessonPlan(env.Payload)
	default:
		r.dump(env)
	}
	return r.b.String()
}

type renderer struct {
	b      strings.Builder
	styles theme.Styles
	title  cases.Caser
}

func (r *renderer) line(parts ...string) {
	for _, p := range parts {
		r.b.WriteString(p)
	}
	r.b.WriteByte('\n')
}

func (r *renderer) banner(t content.Type) {
	rule := r.styles.Banner.Render(strings.Repeat("=", bannerWidth))
	r.line()
	r.line(rule)
	r.line(r.styles.Banner.Render("GENERATED CONTENT: " + strings.ToUpper(string(t))))
	r.line(rule)
}

func (r *renderer) section(name string) {
	rule := r.styles.Section.Render(strings.Repeat("-", sectionWidth))
	r.line()
	r.line(rule)
	r.line(r.styles.Section.Render(name + ":"))
	r.line(rule)
}

func (r *renderer) label(name, value string) {
	r.line(r.styles.Label.Render(name+":"), " ", value)
}

func (r *renderer) metadata(env *content.Envelope) {
	for _, k := range env.Metadata.Keys() {
		v, _ := env.Metadata.Get(k)
		r.label(r.metadataLabel(k), text(v, "N/A"))
	}
	r.label("Generated at", env.GeneratedAt.Format(content.TimestampLayout))
	if env.Note != "" {
		r.line(r.styles.Label.Render("Note:"), " ", r.styles.Note.Render(env.Note))
	}
}

func (r *renderer) metadataLabel(key string) string {
	if l, ok := metadataLabels[key]; ok {
		return l
	}
	return r.humanize(key)
}

func (r *renderer) humanize(key string) string {
	return r.title.String(strings.ReplaceAll(key, "_", " "))
}

func (r *renderer) questions(payload content.Node) {
	r.section("QUESTIONS")

	items, _ := payload.(content.List)
	for i, item := range items {
		q, _ := item.(*content.Map)

		r.line()
		r.line(r.styles.Heading.Render(fmt.Sprintf("Question %d:", i+1)))
		r.line("Q: ", field(q, "question", "No question text"))

		if opts, ok := q.Get("options"); ok {
			list, _ := opts.(content.List)
			for j, opt := range list {
				r.line("   ", content.OptionLetter(j), ". ", text(opt, ""))
			}
		}

		r.line(r.styles.Label.Render("Correct Answer:"), " ", r.styles.Answer.Render(field(q, "correct_answer", "N/A")))
		r.line(r.styles.Label.Render("Explanation:"), " ", field(q, "explanation", "No explanation"))
	}
}

func (r *renderer) lessonPlan(payload content.Node) {
	r.section("LESSON PLAN")

	plan, ok := payload.(*content.Map)
	if !ok {
		if payload != nil {
			r.node(payload, "")
		}
		return
	}

	for _, k := range plan.Keys() {
		v, _ := plan.Get(k)
		r.line()
		r.line(r.styles.Heading.Render(strings.ToUpper(strings.ReplaceAll(k, "_", " ")) + ":"))
		r.node(v, indentUnit)
	}
}

// node renders one subtree at the given indentation. Scalars print on
// their own line, list items get bullets, nested map keys are title-cased
// with their values one level deeper.
func (r *renderer) node(n content.Node, indent string) {
	switch v := n.(type) {
	case content.Scalar:
		r.line(indent, v.Text())
	case content.List:
		for _, item := range v {
			if s, ok := item.(content.Scalar); ok {
				r.line(indent, r.styles.Bullet.Render(bullet), " ", s.Text())
				continue
			}
			r.line(indent, r.styles.Bullet.Render(bullet))
			r.node(item, indent+indentUnit)
		}
	case *content.Map:
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			r.line(indent, r.humanize(k), ":")
			r.node(child, indent+indentUnit)
		}
	case nil:
		r.line(indent, "null")
	}
}

func (r *renderer) dump(env *content.Envelope) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indentUnit)
	if err := enc.Encode(env.Tree()); err != nil {
		r.line(fmt.Sprintf("<unrenderable envelope: %v>", err))
		return
	}
	r.b.Write(buf.Bytes())
}

func field(m *content.Map, key, missing string) string {
	v, ok := m.Get(key)
	if !ok {
		return missing
	}
	return text(v, missing)
}

func text(n content.Node, missing string) string {
	s, ok := n.(content.Scalar)
	if !ok || s.Value == nil {
		return missing
	}
	return s.Text()
}
