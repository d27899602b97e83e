package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
)

// Styles is the set of styles used by the console renderer. Every field
// must render plain text unchanged when unstyled.
type Styles struct {
	// Banner is used for "=" rules and the GENERATED CONTENT heading.
	Banner lipgloss.Style
	// Section is used for "-" rules and section titles such as QUESTIONS:.
	Section lipgloss.Style
	// Label prefixes metadata lines, e.g. "Topic:".
	Label   lipgloss.Style
	Heading lipgloss.Style
	Answer  lipgloss.Style
	Note    lipgloss.Style
	Bullet  lipgloss.Style
	Step    lipgloss.Style
	Done    lipgloss.Style
	Hint    lipgloss.Style
}

// Default returns the colored console styles.
func Default() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary),
		Label: lipgloss.NewStyle().
			Foreground(TextDim),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(Text),
		Answer: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),
		Note: lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true),
		Bullet: lipgloss.NewStyle().
			Foreground(Accent),
		Step: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),
		Done: lipgloss.NewStyle().
			Bold(true).
			Foreground(Success),
		Hint: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),
	}
}

// Plain returns styles that leave text untouched. Used for tests and
// non-terminal output.
func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Banner:  s,
		Section: s,
		Label:   s,
		Heading: s,
		Answer:  s,
		Note:    s,
		Bullet:  s,
		Step:    s,
		Done:    s,
		Hint:    s,
	}
}
