package theme

import (
	"github.com/atomicstack/hero-slider/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles describes the chrome drawn around every slide.
type Styles struct {
	Brand      *lipgloss.Style
	NavLink    *lipgloss.Style
	NavIcon    *lipgloss.Style
	Hint       *lipgloss.Style
	Footer     *lipgloss.Style
	Search     *lipgloss.Style
	SearchMiss *lipgloss.Style
}

var defaultStyles = Styles{
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	NavLink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	NavIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
	),
	Search: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	SearchMiss: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard chrome styles.
func Default() *Styles {
	return &defaultStyles
}

// Slide holds the styles derived from a single item's colour theme.
type Slide struct {
	Canvas      lipgloss.Style
	Badge       lipgloss.Style
	Title       lipgloss.Style
	Brand       lipgloss.Style
	Description lipgloss.Style
	NotesLabel  lipgloss.Style
	Notes       lipgloss.Style
	Watermark   lipgloss.Style
	Media       lipgloss.Style
	DotActive   lipgloss.Style
	DotIdle     lipgloss.Style
	DotBusy     lipgloss.Style
	Accent      string
}

// ForItem derives the per-slide styles from t. The catalog validates its
// colours, so parse failures fall back to the raw strings.
func ForItem(t catalog.Theme) Slide {
	bg := lipgloss.Color(t.Background)
	accent := lipgloss.Color(t.Accent)
	text := lipgloss.Color(t.Text)
	muted := lipgloss.Color(Blend(t.Text, t.Background, 0.4))
	faint := lipgloss.Color(Blend(t.Accent, t.Background, 0.85))
	idle := lipgloss.Color(Blend(t.Text, t.Background, 0.7))
	return Slide{
		Canvas:      lipgloss.NewStyle().Background(bg).Foreground(text),
		Badge:       lipgloss.NewStyle().Background(bg).Foreground(accent).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(accent).BorderBackground(bg).Padding(0, 1),
		Title:       lipgloss.NewStyle().Background(bg).Foreground(text).Bold(true),
		Brand:       lipgloss.NewStyle().Background(bg).Foreground(muted),
		Description: lipgloss.NewStyle().Background(bg).Foreground(text),
		NotesLabel:  lipgloss.NewStyle().Background(bg).Foreground(muted),
		Notes:       lipgloss.NewStyle().Background(bg).Foreground(accent).Bold(true),
		Watermark:   lipgloss.NewStyle().Background(bg).Foreground(faint).Bold(true),
		Media:       lipgloss.NewStyle().Background(bg).Foreground(muted),
		DotActive:   lipgloss.NewStyle().Background(bg).Foreground(text).Bold(true),
		DotIdle:     lipgloss.NewStyle().Background(bg).Foreground(idle),
		DotBusy:     lipgloss.NewStyle().Background(bg).Foreground(faint),
		Accent:      t.Accent,
	}
}

// Blend mixes from towards to by amount (0 keeps from, 1 yields to) in Lab
// space and returns the hex result. Unparseable input is returned unchanged.
func Blend(from, to string, amount float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, amount).Clamped().Hex()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
