package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the timer page.
type Style struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Time     lipgloss.Style
	Urgent   lipgloss.Style
	Banner   lipgloss.Style
	Hint     lipgloss.Style
	Terminal lipgloss.Style
}

// NewStyle returns the page styles. With noColor set, only layout and
// emphasis are kept.
func NewStyle(darkTheme, noColor bool) Style {
	s := Style{
		Base:     lipgloss.NewStyle().Padding(1, padding),
		Title:    lipgloss.NewStyle().Bold(true),
		Time:     lipgloss.NewStyle().Bold(true),
		Urgent:   lipgloss.NewStyle().Bold(true),
		Banner:   lipgloss.NewStyle().Padding(0, 1),
		Hint:     lipgloss.NewStyle().Faint(true),
		Terminal: lipgloss.NewStyle().Bold(true),
	}

	if noColor {
		return s
	}

	green := lipgloss.Color("#00875f")
	red := lipgloss.Color("#d70000")
	banner := lipgloss.Color("#ffd75f")

	if darkTheme {
		green = lipgloss.Color("#5fd787")
		red = lipgloss.Color("#ff5f5f")
	}

	s.Time = s.Time.Foreground(green)
	s.Urgent = s.Urgent.Foreground(red)
	s.Terminal = s.Terminal.Foreground(red)
	s.Banner = s.Banner.
		Foreground(lipgloss.Color("#000000")).
		Background(banner)

	return s
}
