package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#121212")
	Mantle   = lipgloss.Color("#1f1f1f")
	Surface0 = lipgloss.Color("#2a2a2a")
	Surface1 = lipgloss.Color("#3d3d3d")
	Text     = lipgloss.Color("#e6e1e5")
	Subtext0 = lipgloss.Color("#a39fa8")
	Violet   = lipgloss.Color("#bb86fc")
	Orchid   = lipgloss.Color("#cf94ff")
	Green    = lipgloss.Color("#66bb6a")
	Amber    = lipgloss.Color("#ffb74d")
	Red      = lipgloss.Color("#cf6679")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Violet)

	Title   = lipgloss.NewStyle().Foreground(Violet).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Hot     = lipgloss.NewStyle().Foreground(Orchid).Bold(true)
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	Danger  = lipgloss.NewStyle().Foreground(Red)
)
