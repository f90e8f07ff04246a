package exercise

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	trackerdto "mealcoach/internal/modules/tracker/dto"
	"mealcoach/internal/ui/theme"
)

// Model renders exercise recommendations. Requests never touch the meal log.
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	result   trackerdto.ExerciseOutput
	has      bool
	notice   string
	loading  bool
	width    int
	height   int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Violet)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	return Model{viewport: viewport.New(0, 0), spinner: sp, renderer: r}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		if r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(max(msg.Width-2, 20)),
		); err == nil {
			m.renderer = r
		}
		m.viewport.SetContent(m.renderContent())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := theme.Title.Render("Exercise Recommendations") +
		theme.Muted.Render("  enter: get recommendations for today") + "\n"
	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			lipgloss.Place(m.width, max(m.height-2, 1), lipgloss.Center, lipgloss.Center,
				m.spinner.View()+" Generating exercise recommendations..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m *Model) StartLoading() tea.Cmd {
	m.loading = true
	m.notice = ""
	return m.spinner.Tick
}

func (m *Model) SetResult(out trackerdto.ExerciseOutput) {
	m.loading = false
	m.result = out
	m.has = true
	m.notice = ""
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

func (m *Model) SetNotice(text string) {
	m.loading = false
	m.notice = text
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	var out string
	if m.notice != "" {
		out = theme.Warning.Render(m.notice) + "\n\n"
	}
	if !m.has {
		if out == "" {
			out = theme.Muted.Render("Recommendations use your fitness goal, age, weight and today's calorie total.")
		}
		return out
	}
	out += theme.Muted.Render(fmt.Sprintf("Based on %d kcal consumed today", m.result.CaloriesToday)) + "\n\n"
	if m.result.Failed {
		return out + theme.Danger.Render(m.result.Text)
	}
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(m.result.Text); err == nil {
			return out + rendered
		}
	}
	return out + m.result.Text
}
