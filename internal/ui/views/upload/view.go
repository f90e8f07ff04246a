package upload

import (
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mealcoach/internal/ui/theme"
)

// SelectedMsg carries the path of a picked image file.
type SelectedMsg struct{ Path string }

// Model wraps a file picker restricted to the accepted image extensions.
type Model struct {
	picker  filepicker.Model
	warning string
	width   int
	height  int
}

func New(dir string, extensions []string) Model {
	fp := filepicker.New()
	fp.AllowedTypes = extensions
	fp.ShowPermissions = false
	if dir != "" {
		fp.CurrentDirectory = dir
	}
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(theme.Violet)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(theme.Orchid).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(theme.Violet)
	return Model{picker: fp}
}

func (m Model) Init() tea.Cmd { return m.picker.Init() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sz.Width
		m.height = sz.Height
		m.picker.AutoHeight = false
		m.picker.Height = max(sz.Height-4, 3)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.warning = ""
		return m, tea.Batch(cmd, func() tea.Msg { return SelectedMsg{Path: path} })
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.warning = "Not an image file: " + path
	}
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Upload a meal image") +
		theme.Muted.Render("  jpg, jpeg or png  enter: select  backspace: up a directory") + "\n"
	body := m.picker.View()
	if m.warning != "" {
		body = theme.Warning.Render(m.warning) + "\n" + body
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, theme.Muted.Render(m.picker.CurrentDirectory), body)
}
