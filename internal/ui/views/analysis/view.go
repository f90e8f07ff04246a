package analysis

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	trackerdto "mealcoach/internal/modules/tracker/dto"
	"mealcoach/internal/ui/theme"
)

const NoTotalMessage = "No total calorie figure was found in the analysis, so 0 kcal was recorded."

// Model shows the selected image, the latest analysis and the day's calorie
// progress. It is shared by the Capture and Upload tabs.
type Model struct {
	viewport viewport.Model
	spinner  spinner.Model
	bar      progress.Model
	renderer *glamour.TermRenderer

	image     trackerdto.ImageOutput
	hasImage  bool
	result    trackerdto.AnalysisOutput
	hasResult bool
	notice    string
	errText   string
	loading   bool
	total     int
	limit     int

	width  int
	height int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Violet)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{
		viewport: viewport.New(0, 0),
		spinner:  sp,
		bar:      progress.New(progress.WithGradient(string(theme.Violet), string(theme.Orchid))),
		renderer: r,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()

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
	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	if m.loading {
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Analyzing your meal...")
	} else {
		vp := m.viewport
		vp.Height = bodyH
		body = vp.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// SetImage switches to a newly selected image and clears the previous result.
func (m *Model) SetImage(image trackerdto.ImageOutput) {
	m.image = image
	m.hasImage = true
	m.hasResult = false
	m.result = trackerdto.AnalysisOutput{}
	m.notice = ""
	m.errText = ""
	m.refresh()
}

// StartLoading shows the spinner until SetResult or SetError is called.
func (m *Model) StartLoading() tea.Cmd {
	m.loading = true
	m.notice = ""
	m.errText = ""
	return m.spinner.Tick
}

func (m *Model) SetResult(out trackerdto.AnalysisOutput) {
	m.loading = false
	m.result = out
	m.hasResult = true
	m.errText = ""
	m.total = out.TotalCalories
	m.limit = out.DailyLimit
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) SetError(text string) {
	m.loading = false
	m.errText = text
	m.refresh()
}

// SetNotice shows a warning that leaves the current result in place.
func (m *Model) SetNotice(text string) {
	m.notice = text
	m.refresh()
}

func (m *Model) SetTotals(total, limit int) {
	m.total = total
	m.limit = limit
}

// Text returns the analysis text that can be exported. Failed analyses are
// not exportable.
func (m Model) Text() (string, bool) {
	if !m.hasResult || m.result.Failed || strings.TrimSpace(m.result.Text) == "" {
		return "", false
	}
	return m.result.Text, true
}

func (m Model) Loading() bool { return m.loading }

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-6, 1)
	m.bar.Width = max(min(m.width-4, 60), 10)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(m.width-2, 20)),
	); err == nil {
		m.renderer = r
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderHeader() string {
	if !m.hasImage {
		return theme.Title.Render("Meal Analysis") +
			theme.Muted.Render("  capture (c) or upload (u) a meal photo to start") + "\n"
	}
	img := m.image
	parts := []string{
		theme.Title.Render(img.Name),
		theme.Muted.Render("[" + img.Source + "]"),
	}
	if img.Width > 0 && img.Height > 0 {
		parts = append(parts, theme.Muted.Render(fmt.Sprintf("%dx%d", img.Width, img.Height)))
	}
	if img.DetectedType != "" {
		parts = append(parts, theme.Muted.Render(img.DetectedType))
	}
	return strings.Join(parts, "  ") + theme.Muted.Render("  r: retry  d: export") + "\n"
}

func (m Model) renderContent() string {
	var sb strings.Builder
	if m.notice != "" {
		sb.WriteString(theme.Warning.Render(m.notice) + "\n\n")
	}
	if m.errText != "" {
		sb.WriteString(theme.Danger.Render(m.errText) + "\n\n")
	}
	if !m.hasResult {
		if sb.Len() == 0 && m.hasImage {
			sb.WriteString(theme.Muted.Render("Complete the sidebar to analyze this meal."))
		}
		return sb.String()
	}
	if m.result.Failed {
		sb.WriteString(theme.Danger.Render(m.result.Text))
		return sb.String()
	}
	sb.WriteString(m.render(m.result.Text))
	return sb.String()
}

func (m Model) renderFooter() string {
	limit := m.limit
	if limit <= 0 {
		limit = 1
	}
	var sb strings.Builder
	sb.WriteString("\n" + theme.Title.Render(fmt.Sprintf("Total Calories Today: %d / %d kcal", m.total, m.limit)) + "\n")
	sb.WriteString(m.bar.ViewAs(clamp01(float64(m.total)/float64(limit))) + "\n")
	if m.hasResult && !m.result.Failed {
		switch m.result.Verdict {
		case "healthy":
			sb.WriteString(theme.Success.Render(m.result.Message))
		case "unhealthy":
			sb.WriteString(theme.Warning.Render(m.result.Message))
		}
		if !m.result.Parsed {
			sb.WriteString("\n" + theme.Muted.Render(NoTotalMessage))
		}
	}
	return sb.String()
}

func (m Model) render(text string) string {
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(text); err == nil {
			return rendered
		}
	}
	return text
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
