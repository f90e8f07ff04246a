package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "mealcoach/internal/modules/tracker/dto"
	apperrors "mealcoach/internal/platform/errors"
	"mealcoach/internal/ui/components"
	"mealcoach/internal/ui/flow"
	"mealcoach/internal/ui/theme"
	analysisview "mealcoach/internal/ui/views/analysis"
	exerciseview "mealcoach/internal/ui/views/exercise"
	historyview "mealcoach/internal/ui/views/history"
	uploadview "mealcoach/internal/ui/views/upload"
)

const (
	AnalysisInputsMessage = "Please fill out all sidebar inputs before proceeding."
	ExerciseInputsMessage = "Please complete all sidebar inputs."

	sidebarWidth = 32
)

// ─── port ────────────────────────────────────────────────────────────────────

type trackerPort interface {
	SelectUpload(ctx context.Context, path string) (trackerdto.ImageOutput, error)
	Capture(ctx context.Context) (trackerdto.ImageOutput, error)
	Analyze(ctx context.Context, profile trackerdto.ProfileInput) (trackerdto.AnalysisOutput, error)
	RecommendExercise(ctx context.Context, profile trackerdto.ProfileInput) (trackerdto.ExerciseOutput, error)
	Summary(ctx context.Context, limit int) (trackerdto.SummaryOutput, error)
	Export(ctx context.Context, text string) (trackerdto.ExportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCapture tabID = iota
	tabUpload
	tabExercise
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{
	"Capture", "Upload", "Exercise", "History",
}

// ─── async messages ──────────────────────────────────────────────────────────

type imageSelectedMsg struct {
	image trackerdto.ImageOutput
	err   error
}

type analysisDoneMsg struct {
	key flow.Key
	out trackerdto.AnalysisOutput
	err error
}

type exerciseDoneMsg struct {
	out trackerdto.ExerciseOutput
	err error
}

type summaryLoadedMsg struct {
	summary trackerdto.SummaryOutput
	err     error
}

type exportedMsg struct {
	out trackerdto.ExportOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Capture  key.Binding
	Upload   key.Binding
	Retry    key.Binding
	Export   key.Binding
	Exercise key.Binding
	Profile  key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Capture:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "capture photo")),
		Upload:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload image")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry analysis")),
		Export:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download pdf")),
		Exercise: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "exercise tips")),
		Profile:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit profile")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Capture, k.Upload, k.Profile},
		{k.Retry, k.Export, k.Exercise},
		{k.Help, k.Palette, k.Quit},
	}
}

// globalWhilePicking lists the keys the file picker does not swallow.
var globalWhilePicking = map[string]bool{
	"ctrl+c": true, "q": true, "tab": true, "shift+tab": true, ":": true, "?": true, "p": true, "c": true,
}

// ─── model ───────────────────────────────────────────────────────────────────

// Options carries the start-up values of the profile form and history pane.
type Options struct {
	Profile      components.ProfileDefaults
	HistoryLimit int
	UploadDir    string
	Extensions   []string
}

// Model is the root Bubble Tea model. It owns tab routing, the profile form
// and the analysis state machine; every AI call and all session state sit
// behind the tracker port.
type Model struct {
	tracker trackerPort
	opts    Options

	form     components.ProfileForm
	flow     *flow.Machine
	analysis analysisview.Model
	exercise exerciseview.Model
	history  historyview.Model
	upload   uploadview.Model
	picking  bool

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	total     int
	status    string
	width     int
	height    int
}

func NewModel(tracker trackerPort, opts Options) Model {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 10
	}
	m := Model{
		tracker:   tracker,
		opts:      opts,
		form:      components.NewProfileForm(opts.Profile),
		flow:      flow.New(),
		analysis:  analysisview.New(),
		exercise:  exerciseview.New(),
		history:   historyview.New(),
		upload:    uploadview.New(opts.UploadDir, opts.Extensions),
		picking:   true,
		activeTab: tabCapture,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
	m.flow.ProfileChanged(m.form.MealType(), m.form.Valid())
	m.analysis.SetTotals(0, m.form.DailyLimit())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.upload.Init(), m.summaryCmd())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.form.SetWidth(sidebarWidth)
		m.propagateSize()
		return m, nil

	case imageSelectedMsg:
		if msg.err != nil {
			text := userMessage(msg.err)
			m.status = text
			m.analysis.SetError(text)
			return m, nil
		}
		m.picking = false
		m.analysis.SetImage(msg.image)
		m.status = "selected " + msg.image.Name
		return m, m.apply(m.flow.SelectImage(msg.image.ImageID))

	case analysisDoneMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrInvalidInput):
			m.analysis.SetError("")
			m.analysis.SetNotice(AnalysisInputsMessage)
		case msg.err != nil:
			m.analysis.SetError(userMessage(msg.err))
			m.status = "analysis failed"
		default:
			m.analysis.SetResult(msg.out)
			m.total = msg.out.TotalCalories
			if msg.out.Failed {
				m.status = "analysis failed, press r to retry"
			} else {
				m.status = fmt.Sprintf("%s logged: %d kcal", msg.out.MealType, msg.out.Calories)
			}
		}
		cmds = append(cmds, m.summaryCmd(), m.apply(m.flow.Complete(msg.key)))
		return m, tea.Batch(cmds...)

	case exerciseDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrInvalidInput) {
				m.exercise.SetNotice(ExerciseInputsMessage)
			} else {
				m.exercise.SetNotice(userMessage(msg.err))
			}
			return m, nil
		}
		m.exercise.SetResult(msg.out)
		m.status = "exercise recommendations ready"
		return m, nil

	case summaryLoadedMsg:
		if msg.err != nil {
			m.status = "history: " + msg.err.Error()
			return m, nil
		}
		m.total = msg.summary.TotalCalories
		m.analysis.SetTotals(m.total, m.form.DailyLimit())
		return m, m.history.SetMeals(msg.summary.TotalCalories, msg.summary.History)

	case exportedMsg:
		if msg.err != nil {
			m.status = userMessage(msg.err)
		} else {
			m.status = "report saved to " + msg.out.Path
		}
		return m, nil

	case uploadview.SelectedMsg:
		m.status = "loading " + msg.Path
		return m, m.selectUploadCmd(msg.Path)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.history.Filtering() && m.activeTab == tabHistory {
			break
		}
		if m.form.Focused() {
			if msg.String() == "esc" || msg.String() == "p" {
				m.form.Blur()
				return m, nil
			}
			var changed bool
			m.form, changed = m.form.Update(msg)
			if changed {
				return m, m.profileChanged()
			}
			if msg.String() != "ctrl+c" {
				return m, nil
			}
		}
		if m.activeTab == tabUpload && m.picking && !globalWhilePicking[msg.String()] {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "p":
			m.form.Focus()
			return m, nil
		case "c":
			m.activeTab = tabCapture
			return m, m.captureCmd()
		case "u":
			m.activeTab = tabUpload
			m.picking = true
			return m, m.upload.Init()
		case "r":
			return m, m.retry()
		case "d":
			return m, m.export()
		case "enter":
			if m.activeTab == tabExercise {
				return m, m.requestExercise()
			}
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabCapture:
		m.analysis, tabCmd = m.analysis.Update(msg)
	case tabUpload:
		if m.picking {
			m.upload, tabCmd = m.upload.Update(msg)
		} else {
			m.analysis, tabCmd = m.analysis.Update(msg)
		}
	case tabExercise:
		m.exercise, tabCmd = m.exercise.Update(msg)
	case tabHistory:
		m.history, tabCmd = m.history.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	// Spinner ticks must reach both spinners whichever tab is showing.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmd tea.Cmd
		if m.activeTab != tabExercise {
			m.exercise, cmd = m.exercise.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.activeTab == tabExercise || m.activeTab == tabHistory || (m.activeTab == tabUpload && m.picking) {
			m.analysis, cmd = m.analysis.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.activeTab != tabUpload || !m.picking {
			m.upload, cmd = m.upload.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		main := lipgloss.NewStyle().Width(max(m.width-sidebarWidth-1, 1)).Height(contentH).Render(m.activeView())
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.form.View(), " ", main)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCapture:
		return m.analysis.View()
	case tabUpload:
		if m.picking {
			return m.upload.View()
		}
		return m.analysis.View()
	case tabExercise:
		return m.exercise.View()
	case tabHistory:
		return m.history.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := theme.Title.Render("AI Meal Coach") + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render(fmt.Sprintf("● %d / %d kcal", m.total, m.form.DailyLimit())) +
		"  " + theme.Muted.Render(m.flow.State().String()) + "  " + m.status
	right := theme.Muted.Render("?:help  p:profile  c:capture  u:upload  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	arg := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "capture":
		m.activeTab = tabCapture
		return m, m.captureCmd()

	case "upload":
		if arg == "" {
			m.activeTab = tabUpload
			m.picking = true
			return m, m.upload.Init()
		}
		m.activeTab = tabUpload
		return m, m.selectUploadCmd(arg)

	case "analyze", "retry":
		return m, m.retry()

	case "export":
		return m, m.export()

	case "exercise":
		m.activeTab = tabExercise
		return m, m.requestExercise()

	case "history":
		m.activeTab = tabHistory
		return m, m.summaryCmd()

	case "meal", "goal", "limit", "age", "weight":
		form, err := m.form.Set(parts[0], arg)
		if err != nil {
			m.status = userMessage(err)
			return m, nil
		}
		m.form = form
		return m, m.profileChanged()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	mainW := max(m.width-sidebarWidth-1, 1)
	sz := tea.WindowSizeMsg{Width: mainW, Height: max(m.height-4, 1)}
	m.analysis, _ = m.analysis.Update(sz)
	m.exercise, _ = m.exercise.Update(sz)
	m.history, _ = m.history.Update(sz)
	m.upload, _ = m.upload.Update(sz)
}

// profileChanged re-reads the form and lets the machine decide whether the
// new inputs warrant an analysis.
func (m *Model) profileChanged() tea.Cmd {
	m.analysis.SetTotals(m.total, m.form.DailyLimit())
	return m.apply(m.flow.ProfileChanged(m.form.MealType(), m.form.Valid()))
}

func (m *Model) apply(d flow.Decision) tea.Cmd {
	if d.Analyze {
		m.flow.Start(d.Key)
		m.status = "analyzing " + d.Key.MealType
		return tea.Batch(m.analysis.StartLoading(), m.analyzeCmd(d.Key, m.form.Input()))
	}
	if m.flow.State() == flow.ImageSelectedInvalidInputs {
		m.analysis.SetNotice(AnalysisInputsMessage)
	} else {
		m.analysis.SetNotice("")
	}
	return nil
}

func (m *Model) retry() tea.Cmd {
	if !m.flow.HasImage() {
		m.status = "select an image first"
		return nil
	}
	if m.flow.State() == flow.AnalysisInFlight {
		m.status = "analysis already running"
		return nil
	}
	return m.apply(m.flow.Retry())
}

func (m *Model) export() tea.Cmd {
	text, ok := m.analysis.Text()
	if !ok {
		m.status = "nothing to export yet"
		return nil
	}
	m.status = "exporting report"
	return m.exportCmd(text)
}

func (m *Model) requestExercise() tea.Cmd {
	if !m.form.Valid() {
		m.exercise.SetNotice(ExerciseInputsMessage)
		return nil
	}
	m.status = "generating exercise recommendations"
	return tea.Batch(m.exercise.StartLoading(), m.exerciseCmd(m.form.Input()))
}

// userMessage turns a wrapped error into sentence case for display.
func userMessage(err error) string {
	s := err.Error()
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) captureCmd() tea.Cmd {
	return func() tea.Msg {
		image, err := m.tracker.Capture(context.Background())
		return imageSelectedMsg{image: image, err: err}
	}
}

func (m Model) selectUploadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		image, err := m.tracker.SelectUpload(context.Background(), path)
		return imageSelectedMsg{image: image, err: err}
	}
}

func (m Model) analyzeCmd(k flow.Key, profile trackerdto.ProfileInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.Analyze(context.Background(), profile)
		return analysisDoneMsg{key: k, out: out, err: err}
	}
}

func (m Model) exerciseCmd(profile trackerdto.ProfileInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.RecommendExercise(context.Background(), profile)
		return exerciseDoneMsg{out: out, err: err}
	}
}

func (m Model) summaryCmd() tea.Cmd {
	limit := m.opts.HistoryLimit
	return func() tea.Msg {
		summary, err := m.tracker.Summary(context.Background(), limit)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m Model) exportCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.tracker.Export(context.Background(), text)
		return exportedMsg{out: out, err: err}
	}
}
