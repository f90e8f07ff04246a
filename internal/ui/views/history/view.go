package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	trackerdto "mealcoach/internal/modules/tracker/dto"
	"mealcoach/internal/ui/theme"
)

const (
	EmptyMessage    = "No meals logged yet. Capture or upload a meal image to start!"
	timestampLayout = "2006-01-02 15:04:05"
)

type mealItem struct {
	n    int
	meal trackerdto.MealOutput
}

func (i mealItem) Title() string {
	return fmt.Sprintf("%d. [%s] %s - %d kcal", i.n, i.meal.RecordedAt.Format(timestampLayout), i.meal.MealType, i.meal.Calories)
}
func (i mealItem) Description() string { return firstLine(i.meal.Analysis) }
func (i mealItem) FilterValue() string { return i.meal.MealType }

// Model lists recent meals, most recent first, with the selected meal's
// analysis expanded beside the list.
type Model struct {
	list     list.Model
	detail   viewport.Model
	renderer *glamour.TermRenderer
	count    int
	width    int
	height   int
}

func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Violet).BorderForeground(theme.Violet)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Orchid).BorderForeground(theme.Violet)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Today's Meals"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(0, 1)

	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))
	return Model{list: l, detail: vp, renderer: r}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sz.Width
		m.height = sz.Height
		m.resize()
	}

	prev := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prev {
		m.showSelected()
	}

	var vCmd tea.Cmd
	m.detail, vCmd = m.detail.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

// SetMeals replaces the list; meals arrive most recent first.
func (m *Model) SetMeals(total int, meals []trackerdto.MealOutput) tea.Cmd {
	m.list.Title = fmt.Sprintf("Today's Meals  %d kcal", total)
	m.count = len(meals)
	items := make([]list.Item, len(meals))
	for i, meal := range meals {
		items[i] = mealItem{n: i + 1, meal: meal}
	}
	cmd := m.list.SetItems(items)
	m.list.Select(0)
	m.showSelected()
	return cmd
}

func (m Model) View() string {
	if m.count == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render(EmptyMessage))
	}
	listW := m.width / 2
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(max(m.width-listW-2, 1)).
		Height(max(m.height-2, 1)).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width / 2
	m.list.SetSize(listW, m.height)
	m.detail.Width = max(m.width-listW-4, 1)
	m.detail.Height = max(m.height-4, 1)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(m.detail.Width-2, 20)),
	); err == nil {
		m.renderer = r
	}
	m.showSelected()
}

func (m *Model) showSelected() {
	item, ok := m.list.SelectedItem().(mealItem)
	if !ok {
		m.detail.SetContent("")
		return
	}
	content := item.meal.Analysis
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.detail.SetContent(theme.Title.Render(item.Title()) + "\n\n" + content)
	m.detail.GotoTop()
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
