package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	trackerdomain "mealcoach/internal/modules/tracker/domain"
	trackerdto "mealcoach/internal/modules/tracker/dto"
	apperrors "mealcoach/internal/platform/errors"
	"mealcoach/internal/ui/theme"
)

type formField int

const (
	fieldMealType formField = iota
	fieldDailyLimit
	fieldGoal
	fieldAge
	fieldWeight
	fieldCount
)

var fieldLabels = [fieldCount]string{"Meal type", "Daily limit", "Fitness goal", "Age", "Weight"}

// ProfileDefaults seeds the form. Unknown or empty selector values start on
// the placeholder.
type ProfileDefaults struct {
	MealType   string
	Goal       string
	DailyLimit int
	Age        int
	WeightKg   int
}

// ProfileForm is the sidebar: two selectors and three bounded numbers. It
// owns no state beyond what the user sees, and the profile is read back from
// it on every interaction.
type ProfileForm struct {
	meal    int // -1 is the placeholder
	goal    int
	limit   int
	age     int
	weight  int
	field   formField
	focused bool
	width   int
}

func NewProfileForm(d ProfileDefaults) ProfileForm {
	f := ProfileForm{
		meal:   -1,
		goal:   -1,
		limit:  clamp(d.DailyLimit, trackerdomain.MinDailyLimit, trackerdomain.MaxDailyLimit),
		age:    clamp(d.Age, trackerdomain.MinAge, trackerdomain.MaxAge),
		weight: clamp(d.WeightKg, trackerdomain.MinWeightKg, trackerdomain.MaxWeightKg),
		width:  30,
	}
	if m, err := trackerdomain.ParseMealType(d.MealType); err == nil {
		f.meal = indexOf(trackerdomain.MealTypes, m)
	}
	if g, err := trackerdomain.ParseGoal(d.Goal); err == nil {
		f.goal = indexOf(trackerdomain.Goals, g)
	}
	return f
}

func (f *ProfileForm) Focus() { f.focused = true }

func (f *ProfileForm) Blur() { f.focused = false }

func (f ProfileForm) Focused() bool { return f.focused }

func (f *ProfileForm) SetWidth(w int) { f.width = w }

// Update handles keys while the form is focused and reports whether any value
// changed.
func (f ProfileForm) Update(msg tea.Msg) (ProfileForm, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused {
		return f, false
	}
	switch km.String() {
	case "up", "k":
		f.field = (f.field + fieldCount - 1) % fieldCount
	case "down", "j":
		f.field = (f.field + 1) % fieldCount
	case "left", "h":
		return f.step(-1), true
	case "right", "l":
		return f.step(1), true
	case "shift+left", "H":
		return f.step(-10), true
	case "shift+right", "L":
		return f.step(10), true
	}
	return f, false
}

// Set assigns one field by name, as typed in the command palette.
func (f ProfileForm) Set(name, value string) (ProfileForm, error) {
	switch strings.ToLower(name) {
	case "meal":
		m, err := trackerdomain.ParseMealType(value)
		if err != nil {
			return f, err
		}
		f.meal = indexOf(trackerdomain.MealTypes, m)
	case "goal":
		g, err := trackerdomain.ParseGoal(value)
		if err != nil {
			return f, err
		}
		f.goal = indexOf(trackerdomain.Goals, g)
	case "limit":
		n, err := boundedInt(value, "daily limit", trackerdomain.MinDailyLimit, trackerdomain.MaxDailyLimit)
		if err != nil {
			return f, err
		}
		f.limit = n
	case "age":
		n, err := boundedInt(value, "age", trackerdomain.MinAge, trackerdomain.MaxAge)
		if err != nil {
			return f, err
		}
		f.age = n
	case "weight":
		n, err := boundedInt(value, "weight", trackerdomain.MinWeightKg, trackerdomain.MaxWeightKg)
		if err != nil {
			return f, err
		}
		f.weight = n
	default:
		return f, fmt.Errorf("%w: unknown field %q", apperrors.ErrInvalidInput, name)
	}
	return f, nil
}

func (f ProfileForm) Input() trackerdto.ProfileInput {
	p := f.profile()
	return trackerdto.ProfileInput{
		MealType:   string(p.MealType),
		DailyLimit: p.DailyLimit,
		Goal:       string(p.Goal),
		Age:        p.Age,
		WeightKg:   p.WeightKg,
	}
}

func (f ProfileForm) MealType() string { return string(f.profile().MealType) }

func (f ProfileForm) DailyLimit() int { return f.limit }

func (f ProfileForm) Valid() bool { return f.profile().Valid() }

func (f ProfileForm) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Your Profile") + "\n\n")
	for i := formField(0); i < fieldCount; i++ {
		label := fieldLabels[i]
		value := f.valueLabel(i)
		cursor := "  "
		if f.focused && i == f.field {
			cursor = theme.Hot.Render("> ")
			value = theme.Hot.Render("< " + value + " >")
		} else if f.placeholder(i) {
			value = theme.Warning.Render(value)
		}
		sb.WriteString(cursor + theme.Muted.Render(label) + "\n")
		sb.WriteString("  " + value + "\n\n")
	}
	if f.focused {
		sb.WriteString(theme.Muted.Render("↑/↓ field  ←/→ change  esc done"))
	} else {
		sb.WriteString(theme.Muted.Render("p: edit profile"))
	}
	style := theme.Pane
	if f.focused {
		style = theme.PaneActive
	}
	return style.Width(max(f.width-2, 10)).Render(sb.String())
}

func (f ProfileForm) profile() trackerdomain.Profile {
	p := trackerdomain.Profile{DailyLimit: f.limit, Age: f.age, WeightKg: f.weight}
	if f.meal >= 0 {
		p.MealType = trackerdomain.MealTypes[f.meal]
	}
	if f.goal >= 0 {
		p.Goal = trackerdomain.Goals[f.goal]
	}
	return p
}

func (f ProfileForm) step(n int) ProfileForm {
	switch f.field {
	case fieldMealType:
		f.meal = cycle(f.meal, sign(n), len(trackerdomain.MealTypes))
	case fieldGoal:
		f.goal = cycle(f.goal, sign(n), len(trackerdomain.Goals))
	case fieldDailyLimit:
		f.limit = clamp(f.limit+n*trackerdomain.DailyLimitStep, trackerdomain.MinDailyLimit, trackerdomain.MaxDailyLimit)
	case fieldAge:
		f.age = clamp(f.age+n, trackerdomain.MinAge, trackerdomain.MaxAge)
	case fieldWeight:
		f.weight = clamp(f.weight+n, trackerdomain.MinWeightKg, trackerdomain.MaxWeightKg)
	}
	return f
}

func (f ProfileForm) placeholder(field formField) bool {
	return (field == fieldMealType && f.meal < 0) || (field == fieldGoal && f.goal < 0)
}

func (f ProfileForm) valueLabel(field formField) string {
	switch field {
	case fieldMealType:
		if f.meal < 0 {
			return trackerdomain.MealTypePlaceholder
		}
		return string(trackerdomain.MealTypes[f.meal])
	case fieldGoal:
		if f.goal < 0 {
			return trackerdomain.GoalPlaceholder
		}
		return string(trackerdomain.Goals[f.goal])
	case fieldDailyLimit:
		return fmt.Sprintf("%d kcal", f.limit)
	case fieldAge:
		return strconv.Itoa(f.age)
	case fieldWeight:
		return fmt.Sprintf("%d kg", f.weight)
	}
	return ""
}

// cycle walks -1 (placeholder) through n-1 and wraps.
func cycle(i, delta, n int) int {
	span := n + 1
	return ((i+1+delta)%span+span)%span - 1
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}

func boundedInt(value, name string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", apperrors.ErrInvalidInput, name)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s must be %d-%d", apperrors.ErrInvalidInput, name, lo, hi)
	}
	return n, nil
}
