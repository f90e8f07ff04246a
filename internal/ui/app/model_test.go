package app_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	trackerdto "mealcoach/internal/modules/tracker/dto"
	"mealcoach/internal/ui/app"
	"mealcoach/internal/ui/components"
	historyview "mealcoach/internal/ui/views/history"
)

type fakeTracker struct {
	mu        sync.Mutex
	analyzed  []trackerdto.ProfileInput
	exercised int
	exported  []string
	meals     []trackerdto.MealOutput
	total     int
}

func (f *fakeTracker) SelectUpload(_ context.Context, path string) (trackerdto.ImageOutput, error) {
	return trackerdto.ImageOutput{ImageID: "img-" + path, Name: path, Source: "upload"}, nil
}

func (f *fakeTracker) Capture(context.Context) (trackerdto.ImageOutput, error) {
	return trackerdto.ImageOutput{ImageID: "cam-1", Name: "camera.jpg", Source: "camera"}, nil
}

func (f *fakeTracker) Analyze(_ context.Context, profile trackerdto.ProfileInput) (trackerdto.AnalysisOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyzed = append(f.analyzed, profile)
	f.total += 250
	f.meals = append([]trackerdto.MealOutput{{
		ID:         "meal-1",
		RecordedAt: time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		MealType:   profile.MealType,
		Calories:   250,
		Analysis:   "Total Calories: 250 kcal",
	}}, f.meals...)
	return trackerdto.AnalysisOutput{
		ImageID:       "cam-1",
		MealType:      profile.MealType,
		Text:          "Eggs - 150 kcal\nToast - 100 kcal\nTotal Calories: 250 kcal\nHealthy",
		Calories:      250,
		Parsed:        true,
		Verdict:       "healthy",
		Message:       "This meal looks healthy! Keep it up!",
		Recorded:      true,
		RecordID:      "meal-1",
		TotalCalories: f.total,
		DailyLimit:    profile.DailyLimit,
	}, nil
}

func (f *fakeTracker) RecommendExercise(context.Context, trackerdto.ProfileInput) (trackerdto.ExerciseOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exercised++
	return trackerdto.ExerciseOutput{Text: "30 minutes of brisk walking", CaloriesToday: f.total}, nil
}

func (f *fakeTracker) Summary(context.Context, int) (trackerdto.SummaryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return trackerdto.SummaryOutput{TotalCalories: f.total, History: append([]trackerdto.MealOutput(nil), f.meals...)}, nil
}

func (f *fakeTracker) Export(_ context.Context, text string) (trackerdto.ExportOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exported = append(f.exported, text)
	return trackerdto.ExportOutput{Path: "/tmp/meal_report_20260314_080000.pdf", FileName: "meal_report_20260314_080000.pdf", ContentType: "application/pdf"}, nil
}

// drive feeds msg to the model and runs every resulting command to
// completion. Spinner ticks are dropped so loading states do not loop.
func drive(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	m, cmd := m.Update(msg)
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatalf("command queue did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch out := next().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, out...)
		default:
			var c tea.Cmd
			m, c = m.Update(out)
			queue = append(queue, c)
		}
	}
	return m
}

func keys(t *testing.T, m tea.Model, names ...string) tea.Model {
	t.Helper()
	for _, name := range names {
		var msg tea.KeyMsg
		switch name {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
		}
		m = drive(t, m, msg)
	}
	return m
}

// plain renders the model without styling so assertions see the words.
func plain(m tea.Model) string {
	return ansi.Strip(m.View())
}

func newModel(t *testing.T, tracker *fakeTracker) tea.Model {
	t.Helper()
	m := app.NewModel(tracker, app.Options{
		Profile:      components.ProfileDefaults{DailyLimit: 2000, Age: 30, WeightKg: 70},
		HistoryLimit: 10,
		UploadDir:    t.TempDir(),
		Extensions:   []string{".jpg", ".jpeg", ".png"},
	})
	return drive(t, m, tea.WindowSizeMsg{Width: 140, Height: 48})
}

func TestCaptureWithIncompleteProfileWarnsWithoutCalling(t *testing.T) {
	t.Parallel()
	tracker := &fakeTracker{}
	m := keys(t, newModel(t, tracker), "c")

	if len(tracker.analyzed) != 0 {
		t.Fatalf("expected no analysis, got %d", len(tracker.analyzed))
	}
	if !strings.Contains(plain(m), app.AnalysisInputsMessage) {
		t.Fatalf("view should warn about incomplete inputs:\n%s", plain(m))
	}
}

func TestCompletingProfileAnalyzesOnce(t *testing.T) {
	t.Parallel()
	tracker := &fakeTracker{}
	m := keys(t, newModel(t, tracker), "c")

	// meal type is the first field, goal the third.
	m = keys(t, m, "p", "right", "down", "down", "right")
	if len(tracker.analyzed) != 1 {
		t.Fatalf("expected one analysis, got %d", len(tracker.analyzed))
	}
	got := tracker.analyzed[0]
	if got.MealType != "Breakfast" || got.Goal != "Weight Loss" || got.Age != 30 || got.WeightKg != 70 {
		t.Fatalf("unexpected profile: %+v", got)
	}

	// Age edits keep the selection key, so nothing is re-sent.
	m = keys(t, m, "down", "right", "right")
	if len(tracker.analyzed) != 1 {
		t.Fatalf("unrelated edits re-analyzed: %d calls", len(tracker.analyzed))
	}

	view := plain(keys(t, m, "esc"))
	for _, want := range []string{"Total Calories Today: 250 / 2000 kcal", "This meal looks healthy! Keep it up!"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRetryReissuesAnalysis(t *testing.T) {
	t.Parallel()
	tracker := &fakeTracker{}
	m := keys(t, newModel(t, tracker), "c", "p", "right", "down", "down", "right", "esc")
	keys(t, m, "r")
	if len(tracker.analyzed) != 2 {
		t.Fatalf("expected retry to analyze again, got %d calls", len(tracker.analyzed))
	}
}

func TestExportSendsAnalysisText(t *testing.T) {
	t.Parallel()
	tracker := &fakeTracker{}
	m := keys(t, newModel(t, tracker), "d")
	if len(tracker.exported) != 0 {
		t.Fatalf("export without analysis should be refused")
	}

	m = keys(t, m, "c", "p", "right", "down", "down", "right", "esc", "d")
	if len(tracker.exported) != 1 || !strings.Contains(tracker.exported[0], "Total Calories: 250") {
		t.Fatalf("unexpected exports: %q", tracker.exported)
	}
	if !strings.Contains(plain(m), "meal_report_20260314_080000.pdf") {
		t.Fatalf("status should show the report path:\n%s", plain(m))
	}
}

func TestExerciseRequiresCompleteProfile(t *testing.T) {
	t.Parallel()
	tracker := &fakeTracker{}
	m := keys(t, newModel(t, tracker), "tab", "tab", "enter")
	if tracker.exercised != 0 {
		t.Fatalf("exercise should not be requested with an incomplete profile")
	}
	if !strings.Contains(plain(m), app.ExerciseInputsMessage) {
		t.Fatalf("view should warn about incomplete inputs:\n%s", plain(m))
	}

	m = keys(t, m, "p", "right", "down", "down", "right", "esc", "enter")
	if tracker.exercised != 1 {
		t.Fatalf("expected one exercise request, got %d", tracker.exercised)
	}
	if !strings.Contains(plain(m), "brisk walking") {
		t.Fatalf("view should show recommendations:\n%s", plain(m))
	}
	if len(tracker.analyzed) != 0 {
		t.Fatalf("exercise must not analyze meals")
	}
}

func TestHistoryShowsEmptyMessage(t *testing.T) {
	t.Parallel()
	m := keys(t, newModel(t, &fakeTracker{}), "tab", "tab", "tab")
	if !strings.Contains(plain(m), historyview.EmptyMessage) {
		t.Fatalf("history tab should show the empty message:\n%s", plain(m))
	}
}
