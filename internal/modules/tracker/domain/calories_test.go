package domain_test

import (
	"testing"

	"mealcoach/internal/modules/tracker/domain"
)

func TestExtractTotalCalories(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		text   string
		want   int
		parsed bool
	}{
		{name: "labelled", text: "Eggs - 150 kcal\nToast - 100 kcal\nTotal Calories: 250 kcal\nHealthy", want: 250, parsed: true},
		{name: "case insensitive", text: "TOTAL CALORIES = 830", want: 830, parsed: true},
		{name: "words between", text: "Total estimated calories for this plate: roughly 640", want: 640, parsed: true},
		{name: "first digit run only", text: "Total Calories: 1200-1400 kcal", want: 1200, parsed: true},
		{name: "digits before calories stop the match", text: "Total of 3 items, calories unknown", want: 0, parsed: false},
		{name: "no total", text: "Unhealthy", want: 0, parsed: false},
		{name: "empty", text: "", want: 0, parsed: false},
		{name: "overflow", text: "Total Calories: 99999999999999999999999", want: 0, parsed: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, parsed := domain.ExtractTotalCalories(tc.text)
			if got != tc.want || parsed != tc.parsed {
				t.Fatalf("ExtractTotalCalories(%q) = %d, %v; want %d, %v", tc.text, got, parsed, tc.want, tc.parsed)
			}
		})
	}
}

func TestAssessVerdict(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.Verdict{
		"Overall this meal is Healthy.":    domain.VerdictHealthy,
		"Unhealthy":                        domain.VerdictUnhealthy,
		"healthy fats but unhealthy sugar": domain.VerdictUnhealthy,
		"Total Calories: 400":              domain.VerdictUnknown,
	}
	for text, want := range cases {
		if got := domain.AssessVerdict(text); got != want {
			t.Fatalf("AssessVerdict(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestProgressIsClamped(t *testing.T) {
	t.Parallel()
	cases := []struct {
		total, limit int
		want         float64
	}{
		{total: 0, limit: 2000, want: 0},
		{total: 500, limit: 2000, want: 0.25},
		{total: 2500, limit: 2000, want: 1},
		{total: 100, limit: 0, want: 0},
	}
	for _, tc := range cases {
		if got := domain.Progress(tc.total, tc.limit); got != tc.want {
			t.Fatalf("Progress(%d, %d) = %v, want %v", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestVerdictMessage(t *testing.T) {
	t.Parallel()
	if got := domain.VerdictHealthy.Message(); got != "This meal looks healthy! Keep it up!" {
		t.Fatalf("healthy message = %q", got)
	}
	if got := domain.VerdictUnhealthy.Message(); got != "This meal may be unhealthy. Consider the suggestions above." {
		t.Fatalf("unhealthy message = %q", got)
	}
	if got := domain.VerdictUnknown.Message(); got != "" {
		t.Fatalf("unknown message = %q", got)
	}
}
