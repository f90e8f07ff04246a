package domain_test

import (
	"errors"
	"strings"
	"testing"

	"mealcoach/internal/modules/tracker/domain"
	apperrors "mealcoach/internal/platform/errors"
)

func validProfile() domain.Profile {
	return domain.Profile{
		MealType:   domain.Breakfast,
		DailyLimit: 2000,
		Goal:       domain.WeightLoss,
		Age:        30,
		WeightKg:   70,
	}
}

func TestProfileValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		mutate  func(*domain.Profile)
		problem string
	}{
		{name: "valid"},
		{name: "meal type unset", mutate: func(p *domain.Profile) { p.MealType = domain.MealTypeUnset }, problem: "meal type"},
		{name: "goal unset", mutate: func(p *domain.Profile) { p.Goal = domain.GoalUnset }, problem: "fitness goal"},
		{name: "limit low", mutate: func(p *domain.Profile) { p.DailyLimit = 450 }, problem: "daily limit"},
		{name: "limit high", mutate: func(p *domain.Profile) { p.DailyLimit = 5050 }, problem: "daily limit"},
		{name: "age low", mutate: func(p *domain.Profile) { p.Age = 9 }, problem: "age"},
		{name: "age high", mutate: func(p *domain.Profile) { p.Age = 101 }, problem: "age"},
		{name: "weight low", mutate: func(p *domain.Profile) { p.WeightKg = 29 }, problem: "weight"},
		{name: "weight high", mutate: func(p *domain.Profile) { p.WeightKg = 201 }, problem: "weight"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := validProfile()
			if tc.mutate != nil {
				tc.mutate(&p)
			}
			err := p.Validate()
			if tc.problem == "" {
				if err != nil || !p.Valid() {
					t.Fatalf("expected valid profile, got %v", err)
				}
				return
			}
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.problem) {
				t.Fatalf("error %q does not mention %q", err, tc.problem)
			}
		})
	}
}

func TestProfileBoundsAreInclusive(t *testing.T) {
	t.Parallel()
	p := validProfile()
	p.DailyLimit, p.Age, p.WeightKg = domain.MinDailyLimit, domain.MinAge, domain.MinWeightKg
	if err := p.Validate(); err != nil {
		t.Fatalf("lower bounds: %v", err)
	}
	p.DailyLimit, p.Age, p.WeightKg = domain.MaxDailyLimit, domain.MaxAge, domain.MaxWeightKg
	if err := p.Validate(); err != nil {
		t.Fatalf("upper bounds: %v", err)
	}
}

func TestParseMealTypeAndGoal(t *testing.T) {
	t.Parallel()
	if m, err := domain.ParseMealType("lunch"); err != nil || m != domain.Lunch {
		t.Fatalf("ParseMealType(lunch) = %q, %v", m, err)
	}
	if m, err := domain.ParseMealType(domain.MealTypePlaceholder); err != nil || m != domain.MealTypeUnset {
		t.Fatalf("placeholder should parse as unset, got %q, %v", m, err)
	}
	if _, err := domain.ParseMealType("brunch"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for brunch, got %v", err)
	}
	if g, err := domain.ParseGoal("weight-loss"); err != nil || g != domain.WeightLoss {
		t.Fatalf("ParseGoal(weight-loss) = %q, %v", g, err)
	}
	if g, err := domain.ParseGoal(""); err != nil || g != domain.GoalUnset {
		t.Fatalf("empty goal should parse as unset, got %q, %v", g, err)
	}
	if _, err := domain.ParseGoal("bulk"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bulk, got %v", err)
	}
}
