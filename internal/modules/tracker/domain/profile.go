package domain

import (
	"fmt"
	"strings"

	apperrors "mealcoach/internal/platform/errors"
)

type MealType string

const (
	MealTypeUnset MealType = ""
	Breakfast     MealType = "Breakfast"
	Lunch         MealType = "Lunch"
	Dinner        MealType = "Dinner"
	Snack         MealType = "Snack"

	MealTypePlaceholder = "Select Meal Type"
)

var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

type Goal string

const (
	GoalUnset          Goal = ""
	WeightLoss         Goal = "Weight Loss"
	MuscleGain         Goal = "Muscle Gain"
	MaintainFitness    Goal = "Maintain Fitness"
	ImproveFlexibility Goal = "Improve Flexibility"

	GoalPlaceholder = "Select Your Goal"
)

var Goals = []Goal{WeightLoss, MuscleGain, MaintainFitness, ImproveFlexibility}

const (
	MinDailyLimit  = 500
	MaxDailyLimit  = 5000
	DailyLimitStep = 50
	MinAge         = 10
	MaxAge         = 100
	MinWeightKg    = 30
	MaxWeightKg    = 200
)

// Profile is re-read from the form on every interaction and never stored.
type Profile struct {
	MealType   MealType
	DailyLimit int
	Goal       Goal
	Age        int
	WeightKg   int
}

// Validate is the gate in front of every AI call.
func (p Profile) Validate() error {
	var problems []string
	if !validMealType(p.MealType) {
		problems = append(problems, "meal type is not selected")
	}
	if !validGoal(p.Goal) {
		problems = append(problems, "fitness goal is not selected")
	}
	if p.DailyLimit < MinDailyLimit || p.DailyLimit > MaxDailyLimit {
		problems = append(problems, fmt.Sprintf("daily limit must be %d-%d kcal", MinDailyLimit, MaxDailyLimit))
	}
	if p.Age < MinAge || p.Age > MaxAge {
		problems = append(problems, fmt.Sprintf("age must be %d-%d", MinAge, MaxAge))
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		problems = append(problems, fmt.Sprintf("weight must be %d-%d kg", MinWeightKg, MaxWeightKg))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

func (p Profile) Valid() bool { return p.Validate() == nil }

// ParseMealType accepts any casing; the empty string and the placeholder
// both mean unset.
func ParseMealType(s string) (MealType, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, MealTypePlaceholder) {
		return MealTypeUnset, nil
	}
	for _, m := range MealTypes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return MealTypeUnset, fmt.Errorf("%w: unknown meal type %q", apperrors.ErrInvalidInput, s)
}

// ParseGoal accepts any casing and also hyphenated forms such as weight-loss.
func ParseGoal(s string) (Goal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "-", " "))
	if s == "" || strings.EqualFold(s, GoalPlaceholder) {
		return GoalUnset, nil
	}
	for _, g := range Goals {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}
	return GoalUnset, fmt.Errorf("%w: unknown fitness goal %q", apperrors.ErrInvalidInput, s)
}

func validMealType(m MealType) bool {
	for _, known := range MealTypes {
		if m == known {
			return true
		}
	}
	return false
}

func validGoal(g Goal) bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}
