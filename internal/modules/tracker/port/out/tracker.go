package out

import (
	"context"

	"mealcoach/internal/modules/tracker/domain"
)

type ImageSource interface {
	Upload(ctx context.Context, path string) (domain.Image, error)
	Capture(ctx context.Context) (domain.Image, error)
}

// Advisor never fails; service errors come back as Advice with Failed set.
type Advisor interface {
	AnalyzeMeal(ctx context.Context, image domain.Image) domain.Advice
	RecommendExercise(ctx context.Context, goal string, age, weightKg, caloriesToday int) domain.Advice
}

type MealLog interface {
	SetCurrentImage(ctx context.Context, image domain.Image) error
	CurrentImage(ctx context.Context) (domain.Image, error)
	Append(ctx context.Context, mealType string, calories int, analysis string) (domain.Meal, error)
	TotalCalories(ctx context.Context) (int, error)
	History(ctx context.Context, limit int) ([]domain.Meal, error)
}

type ReportExporter interface {
	Export(ctx context.Context, text string) (domain.ExportedReport, error)
}
