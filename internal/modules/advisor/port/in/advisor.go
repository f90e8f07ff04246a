package in

import (
	"context"

	"mealcoach/internal/modules/advisor/dto"
)

type Usecase interface {
	AnalyzeMeal(ctx context.Context, input dto.AnalyzeInput) dto.AdviceOutput
	RecommendExercise(ctx context.Context, input dto.ExerciseInput) dto.AdviceOutput
}
