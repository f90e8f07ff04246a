package out

import (
	"context"

	advisordto "mealcoach/internal/modules/advisor/dto"
	advisorin "mealcoach/internal/modules/advisor/port/in"
	"mealcoach/internal/modules/tracker/domain"
	trackerout "mealcoach/internal/modules/tracker/port/out"
)

type AdvisorAdapter struct {
	advisor advisorin.Usecase
}

func NewAdvisorAdapter(advisor advisorin.Usecase) trackerout.Advisor {
	return &AdvisorAdapter{advisor: advisor}
}

func (a *AdvisorAdapter) AnalyzeMeal(ctx context.Context, image domain.Image) domain.Advice {
	out := a.advisor.AnalyzeMeal(ctx, advisordto.AnalyzeInput{
		ImageID:   image.ID,
		MIMEType:  image.MIMEType,
		ImageData: image.Data,
	})
	return domain.Advice{Text: out.Text, Failed: out.Failed}
}

func (a *AdvisorAdapter) RecommendExercise(ctx context.Context, goal string, age, weightKg, caloriesToday int) domain.Advice {
	out := a.advisor.RecommendExercise(ctx, advisordto.ExerciseInput{
		Goal:          goal,
		Age:           age,
		WeightKg:      weightKg,
		CaloriesToday: caloriesToday,
	})
	return domain.Advice{Text: out.Text, Failed: out.Failed}
}
