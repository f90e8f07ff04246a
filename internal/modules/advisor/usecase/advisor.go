package usecase

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"mealcoach/internal/modules/advisor/domain"
	"mealcoach/internal/modules/advisor/dto"
	advisorin "mealcoach/internal/modules/advisor/port/in"
	"mealcoach/internal/modules/advisor/service"
)

// Interactor converts every service failure into displayable text so callers
// never have to handle an error from the AI boundary.
type Interactor struct {
	svc *service.AdvisorService
	log hclog.Logger
}

func NewInteractor(svc *service.AdvisorService, log hclog.Logger) advisorin.Usecase {
	return &Interactor{svc: svc, log: log}
}

func (i *Interactor) AnalyzeMeal(ctx context.Context, input dto.AnalyzeInput) dto.AdviceOutput {
	text, err := i.svc.AnalyzeMeal(ctx, input.MIMEType, input.ImageData)
	if err != nil {
		i.log.Error("error generating response", "image", input.ImageID, "error", err)
		return dto.AdviceOutput{Text: domain.FailureText(domain.AnalysisErrorPrefix, err), Failed: true}
	}
	return dto.AdviceOutput{Text: text}
}

func (i *Interactor) RecommendExercise(ctx context.Context, input dto.ExerciseInput) dto.AdviceOutput {
	text, err := i.svc.RecommendExercise(ctx, input.Goal, input.Age, input.WeightKg, input.CaloriesToday)
	if err != nil {
		i.log.Error("error generating exercise recommendations", "error", err)
		return dto.AdviceOutput{Text: domain.FailureText(domain.ExerciseErrorPrefix, err), Failed: true}
	}
	return dto.AdviceOutput{Text: text}
}
