package in

import (
	"context"

	"mealcoach/internal/modules/session/dto"
)

type Usecase interface {
	SetCurrentImage(ctx context.Context, input dto.ImageInput) error
	CurrentImage(ctx context.Context) (dto.ImageOutput, error)
	AppendMealRecord(ctx context.Context, input dto.AppendInput) (dto.RecordOutput, error)
	TotalCalories(ctx context.Context) (int, error)
	History(ctx context.Context, limit int) ([]dto.RecordOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}
