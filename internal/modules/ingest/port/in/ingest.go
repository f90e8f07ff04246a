package in

import (
	"context"

	"mealcoach/internal/modules/ingest/dto"
)

type Usecase interface {
	Upload(ctx context.Context, input dto.UploadInput) (dto.ImageOutput, error)
	Capture(ctx context.Context) (dto.ImageOutput, error)
	Normalize(ctx context.Context, input dto.NormalizeInput) (dto.ImageOutput, error)
}
