package in

import (
	"context"

	"mealcoach/internal/modules/report/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Read(ctx context.Context, input dto.ReadInput) (dto.ReadOutput, error)
}
