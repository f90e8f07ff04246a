package in

import (
	"context"

	ingestdto "mealcoach/internal/modules/ingest/dto"
	ingestin "mealcoach/internal/modules/ingest/port/in"
)

type CLIHandler struct {
	usecase ingestin.Usecase
}

func NewCLIHandler(usecase ingestin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Upload(ctx context.Context, path string) (ingestdto.ImageOutput, error) {
	return h.usecase.Upload(ctx, ingestdto.UploadInput{Path: path})
}

func (h CLIHandler) Capture(ctx context.Context) (ingestdto.ImageOutput, error) {
	return h.usecase.Capture(ctx)
}
