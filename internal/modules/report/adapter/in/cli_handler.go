package in

import (
	"context"

	"mealcoach/internal/modules/report/dto"
	reportin "mealcoach/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, text string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Text: text})
}

func (h CLIHandler) Read(ctx context.Context, path string) (dto.ReadOutput, error) {
	return h.usecase.Read(ctx, dto.ReadInput{Path: path})
}
