package in

import (
	"context"

	"mealcoach/internal/modules/tracker/dto"
	trackerin "mealcoach/internal/modules/tracker/port/in"
)

type TUIHandler struct {
	usecase trackerin.Usecase
}

func NewTUIHandler(usecase trackerin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) SelectUpload(ctx context.Context, path string) (dto.ImageOutput, error) {
	return h.usecase.SelectUpload(ctx, path)
}

func (h TUIHandler) Capture(ctx context.Context) (dto.ImageOutput, error) {
	return h.usecase.Capture(ctx)
}

func (h TUIHandler) Analyze(ctx context.Context, profile dto.ProfileInput) (dto.AnalysisOutput, error) {
	return h.usecase.Analyze(ctx, dto.AnalyzeInput{Profile: profile})
}

func (h TUIHandler) RecommendExercise(ctx context.Context, profile dto.ProfileInput) (dto.ExerciseOutput, error) {
	return h.usecase.RecommendExercise(ctx, dto.ExerciseInput{Profile: profile})
}

func (h TUIHandler) Summary(ctx context.Context, limit int) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, limit)
}

func (h TUIHandler) Export(ctx context.Context, text string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Text: text})
}
