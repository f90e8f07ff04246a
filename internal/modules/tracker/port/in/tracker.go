package in

import (
	"context"

	"mealcoach/internal/modules/tracker/dto"
)

type Usecase interface {
	SelectUpload(ctx context.Context, path string) (dto.ImageOutput, error)
	Capture(ctx context.Context) (dto.ImageOutput, error)
	Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.AnalysisOutput, error)
	RecommendExercise(ctx context.Context, input dto.ExerciseInput) (dto.ExerciseOutput, error)
	Summary(ctx context.Context, limit int) (dto.SummaryOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
