package in

import (
	"context"

	"mealcoach/internal/modules/tracker/dto"
	trackerin "mealcoach/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// AnalyzeFile selects the image at path and analyzes it in one step.
func (h CLIHandler) AnalyzeFile(ctx context.Context, path string, profile dto.ProfileInput) (dto.ImageOutput, dto.AnalysisOutput, error) {
	image, err := h.usecase.SelectUpload(ctx, path)
	if err != nil {
		return dto.ImageOutput{}, dto.AnalysisOutput{}, err
	}
	analysis, err := h.usecase.Analyze(ctx, dto.AnalyzeInput{Profile: profile})
	return image, analysis, err
}

func (h CLIHandler) RecommendExercise(ctx context.Context, profile dto.ProfileInput, caloriesToday *int) (dto.ExerciseOutput, error) {
	return h.usecase.RecommendExercise(ctx, dto.ExerciseInput{Profile: profile, CaloriesToday: caloriesToday})
}

func (h CLIHandler) Export(ctx context.Context, text string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Text: text})
}
