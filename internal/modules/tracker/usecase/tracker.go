package usecase

import (
	"context"

	"mealcoach/internal/modules/tracker/domain"
	"mealcoach/internal/modules/tracker/dto"
	trackerin "mealcoach/internal/modules/tracker/port/in"
	"mealcoach/internal/modules/tracker/service"
)

type Interactor struct {
	svc          *service.TrackerService
	historyLimit int
}

func NewInteractor(svc *service.TrackerService, historyLimit int) trackerin.Usecase {
	return &Interactor{svc: svc, historyLimit: historyLimit}
}

func (i *Interactor) SelectUpload(ctx context.Context, path string) (dto.ImageOutput, error) {
	image, err := i.svc.SelectUpload(ctx, path)
	if err != nil {
		return dto.ImageOutput{}, err
	}
	return toImageOutput(image), nil
}

func (i *Interactor) Capture(ctx context.Context) (dto.ImageOutput, error) {
	image, err := i.svc.Capture(ctx)
	if err != nil {
		return dto.ImageOutput{}, err
	}
	return toImageOutput(image), nil
}

func (i *Interactor) Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.AnalysisOutput, error) {
	profile, err := toProfile(input.Profile)
	if err != nil {
		return dto.AnalysisOutput{}, err
	}
	analysis, err := i.svc.Analyze(ctx, profile)
	if err != nil {
		return dto.AnalysisOutput{}, err
	}
	out := dto.AnalysisOutput{
		ImageID:       analysis.ImageID,
		MealType:      string(analysis.MealType),
		Text:          analysis.Advice.Text,
		Failed:        analysis.Advice.Failed,
		Calories:      analysis.Calories,
		Parsed:        analysis.Parsed,
		Verdict:       string(analysis.Verdict),
		Message:       analysis.Verdict.Message(),
		TotalCalories: analysis.TotalCalories,
		DailyLimit:    analysis.DailyLimit,
		Progress:      domain.Progress(analysis.TotalCalories, analysis.DailyLimit),
	}
	if analysis.Record != nil {
		out.Recorded = true
		out.RecordID = analysis.Record.ID
	}
	return out, nil
}

func (i *Interactor) RecommendExercise(ctx context.Context, input dto.ExerciseInput) (dto.ExerciseOutput, error) {
	profile, err := toProfile(input.Profile)
	if err != nil {
		return dto.ExerciseOutput{}, err
	}
	advice, calories, err := i.svc.RecommendExercise(ctx, profile, input.CaloriesToday)
	if err != nil {
		return dto.ExerciseOutput{}, err
	}
	return dto.ExerciseOutput{Text: advice.Text, Failed: advice.Failed, CaloriesToday: calories}, nil
}

func (i *Interactor) Summary(ctx context.Context, limit int) (dto.SummaryOutput, error) {
	if limit <= 0 {
		limit = i.historyLimit
	}
	total, meals, err := i.svc.Summary(ctx, limit)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	history := make([]dto.MealOutput, 0, len(meals))
	for _, meal := range meals {
		history = append(history, dto.MealOutput{
			ID:         meal.ID,
			RecordedAt: meal.RecordedAt,
			MealType:   meal.MealType,
			Calories:   meal.Calories,
			Analysis:   meal.Analysis,
		})
	}
	return dto.SummaryOutput{TotalCalories: total, History: history}, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	report, err := i.svc.Export(ctx, input.Text)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: report.Path, FileName: report.FileName, ContentType: report.ContentType}, nil
}

func toProfile(input dto.ProfileInput) (domain.Profile, error) {
	mealType, err := domain.ParseMealType(input.MealType)
	if err != nil {
		return domain.Profile{}, err
	}
	goal, err := domain.ParseGoal(input.Goal)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		MealType:   mealType,
		DailyLimit: input.DailyLimit,
		Goal:       goal,
		Age:        input.Age,
		WeightKg:   input.WeightKg,
	}, nil
}

func toImageOutput(image domain.Image) dto.ImageOutput {
	return dto.ImageOutput{
		ImageID:      image.ID,
		Name:         image.Name,
		Source:       image.Source,
		DetectedType: image.DetectedType,
		Width:        image.Width,
		Height:       image.Height,
		Bytes:        len(image.Data),
		SelectedAt:   image.SelectedAt,
	}
}
