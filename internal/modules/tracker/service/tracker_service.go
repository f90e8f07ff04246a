package service

import (
	"context"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"mealcoach/internal/modules/tracker/domain"
	trackerout "mealcoach/internal/modules/tracker/port/out"
	apperrors "mealcoach/internal/platform/errors"
)

type TrackerService struct {
	images   trackerout.ImageSource
	advisor  trackerout.Advisor
	meals    trackerout.MealLog
	reports  trackerout.ReportExporter
	log      hclog.Logger
	inFlight sync.Mutex
}

func NewTrackerService(images trackerout.ImageSource, advisor trackerout.Advisor, meals trackerout.MealLog, reports trackerout.ReportExporter, log hclog.Logger) *TrackerService {
	return &TrackerService{images: images, advisor: advisor, meals: meals, reports: reports, log: log}
}

func (s *TrackerService) SelectUpload(ctx context.Context, path string) (domain.Image, error) {
	image, err := s.images.Upload(ctx, path)
	if err != nil {
		return domain.Image{}, err
	}
	return image, s.meals.SetCurrentImage(ctx, image)
}

func (s *TrackerService) Capture(ctx context.Context) (domain.Image, error) {
	image, err := s.images.Capture(ctx)
	if err != nil {
		return domain.Image{}, err
	}
	return image, s.meals.SetCurrentImage(ctx, image)
}

// Analyze sends the current image for analysis and records the meal. A failed
// AI call is returned as displayable text and leaves the log untouched.
func (s *TrackerService) Analyze(ctx context.Context, profile domain.Profile) (domain.Analysis, error) {
	if err := profile.Validate(); err != nil {
		s.log.Debug("analysis blocked by validity gate", "reason", err)
		return domain.Analysis{}, err
	}
	if !s.inFlight.TryLock() {
		return domain.Analysis{}, apperrors.ErrAnalysisInFlight
	}
	defer s.inFlight.Unlock()

	image, err := s.meals.CurrentImage(ctx)
	if err != nil {
		return domain.Analysis{}, err
	}

	advice := s.advisor.AnalyzeMeal(ctx, image)
	result := domain.Analysis{
		ImageID:    image.ID,
		MealType:   profile.MealType,
		Advice:     advice,
		DailyLimit: profile.DailyLimit,
	}
	if advice.Failed {
		total, err := s.meals.TotalCalories(ctx)
		if err != nil {
			return domain.Analysis{}, err
		}
		result.TotalCalories = total
		return result, nil
	}

	result.Calories, result.Parsed = domain.ExtractTotalCalories(advice.Text)
	result.Verdict = domain.AssessVerdict(advice.Text)
	if !result.Parsed {
		s.log.Warn("no total calories found in analysis", "image", image.ID)
	}

	record, err := s.meals.Append(ctx, string(profile.MealType), result.Calories, advice.Text)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("record meal: %w", err)
	}
	result.Record = &record

	total, err := s.meals.TotalCalories(ctx)
	if err != nil {
		return domain.Analysis{}, err
	}
	result.TotalCalories = total
	return result, nil
}

// RecommendExercise uses the session total unless caloriesToday is given.
func (s *TrackerService) RecommendExercise(ctx context.Context, profile domain.Profile, caloriesToday *int) (domain.Advice, int, error) {
	if err := profile.Validate(); err != nil {
		s.log.Debug("exercise blocked by validity gate", "reason", err)
		return domain.Advice{}, 0, err
	}
	calories := 0
	if caloriesToday != nil {
		if *caloriesToday < 0 {
			return domain.Advice{}, 0, fmt.Errorf("%w: calories today must be non-negative", apperrors.ErrInvalidInput)
		}
		calories = *caloriesToday
	} else {
		total, err := s.meals.TotalCalories(ctx)
		if err != nil {
			return domain.Advice{}, 0, err
		}
		calories = total
	}
	advice := s.advisor.RecommendExercise(ctx, string(profile.Goal), profile.Age, profile.WeightKg, calories)
	return advice, calories, nil
}

func (s *TrackerService) Summary(ctx context.Context, limit int) (int, []domain.Meal, error) {
	total, err := s.meals.TotalCalories(ctx)
	if err != nil {
		return 0, nil, err
	}
	history, err := s.meals.History(ctx, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, history, nil
}

func (s *TrackerService) Export(ctx context.Context, text string) (domain.ExportedReport, error) {
	return s.reports.Export(ctx, text)
}
