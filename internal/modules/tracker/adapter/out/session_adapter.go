package out

import (
	"context"

	sessiondto "mealcoach/internal/modules/session/dto"
	sessionin "mealcoach/internal/modules/session/port/in"
	"mealcoach/internal/modules/tracker/domain"
	trackerout "mealcoach/internal/modules/tracker/port/out"
)

type SessionAdapter struct {
	session sessionin.Usecase
}

func NewSessionAdapter(session sessionin.Usecase) trackerout.MealLog {
	return &SessionAdapter{session: session}
}

func (a *SessionAdapter) SetCurrentImage(ctx context.Context, image domain.Image) error {
	return a.session.SetCurrentImage(ctx, sessiondto.ImageInput{
		ID:         image.ID,
		Name:       image.Name,
		Source:     image.Source,
		MIMEType:   image.MIMEType,
		Data:       image.Data,
		SelectedAt: image.SelectedAt,
	})
}

func (a *SessionAdapter) CurrentImage(ctx context.Context) (domain.Image, error) {
	image, err := a.session.CurrentImage(ctx)
	if err != nil {
		return domain.Image{}, err
	}
	return domain.Image{
		ID:         image.ID,
		Name:       image.Name,
		Source:     image.Source,
		MIMEType:   image.MIMEType,
		Data:       image.Data,
		SelectedAt: image.SelectedAt,
	}, nil
}

func (a *SessionAdapter) Append(ctx context.Context, mealType string, calories int, analysis string) (domain.Meal, error) {
	record, err := a.session.AppendMealRecord(ctx, sessiondto.AppendInput{
		MealType: mealType,
		Calories: calories,
		Analysis: analysis,
	})
	if err != nil {
		return domain.Meal{}, err
	}
	return toMeal(record), nil
}

func (a *SessionAdapter) TotalCalories(ctx context.Context) (int, error) {
	return a.session.TotalCalories(ctx)
}

func (a *SessionAdapter) History(ctx context.Context, limit int) ([]domain.Meal, error) {
	records, err := a.session.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	meals := make([]domain.Meal, 0, len(records))
	for _, record := range records {
		meals = append(meals, toMeal(record))
	}
	return meals, nil
}

func toMeal(record sessiondto.RecordOutput) domain.Meal {
	return domain.Meal{
		ID:         record.ID,
		RecordedAt: record.RecordedAt,
		MealType:   record.MealType,
		Calories:   record.Calories,
		Analysis:   record.Analysis,
	}
}
