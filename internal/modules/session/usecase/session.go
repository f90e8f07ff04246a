package usecase

import (
	"context"

	"mealcoach/internal/modules/session/domain"
	sessiondto "mealcoach/internal/modules/session/dto"
	sessionin "mealcoach/internal/modules/session/port/in"
	"mealcoach/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SetCurrentImage(ctx context.Context, input sessiondto.ImageInput) error {
	return i.svc.SetCurrentImage(ctx, domain.SelectedImage{
		ID:         input.ID,
		Name:       input.Name,
		Source:     input.Source,
		MIMEType:   input.MIMEType,
		Data:       input.Data,
		SelectedAt: input.SelectedAt,
	})
}

func (i *Interactor) CurrentImage(ctx context.Context) (sessiondto.ImageOutput, error) {
	image, err := i.svc.CurrentImage(ctx)
	if err != nil {
		return sessiondto.ImageOutput{}, err
	}
	return sessiondto.ImageOutput{
		ID:         image.ID,
		Name:       image.Name,
		Source:     image.Source,
		MIMEType:   image.MIMEType,
		Data:       image.Data,
		SelectedAt: image.SelectedAt,
	}, nil
}

func (i *Interactor) AppendMealRecord(ctx context.Context, input sessiondto.AppendInput) (sessiondto.RecordOutput, error) {
	record, err := i.svc.AppendMealRecord(ctx, input.MealType, input.Calories, input.Analysis)
	if err != nil {
		return sessiondto.RecordOutput{}, err
	}
	return toRecordOutput(record), nil
}

func (i *Interactor) TotalCalories(ctx context.Context) (int, error) {
	return i.svc.TotalCalories(ctx)
}

func (i *Interactor) History(ctx context.Context, limit int) ([]sessiondto.RecordOutput, error) {
	records, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.RecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toRecordOutput(record))
	}
	return out, nil
}

func (i *Interactor) Summary(ctx context.Context) (sessiondto.SummaryOutput, error) {
	state, err := i.svc.Snapshot(ctx)
	if err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	out := sessiondto.SummaryOutput{
		SessionID:     state.ID,
		StartedAt:     state.StartedAt,
		TotalCalories: state.TotalCalories,
		MealCount:     len(state.Records),
	}
	if state.Image != nil {
		out.HasImage = true
		out.ImageName = state.Image.Name
	}
	return out, nil
}

func toRecordOutput(record domain.MealRecord) sessiondto.RecordOutput {
	return sessiondto.RecordOutput{
		ID:         record.ID,
		RecordedAt: record.RecordedAt,
		MealType:   record.MealType,
		Calories:   record.Calories,
		Analysis:   record.Analysis,
	}
}
