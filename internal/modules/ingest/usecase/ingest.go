package usecase

import (
	"context"

	"mealcoach/internal/modules/ingest/domain"
	"mealcoach/internal/modules/ingest/dto"
	ingestin "mealcoach/internal/modules/ingest/port/in"
	"mealcoach/internal/modules/ingest/service"
)

type Interactor struct {
	svc *service.IngestService
}

func NewInteractor(svc *service.IngestService) ingestin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Upload(ctx context.Context, input dto.UploadInput) (dto.ImageOutput, error) {
	img, err := i.svc.LoadFile(ctx, input.Path)
	if err != nil {
		return dto.ImageOutput{}, err
	}
	return toOutput(img), nil
}

func (i *Interactor) Capture(ctx context.Context) (dto.ImageOutput, error) {
	img, err := i.svc.Capture(ctx)
	if err != nil {
		return dto.ImageOutput{}, err
	}
	return toOutput(img), nil
}

func (i *Interactor) Normalize(_ context.Context, input dto.NormalizeInput) (dto.ImageOutput, error) {
	source := domain.Source(input.Source)
	if source == "" {
		source = domain.SourceUpload
	}
	img, err := i.svc.Normalize(input.Data, input.Name, source)
	if err != nil {
		return dto.ImageOutput{}, err
	}
	return toOutput(img), nil
}

func toOutput(img domain.MealImage) dto.ImageOutput {
	return dto.ImageOutput{
		ID:           img.ID,
		Name:         img.Name,
		Source:       string(img.Source),
		MIMEType:     img.MIMEType,
		DetectedType: img.DetectedType,
		Width:        img.Width,
		Height:       img.Height,
		Data:         img.Data,
		SelectedAt:   img.SelectedAt,
	}
}
