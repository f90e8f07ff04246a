package out

import (
	"context"

	ingestdto "mealcoach/internal/modules/ingest/dto"
	ingestin "mealcoach/internal/modules/ingest/port/in"
	"mealcoach/internal/modules/tracker/domain"
	trackerout "mealcoach/internal/modules/tracker/port/out"
)

type IngestAdapter struct {
	ingest ingestin.Usecase
}

func NewIngestAdapter(ingest ingestin.Usecase) trackerout.ImageSource {
	return &IngestAdapter{ingest: ingest}
}

func (a *IngestAdapter) Upload(ctx context.Context, path string) (domain.Image, error) {
	image, err := a.ingest.Upload(ctx, ingestdto.UploadInput{Path: path})
	if err != nil {
		return domain.Image{}, err
	}
	return fromIngest(image), nil
}

func (a *IngestAdapter) Capture(ctx context.Context) (domain.Image, error) {
	image, err := a.ingest.Capture(ctx)
	if err != nil {
		return domain.Image{}, err
	}
	return fromIngest(image), nil
}

func fromIngest(image ingestdto.ImageOutput) domain.Image {
	return domain.Image{
		ID:           image.ID,
		Name:         image.Name,
		Source:       image.Source,
		MIMEType:     image.MIMEType,
		DetectedType: image.DetectedType,
		Width:        image.Width,
		Height:       image.Height,
		Data:         image.Data,
		SelectedAt:   image.SelectedAt,
	}
}
