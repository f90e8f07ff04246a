package usecase

import (
	"context"

	"mealcoach/internal/modules/report/domain"
	"mealcoach/internal/modules/report/dto"
	reportin "mealcoach/internal/modules/report/port/in"
	"mealcoach/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	doc, path, err := i.svc.Export(ctx, input.Text)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{
		Path:        path,
		FileName:    doc.FileName,
		ContentType: domain.ContentType,
		Lines:       len(doc.Lines),
	}, nil
}

func (i *Interactor) Read(ctx context.Context, input dto.ReadInput) (dto.ReadOutput, error) {
	lines, pages, err := i.svc.Read(ctx, input.Path)
	if err != nil {
		return dto.ReadOutput{}, err
	}
	return dto.ReadOutput{Path: input.Path, Pages: pages, Lines: lines}, nil
}
