package out

import (
	"context"

	reportdto "mealcoach/internal/modules/report/dto"
	reportin "mealcoach/internal/modules/report/port/in"
	"mealcoach/internal/modules/tracker/domain"
	trackerout "mealcoach/internal/modules/tracker/port/out"
)

type ReportAdapter struct {
	report reportin.Usecase
}

func NewReportAdapter(report reportin.Usecase) trackerout.ReportExporter {
	return &ReportAdapter{report: report}
}

func (a *ReportAdapter) Export(ctx context.Context, text string) (domain.ExportedReport, error) {
	out, err := a.report.Export(ctx, reportdto.ExportInput{Text: text})
	if err != nil {
		return domain.ExportedReport{}, err
	}
	return domain.ExportedReport{Path: out.Path, FileName: out.FileName, ContentType: out.ContentType}, nil
}
