package out

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"mealcoach/internal/modules/report/domain"
	reportout "mealcoach/internal/modules/report/port/out"
)

const (
	fontFamily = "Arial"
	fontSize   = 12
	cellHeight = 10
)

// FPDFRenderer lays out A4 portrait pages with one MultiCell per line.
// Lines wider than the page wrap inside their cell; page breaks are automatic.
type FPDFRenderer struct{}

func NewFPDFRenderer() reportout.Renderer {
	return &FPDFRenderer{}
}

func (r *FPDFRenderer) Render(_ context.Context, doc domain.Document, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.FileName, false)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)
	for _, line := range doc.Lines {
		pdf.MultiCell(0, cellHeight, encodeCP1252(line), "", "L", false)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
