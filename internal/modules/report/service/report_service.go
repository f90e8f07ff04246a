package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"mealcoach/internal/modules/report/domain"
	reportout "mealcoach/internal/modules/report/port/out"
	"mealcoach/internal/platform/clock"
	apperrors "mealcoach/internal/platform/errors"
)

type ReportService struct {
	clock    clock.Clock
	renderer reportout.Renderer
	reader   reportout.DocumentReader
	dir      string
	log      hclog.Logger
}

func NewReportService(clock clock.Clock, renderer reportout.Renderer, reader reportout.DocumentReader, dir string, log hclog.Logger) *ReportService {
	return &ReportService{clock: clock, renderer: renderer, reader: reader, dir: dir, log: log}
}

func (s *ReportService) Export(ctx context.Context, text string) (domain.Document, string, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Document{}, "", fmt.Errorf("%w: nothing to export", apperrors.ErrInvalidInput)
	}
	doc := domain.NewDocument(s.clock.Now(), text)
	dir := s.dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.Document{}, "", s.fail(fmt.Errorf("create export dir: %w", err))
	}
	path := filepath.Join(dir, doc.FileName)
	if err := s.renderer.Render(ctx, doc, path); err != nil {
		return domain.Document{}, "", s.fail(err)
	}
	s.log.Info("report exported", "path", path, "lines", len(doc.Lines))
	return doc, path, nil
}

func (s *ReportService) Read(ctx context.Context, path string) ([]string, int, error) {
	if strings.TrimSpace(path) == "" {
		return nil, 0, fmt.Errorf("%w: report path is required", apperrors.ErrInvalidInput)
	}
	if s.reader == nil {
		return nil, 0, fmt.Errorf("document reader is not configured")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: report %s", apperrors.ErrNotFound, path)
	}
	return s.reader.ReadLines(ctx, path)
}

func (s *ReportService) fail(err error) error {
	s.log.Error("export failed", "error", err)
	return fmt.Errorf("%w: %w", apperrors.ErrExport, err)
}
