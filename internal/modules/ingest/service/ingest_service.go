package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path/filepath"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"mealcoach/internal/modules/ingest/domain"
	ingestout "mealcoach/internal/modules/ingest/port/out"
	"mealcoach/internal/platform/clock"
	apperrors "mealcoach/internal/platform/errors"
	"mealcoach/internal/platform/id"
)

type IngestService struct {
	clock  clock.Clock
	idGen  id.Generator
	files  ingestout.FileLoader
	camera ingestout.Camera
	log    hclog.Logger
}

func NewIngestService(clock clock.Clock, idGen id.Generator, files ingestout.FileLoader, camera ingestout.Camera, log hclog.Logger) *IngestService {
	return &IngestService{clock: clock, idGen: idGen, files: files, camera: camera, log: log}
}

func (s *IngestService) LoadFile(ctx context.Context, path string) (domain.MealImage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.MealImage{}, fmt.Errorf("%w: image path is required", apperrors.ErrInvalidInput)
	}
	if !domain.AcceptsExtension(path) {
		return domain.MealImage{}, fmt.Errorf("%w: unsupported image type %q (accepted: jpg, jpeg, png)", apperrors.ErrInvalidInput, filepath.Ext(path))
	}
	raw, err := s.files.Load(ctx, path, domain.MaxImageBytes)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			return domain.MealImage{}, err
		}
		return domain.MealImage{}, s.fail(err)
	}
	return s.Normalize(raw, filepath.Base(path), domain.SourceUpload)
}

func (s *IngestService) Capture(ctx context.Context) (domain.MealImage, error) {
	if s.camera == nil {
		return domain.MealImage{}, s.fail(fmt.Errorf("camera is not configured"))
	}
	raw, err := s.camera.Capture(ctx)
	if err != nil {
		return domain.MealImage{}, s.fail(err)
	}
	name := "camera-" + s.clock.Now().Format("20060102-150405") + ".jpg"
	return s.Normalize(raw, name, domain.SourceCamera)
}

// Normalize validates raw image bytes and produces the payload sent for analysis.
func (s *IngestService) Normalize(raw []byte, name string, source domain.Source) (domain.MealImage, error) {
	if len(raw) == 0 {
		return domain.MealImage{}, s.fail(fmt.Errorf("image data is empty"))
	}
	if len(raw) > domain.MaxImageBytes {
		return domain.MealImage{}, s.fail(fmt.Errorf("image is %d bytes, limit is %d", len(raw), domain.MaxImageBytes))
	}
	detected := http.DetectContentType(raw)
	if !strings.HasPrefix(detected, "image/") {
		return domain.MealImage{}, s.fail(fmt.Errorf("data is %s, not an image", detected))
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return domain.MealImage{}, s.fail(fmt.Errorf("decode image header: %w", err))
	}

	img := domain.MealImage{
		ID:           s.idGen.New(),
		Name:         name,
		Source:       source,
		MIMEType:     domain.AnalysisMIMEType,
		DetectedType: detected,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Data:         raw,
		SelectedAt:   s.clock.Now(),
	}
	s.log.Info("image processed successfully", "name", name, "source", source, "detected", detected, "bytes", len(raw))
	return img, nil
}

func (s *IngestService) fail(cause error) error {
	s.log.Error("error processing image", "error", cause)
	return fmt.Errorf("%w: %w", apperrors.ErrImageProcessing, cause)
}
