package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ingestout "mealcoach/internal/modules/ingest/adapter/out"
	"mealcoach/internal/modules/ingest/dto"
	"mealcoach/internal/modules/ingest/service"
	"mealcoach/internal/modules/ingest/usecase"
	"mealcoach/internal/platform/clock"
	apperrors "mealcoach/internal/platform/errors"
	"mealcoach/internal/platform/logging"
)

type fakeID struct{}

func (fakeID) New() string { return "img-1" }

type fakeCamera struct {
	payload []byte
	err     error
}

func (c fakeCamera) Capture(context.Context) ([]byte, error) { return c.payload, c.err }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

var when = time.Date(2026, 3, 14, 12, 30, 0, 0, time.Local)

func newUsecase(camera fakeCamera) *usecase.Interactor {
	svc := service.NewIngestService(clock.Fixed(when), fakeID{}, ingestout.NewLocalFileLoader(), camera, logging.Discard())
	return usecase.NewInteractor(svc).(*usecase.Interactor)
}

func TestUploadLabelsPNGAsJPEGAndKeepsDetectedType(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "Lunch.PNG")
	if err := os.WriteFile(path, pngBytes(t, 4, 3), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}

	out, err := newUsecase(fakeCamera{}).Upload(context.Background(), dto.UploadInput{Path: path})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if out.MIMEType != "image/jpeg" || out.DetectedType != "image/png" {
		t.Fatalf("unexpected mime labels: %+v", out)
	}
	if out.Width != 4 || out.Height != 3 || out.ID != "img-1" || out.Source != "upload" {
		t.Fatalf("unexpected image metadata: %+v", out)
	}
	if !out.SelectedAt.Equal(when) || out.Name != "Lunch.PNG" {
		t.Fatalf("unexpected name/time: %s %s", out.Name, out.SelectedAt)
	}
}

func TestUploadRejectsUnsupportedExtensionAsInvalidInput(t *testing.T) {
	t.Parallel()
	_, err := newUsecase(fakeCamera{}).Upload(context.Background(), dto.UploadInput{Path: "/tmp/meal.gif"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUploadMissingFileIsImageProcessingError(t *testing.T) {
	t.Parallel()
	_, err := newUsecase(fakeCamera{}).Upload(context.Background(), dto.UploadInput{Path: filepath.Join(t.TempDir(), "none.jpg")})
	if !errors.Is(err, apperrors.ErrImageProcessing) {
		t.Fatalf("expected image processing error, got %v", err)
	}
}

func TestNormalizeFailsOnEmptyAndCorruptBuffers(t *testing.T) {
	t.Parallel()
	uc := newUsecase(fakeCamera{})

	_, err := uc.Normalize(context.Background(), dto.NormalizeInput{Name: "empty.jpg"})
	if !errors.Is(err, apperrors.ErrImageProcessing) || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty-buffer processing error, got %v", err)
	}

	corrupt := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x01}, 32)...)
	_, err = uc.Normalize(context.Background(), dto.NormalizeInput{Name: "broken.jpg", Data: corrupt})
	if !errors.Is(err, apperrors.ErrImageProcessing) {
		t.Fatalf("expected corrupt-buffer processing error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "error processing image: ") {
		t.Fatalf("error must carry the cause after the prefix, got %q", err.Error())
	}

	_, err = uc.Normalize(context.Background(), dto.NormalizeInput{Name: "notes.jpg", Data: []byte("plain text, not pixels")})
	if !errors.Is(err, apperrors.ErrImageProcessing) {
		t.Fatalf("expected non-image processing error, got %v", err)
	}
}

func TestCaptureUsesCameraAndNamesFromClock(t *testing.T) {
	t.Parallel()
	out, err := newUsecase(fakeCamera{payload: jpegBytes(t, 8, 8)}).Capture(context.Background())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if out.Source != "camera" || out.Name != "camera-20260314-123000.jpg" || out.DetectedType != "image/jpeg" {
		t.Fatalf("unexpected capture output: %+v", out)
	}

	_, err = newUsecase(fakeCamera{err: errors.New("no device")}).Capture(context.Background())
	if !errors.Is(err, apperrors.ErrImageProcessing) || !strings.Contains(err.Error(), "no device") {
		t.Fatalf("expected camera failure to surface as processing error, got %v", err)
	}
}
