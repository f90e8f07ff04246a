package out_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	ingestout "mealcoach/internal/modules/ingest/adapter/out"
	apperrors "mealcoach/internal/platform/errors"
)

func TestCommandCameraReplacesOutputPlaceholder(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("cp"); err != nil {
		t.Skip("cp not available")
	}
	src := filepath.Join(t.TempDir(), "still.jpg")
	if err := os.WriteFile(src, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	camera := ingestout.NewCommandCamera([]string{"cp", src, "{output}"}, "{output}")
	payload, err := camera.Capture(context.Background())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if string(payload) != "jpeg-bytes" {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestCommandCameraWithoutCommandFails(t *testing.T) {
	t.Parallel()
	if _, err := ingestout.NewCommandCamera(nil, "{output}").Capture(context.Background()); err == nil {
		t.Fatalf("expected error for unconfigured camera")
	}
}

func TestLocalFileLoaderEnforcesSizeLimit(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "big.jpg")
	if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loader := ingestout.NewLocalFileLoader()
	if _, err := loader.Load(context.Background(), path, 32); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for oversized file, got %v", err)
	}
	payload, err := loader.Load(context.Background(), path, 128)
	if err != nil || len(payload) != 64 {
		t.Fatalf("expected full read, got %d bytes err=%v", len(payload), err)
	}
}
