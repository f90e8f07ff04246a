package out

import (
	"context"
	"fmt"
	"io"
	"os"

	ingestout "mealcoach/internal/modules/ingest/port/out"
	apperrors "mealcoach/internal/platform/errors"
)

type LocalFileLoader struct{}

func NewLocalFileLoader() ingestout.FileLoader {
	return &LocalFileLoader{}
}

func (l *LocalFileLoader) Load(_ context.Context, path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", apperrors.ErrInvalidInput, path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: image is %d bytes, limit is %d", apperrors.ErrInvalidInput, info.Size(), maxBytes)
	}
	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return payload, nil
}
