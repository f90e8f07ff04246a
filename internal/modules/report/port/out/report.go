package out

import (
	"context"

	"mealcoach/internal/modules/report/domain"
)

type Renderer interface {
	Render(ctx context.Context, doc domain.Document, path string) error
}

type DocumentReader interface {
	// ReadLines returns the text lines of every page in order and the page count.
	ReadLines(ctx context.Context, path string) ([]string, int, error)
}
