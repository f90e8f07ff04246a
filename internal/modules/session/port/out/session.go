package out

import (
	"context"

	"mealcoach/internal/modules/session/domain"
)

// Store holds one session's state. Implementations are ephemeral: Close
// discards everything.
type Store interface {
	SaveImage(ctx context.Context, image domain.SelectedImage) error
	LoadImage(ctx context.Context) (domain.SelectedImage, error)
	AppendRecord(ctx context.Context, record domain.MealRecord) error
	TotalCalories(ctx context.Context) (int, error)
	// Records returns at most limit records, newest first; limit <= 0 means all.
	Records(ctx context.Context, limit int) ([]domain.MealRecord, error)
	Close() error
}
