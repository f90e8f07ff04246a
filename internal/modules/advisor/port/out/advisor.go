package out

import (
	"context"

	"mealcoach/internal/modules/advisor/domain"
)

// Generator turns prompt parts into model text.
type Generator interface {
	Generate(ctx context.Context, parts []domain.Part) (string, error)
}
