package out

import (
	"context"
	"sync"

	"mealcoach/internal/modules/session/domain"
	sessionout "mealcoach/internal/modules/session/port/out"
	apperrors "mealcoach/internal/platform/errors"
)

// MemoryStore keeps session state in process memory. The mutex guards
// against Bubble Tea commands that touch the store from their own goroutine.
type MemoryStore struct {
	mu    sync.Mutex
	state domain.State
}

func NewMemoryStore() sessionout.Store {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveImage(_ context.Context, image domain.SelectedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Image = &image
	return nil
}

func (s *MemoryStore) LoadImage(_ context.Context) (domain.SelectedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Image == nil {
		return domain.SelectedImage{}, apperrors.ErrNoImageSelected
	}
	return *s.state.Image, nil
}

func (s *MemoryStore) AppendRecord(_ context.Context, record domain.MealRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Records = append(s.state.Records, record)
	s.state.TotalCalories += record.Calories
	return nil
}

func (s *MemoryStore) TotalCalories(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalCalories, nil
}

func (s *MemoryStore) Records(_ context.Context, limit int) ([]domain.MealRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.MostRecentFirst(s.state.Records, limit), nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.State{}
	return nil
}
