package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"mealcoach/internal/modules/session/domain"
	sessionout "mealcoach/internal/modules/session/port/out"
	"mealcoach/internal/platform/clock"
	apperrors "mealcoach/internal/platform/errors"
	"mealcoach/internal/platform/id"
)

type SessionService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     sessionout.Store
	log       hclog.Logger
	sessionID string
	startedAt time.Time
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.Store, log hclog.Logger) *SessionService {
	s := &SessionService{
		clock:     clock,
		idGen:     idGen,
		store:     store,
		log:       log,
		sessionID: idGen.New(),
		startedAt: clock.Now(),
	}
	log.Debug("session started", "session", s.sessionID)
	return s
}

func (s *SessionService) SetCurrentImage(ctx context.Context, image domain.SelectedImage) error {
	if len(image.Data) == 0 {
		return fmt.Errorf("%w: image data is required", apperrors.ErrInvalidInput)
	}
	if image.ID == "" {
		image.ID = s.idGen.New()
	}
	if image.SelectedAt.IsZero() {
		image.SelectedAt = s.clock.Now()
	}
	if err := s.store.SaveImage(ctx, image); err != nil {
		return err
	}
	s.log.Debug("current image replaced", "image", image.ID, "name", image.Name)
	return nil
}

func (s *SessionService) CurrentImage(ctx context.Context) (domain.SelectedImage, error) {
	return s.store.LoadImage(ctx)
}

func (s *SessionService) AppendMealRecord(ctx context.Context, mealType string, calories int, analysis string) (domain.MealRecord, error) {
	if strings.TrimSpace(mealType) == "" {
		return domain.MealRecord{}, fmt.Errorf("%w: meal type is required", apperrors.ErrInvalidInput)
	}
	if calories < 0 {
		return domain.MealRecord{}, fmt.Errorf("%w: calories must be non-negative", apperrors.ErrInvalidInput)
	}
	record := domain.MealRecord{
		ID:         s.idGen.New(),
		RecordedAt: s.clock.Now(),
		MealType:   mealType,
		Calories:   calories,
		Analysis:   analysis,
	}
	if err := s.store.AppendRecord(ctx, record); err != nil {
		return domain.MealRecord{}, err
	}
	s.log.Info("meal recorded", "meal_type", mealType, "calories", calories)
	return record, nil
}

func (s *SessionService) TotalCalories(ctx context.Context) (int, error) {
	return s.store.TotalCalories(ctx)
}

func (s *SessionService) History(ctx context.Context, limit int) ([]domain.MealRecord, error) {
	return s.store.Records(ctx, limit)
}

func (s *SessionService) Snapshot(ctx context.Context) (domain.State, error) {
	total, err := s.store.TotalCalories(ctx)
	if err != nil {
		return domain.State{}, err
	}
	records, err := s.store.Records(ctx, 0)
	if err != nil {
		return domain.State{}, err
	}
	// Records arrive newest first; reversing restores insertion order.
	state := domain.State{
		ID:            s.sessionID,
		StartedAt:     s.startedAt,
		TotalCalories: total,
		Records:       domain.MostRecentFirst(records, 0),
	}
	image, err := s.store.LoadImage(ctx)
	switch {
	case err == nil:
		state.Image = &image
	case err != apperrors.ErrNoImageSelected:
		return domain.State{}, err
	}
	return state, nil
}
