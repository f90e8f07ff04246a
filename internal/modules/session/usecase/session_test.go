package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sessionout "mealcoach/internal/modules/session/adapter/out"
	sessiondto "mealcoach/internal/modules/session/dto"
	sessionin "mealcoach/internal/modules/session/port/in"
	storeport "mealcoach/internal/modules/session/port/out"
	"mealcoach/internal/modules/session/service"
	"mealcoach/internal/modules/session/usecase"
	apperrors "mealcoach/internal/platform/errors"
	"mealcoach/internal/platform/logging"
)

type fakeClock struct {
	base time.Time
	tick int
}

func (f *fakeClock) Now() time.Time {
	v := f.base.Add(time.Duration(f.tick) * time.Minute)
	f.tick++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type backend struct {
	name string
	open func(t *testing.T) storeport.Store
}

func backends() []backend {
	return []backend{
		{name: "memory", open: func(*testing.T) storeport.Store { return sessionout.NewMemoryStore() }},
		{name: "sqlite", open: func(t *testing.T) storeport.Store {
			t.Helper()
			store, err := sessionout.NewSQLiteStore(context.Background())
			if err != nil {
				t.Fatalf("open sqlite store: %v", err)
			}
			return store
		}},
	}
}

func newSession(t *testing.T, b backend) sessionin.Usecase {
	t.Helper()
	store := b.open(t)
	t.Cleanup(func() { _ = store.Close() })
	clk := &fakeClock{base: time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)}
	return usecase.NewInteractor(service.NewSessionService(clk, &seqID{}, store, logging.Discard()))
}

func TestAppendAccumulatesTotalAndHistoryIsMostRecentFirst(t *testing.T) {
	t.Parallel()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			uc := newSession(t, b)
			ctx := context.Background()

			meals := []sessiondto.AppendInput{
				{MealType: "Breakfast", Calories: 250, Analysis: "Total Calories: 250 kcal"},
				{MealType: "Lunch", Calories: 0, Analysis: "Unhealthy"},
				{MealType: "Dinner", Calories: 700, Analysis: "Total Calories: 700 kcal"},
			}
			prev := 0
			for _, meal := range meals {
				if _, err := uc.AppendMealRecord(ctx, meal); err != nil {
					t.Fatalf("append %s: %v", meal.MealType, err)
				}
				total, err := uc.TotalCalories(ctx)
				if err != nil {
					t.Fatalf("total: %v", err)
				}
				if total != prev+meal.Calories {
					t.Fatalf("expected total %d, got %d", prev+meal.Calories, total)
				}
				prev = total
			}

			history, err := uc.History(ctx, 2)
			if err != nil {
				t.Fatalf("history: %v", err)
			}
			if len(history) != 2 || history[0].MealType != "Dinner" || history[1].MealType != "Lunch" {
				t.Fatalf("expected [Dinner Lunch], got %+v", history)
			}
			if !history[0].RecordedAt.After(history[1].RecordedAt) {
				t.Fatalf("expected newer record first")
			}

			all, err := uc.History(ctx, 10)
			if err != nil {
				t.Fatalf("history all: %v", err)
			}
			if len(all) != 3 || all[2].MealType != "Breakfast" {
				t.Fatalf("limit above count must return every record, got %+v", all)
			}
		})
	}
}

func TestHistoryCapsAtLimit(t *testing.T) {
	t.Parallel()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			uc := newSession(t, b)
			ctx := context.Background()
			for i := 0; i < 12; i++ {
				if _, err := uc.AppendMealRecord(ctx, sessiondto.AppendInput{MealType: "Snack", Calories: i}); err != nil {
					t.Fatalf("append %d: %v", i, err)
				}
			}
			history, err := uc.History(ctx, 10)
			if err != nil {
				t.Fatalf("history: %v", err)
			}
			if len(history) != 10 || history[0].Calories != 11 || history[9].Calories != 2 {
				t.Fatalf("expected last ten newest first, got %d records starting %d", len(history), history[0].Calories)
			}
			total, _ := uc.TotalCalories(ctx)
			if total != 66 {
				t.Fatalf("expected total 66, got %d", total)
			}
		})
	}
}

func TestCurrentImageReplacementAndSummary(t *testing.T) {
	t.Parallel()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			uc := newSession(t, b)
			ctx := context.Background()

			if _, err := uc.CurrentImage(ctx); !errors.Is(err, apperrors.ErrNoImageSelected) {
				t.Fatalf("expected no image selected, got %v", err)
			}
			if err := uc.SetCurrentImage(ctx, sessiondto.ImageInput{ID: "a", Name: "a.jpg", Source: "upload", MIMEType: "image/jpeg", Data: []byte{1}}); err != nil {
				t.Fatalf("set image a: %v", err)
			}
			if err := uc.SetCurrentImage(ctx, sessiondto.ImageInput{ID: "b", Name: "b.png", Source: "camera", MIMEType: "image/jpeg", Data: []byte{2, 3}}); err != nil {
				t.Fatalf("set image b: %v", err)
			}
			img, err := uc.CurrentImage(ctx)
			if err != nil {
				t.Fatalf("current image: %v", err)
			}
			if img.ID != "b" || img.Source != "camera" || len(img.Data) != 2 || img.SelectedAt.IsZero() {
				t.Fatalf("expected latest image b, got %+v", img)
			}

			if _, err := uc.AppendMealRecord(ctx, sessiondto.AppendInput{MealType: "Lunch", Calories: 400}); err != nil {
				t.Fatalf("append: %v", err)
			}
			summary, err := uc.Summary(ctx)
			if err != nil {
				t.Fatalf("summary: %v", err)
			}
			if summary.SessionID == "" || !summary.HasImage || summary.ImageName != "b.png" || summary.MealCount != 1 || summary.TotalCalories != 400 {
				t.Fatalf("unexpected summary %+v", summary)
			}
		})
	}
}

func TestAppendRejectsInvalidRecords(t *testing.T) {
	t.Parallel()
	uc := newSession(t, backends()[0])
	ctx := context.Background()
	if _, err := uc.AppendMealRecord(ctx, sessiondto.AppendInput{MealType: "", Calories: 10}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing meal type, got %v", err)
	}
	if _, err := uc.AppendMealRecord(ctx, sessiondto.AppendInput{MealType: "Lunch", Calories: -1}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative calories, got %v", err)
	}
	if err := uc.SetCurrentImage(ctx, sessiondto.ImageInput{Name: "empty.jpg"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty image, got %v", err)
	}
	total, _ := uc.TotalCalories(ctx)
	if total != 0 {
		t.Fatalf("rejected records must not change total, got %d", total)
	}
}
