package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	hclog "github.com/hashicorp/go-hclog"

	"mealcoach/internal/modules/advisor/domain"
	advisorout "mealcoach/internal/modules/advisor/port/out"
	apperrors "mealcoach/internal/platform/errors"
)

type Settings struct {
	Timeout time.Duration
	Retries int
	// RetryInterval is the first backoff delay. Zero keeps the library default.
	RetryInterval time.Duration
}

type AdvisorService struct {
	gen      advisorout.Generator
	settings Settings
	log      hclog.Logger
}

func NewAdvisorService(gen advisorout.Generator, settings Settings, log hclog.Logger) *AdvisorService {
	return &AdvisorService{gen: gen, settings: settings, log: log}
}

func (s *AdvisorService) AnalyzeMeal(ctx context.Context, mimeType string, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: image data is empty", apperrors.ErrInvalidInput)
	}
	text, err := s.generate(ctx, []domain.Part{
		domain.BlobPart(mimeType, image),
		domain.TextPart(domain.AnalysisInstruction),
	})
	if err != nil {
		return "", err
	}
	s.log.Info("gemini response received", "chars", len(text))
	s.log.Debug("gemini response", "text", text)
	return text, nil
}

func (s *AdvisorService) RecommendExercise(ctx context.Context, goal string, age, weightKg, caloriesToday int) (string, error) {
	text, err := s.generate(ctx, []domain.Part{
		domain.TextPart(domain.ExercisePrompt(goal, age, weightKg, caloriesToday)),
	})
	if err != nil {
		return "", err
	}
	s.log.Info("exercise recommendations generated", "goal", goal, "chars", len(text))
	return text, nil
}

func (s *AdvisorService) generate(ctx context.Context, parts []domain.Part) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("%w: generator is not configured", apperrors.ErrAIService)
	}
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	policy := backoff.NewExponentialBackOff()
	if s.settings.RetryInterval > 0 {
		policy.InitialInterval = s.settings.RetryInterval
	}
	attempt := 0
	text, err := backoff.Retry(ctx, func() (string, error) {
		attempt++
		text, err := s.gen.Generate(ctx, parts)
		if err != nil {
			if ctx.Err() != nil {
				return "", backoff.Permanent(err)
			}
			s.log.Warn("generate attempt failed", "attempt", attempt, "error", err)
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("empty response from model")
		}
		return text, nil
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(uint(s.settings.Retries+1)))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("request timed out after %s: %w", s.settings.Timeout, err)
		}
		return "", err
	}
	return text, nil
}
