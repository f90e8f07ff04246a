package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mealcoach/internal/platform/config"
	apperrors "mealcoach/internal/platform/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.HistoryLimit != 10 || cfg.SessionBackend != config.BackendMemory || cfg.Retries != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Profile.MealType != "" || cfg.Profile.Goal != "" {
		t.Fatalf("selectors should default to the placeholder: %+v", cfg.Profile)
	}
}

func TestRequireAPIKey(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	if err := cfg.RequireAPIKey(); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	cfg.APIKey = "key"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	cfg.SessionBackend = "redis"
	cfg.HistoryLimit = 0
	cfg.CameraCommand = []string{"fswebcam", "out.jpg"}

	err := cfg.Validate()
	if !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	for _, want := range []string{"session.backend", "history.limit", "camera.command"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %s", err, want)
		}
	}
}

func TestNewLayersFileThenEnvironment(t *testing.T) {
	clearEnv(t, "GOOGLE_API_KEY", "GEMINI_API_KEY", "MEALCOACH_EXPORT_DIR", "MEALCOACH_LOG_LEVEL")
	t.Setenv("MEALCOACH_MODEL", "gemini-env")

	path := writeFile(t, "mealcoach.yaml", `
ai:
  model: gemini-file
  timeout: 10s
  retries: 0
session:
  backend: SQLite
history:
  limit: 5
profile:
  meal_type: Lunch
  daily_limit: 1800
`)
	envFile := writeFile(t, ".env", "GEMINI_API_KEY=from-dotenv\n")

	cfg, err := config.New(path, envFile)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Model != "gemini-env" {
		t.Fatalf("environment should override the file, got model %q", cfg.Model)
	}
	if cfg.Timeout != 10*time.Second || cfg.Retries != 0 || cfg.HistoryLimit != 5 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.SessionBackend != config.BackendSQLite {
		t.Fatalf("backend should be normalized, got %q", cfg.SessionBackend)
	}
	if cfg.Profile.MealType != "Lunch" || cfg.Profile.DailyLimit != 1800 || cfg.Profile.Age != 30 {
		t.Fatalf("unexpected profile defaults: %+v", cfg.Profile)
	}
	if cfg.APIKey != "from-dotenv" {
		t.Fatalf("api key should come from the env file, got %q", cfg.APIKey)
	}
}

func TestNewPrefersGoogleAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "google")
	t.Setenv("GEMINI_API_KEY", "gemini")

	cfg, err := config.New("", writeFile(t, ".env", ""))
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIKey != "google" {
		t.Fatalf("expected GOOGLE_API_KEY to win, got %q", cfg.APIKey)
	}
}

func TestNewRejectsBadFiles(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"bad timeout": "ai:\n  timeout: soon\n",
		"bad yaml":    "ai: [\n",
		"bad backend": "session:\n  backend: redis\n",
	}
	for name, content := range cases {
		path := writeFile(t, "mealcoach.yaml", content)
		if _, err := config.New(path, ""); !errors.Is(err, apperrors.ErrConfiguration) {
			t.Fatalf("%s: expected configuration error, got %v", name, err)
		}
	}
	if _, err := config.New(filepath.Join(t.TempDir(), "missing.yaml"), ""); !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("missing file: expected configuration error, got %v", err)
	}
}

func TestNewRequiresExplicitEnvFile(t *testing.T) {
	t.Parallel()
	_, err := config.New("", filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
