package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "mealcoach/internal/platform/errors"
)

const (
	DefaultModel        = "gemini-2.0-flash"
	DefaultTimeout      = 45 * time.Second
	DefaultRetries      = 1
	DefaultHistoryLimit = 10
	DefaultLogPath      = "mealcoach.log"
	DefaultEnvFile      = ".env"

	BackendMemory = "memory"
	BackendSQLite = "sqlite"

	// OutputPlaceholder is replaced with the capture file path in CameraCommand.
	OutputPlaceholder = "{output}"
)

type Config struct {
	APIKey         string
	Model          string
	Timeout        time.Duration
	Retries        int
	ExportDir      string
	HistoryLimit   int
	SessionBackend string
	LogPath        string
	LogLevel       string
	CameraCommand  []string
	Profile        ProfileDefaults
}

// ProfileDefaults seeds the sidebar form. Empty meal type and goal leave the
// selectors on their placeholder entries.
type ProfileDefaults struct {
	MealType   string `yaml:"meal_type"`
	Goal       string `yaml:"goal"`
	DailyLimit int    `yaml:"daily_limit"`
	Age        int    `yaml:"age"`
	WeightKg   int    `yaml:"weight_kg"`
}

type fileConfig struct {
	AI struct {
		Model   string `yaml:"model"`
		Timeout string `yaml:"timeout"`
		Retries *int   `yaml:"retries"`
	} `yaml:"ai"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	History struct {
		Limit int `yaml:"limit"`
	} `yaml:"history"`
	Session struct {
		Backend string `yaml:"backend"`
	} `yaml:"session"`
	Log struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Camera struct {
		Command []string `yaml:"command"`
	} `yaml:"camera"`
	Profile ProfileDefaults `yaml:"profile"`
}

// New resolves configuration from defaults, an optional YAML file, an
// optional dotenv file and the process environment, in that order.
// An empty configPath skips the YAML file. An empty envFile falls back to
// DefaultEnvFile, which may be absent.
func New(configPath, envFile string) (Config, error) {
	cfg := Defaults()

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}
	if configPath != "" {
		if err := cfg.applyFile(configPath); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		Model:          DefaultModel,
		Timeout:        DefaultTimeout,
		Retries:        DefaultRetries,
		ExportDir:      os.TempDir(),
		HistoryLimit:   DefaultHistoryLimit,
		SessionBackend: BackendMemory,
		LogPath:        DefaultLogPath,
		LogLevel:       "info",
		CameraCommand:  defaultCameraCommand(runtime.GOOS),
		Profile: ProfileDefaults{
			DailyLimit: 2000,
			Age:        30,
			WeightKg:   70,
		},
	}
}

// Validate checks value ranges. The API key is checked separately by
// RequireAPIKey so that offline commands can run without one.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Model) == "" {
		problems = append(problems, "ai.model must not be empty")
	}
	if c.Timeout <= 0 {
		problems = append(problems, "ai.timeout must be positive")
	}
	if c.Retries < 0 {
		problems = append(problems, "ai.retries must not be negative")
	}
	if c.HistoryLimit <= 0 {
		problems = append(problems, "history.limit must be positive")
	}
	if c.SessionBackend != BackendMemory && c.SessionBackend != BackendSQLite {
		problems = append(problems, fmt.Sprintf("session.backend %q is not one of memory|sqlite", c.SessionBackend))
	}
	if len(c.CameraCommand) > 0 && !containsPlaceholder(c.CameraCommand) {
		problems = append(problems, "camera.command must contain "+OutputPlaceholder)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: GOOGLE_API_KEY is not set", apperrors.ErrConfiguration)
	}
	return nil
}

func loadEnvFile(envFile string) error {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: load env file %s: %v", apperrors.ErrConfiguration, envFile, err)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config: %v", apperrors.ErrConfiguration, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("%w: decode config %s: %v", apperrors.ErrConfiguration, path, err)
	}

	if fc.AI.Model != "" {
		c.Model = fc.AI.Model
	}
	if fc.AI.Timeout != "" {
		timeout, err := time.ParseDuration(fc.AI.Timeout)
		if err != nil {
			return fmt.Errorf("%w: ai.timeout: %v", apperrors.ErrConfiguration, err)
		}
		c.Timeout = timeout
	}
	if fc.AI.Retries != nil {
		c.Retries = *fc.AI.Retries
	}
	if fc.Export.Dir != "" {
		c.ExportDir = fc.Export.Dir
	}
	if fc.History.Limit != 0 {
		c.HistoryLimit = fc.History.Limit
	}
	if fc.Session.Backend != "" {
		c.SessionBackend = strings.ToLower(fc.Session.Backend)
	}
	if fc.Log.Path != "" {
		c.LogPath = fc.Log.Path
	}
	if fc.Log.Level != "" {
		c.LogLevel = fc.Log.Level
	}
	if len(fc.Camera.Command) > 0 {
		c.CameraCommand = fc.Camera.Command
	}
	if fc.Profile.MealType != "" {
		c.Profile.MealType = fc.Profile.MealType
	}
	if fc.Profile.Goal != "" {
		c.Profile.Goal = fc.Profile.Goal
	}
	if fc.Profile.DailyLimit != 0 {
		c.Profile.DailyLimit = fc.Profile.DailyLimit
	}
	if fc.Profile.Age != 0 {
		c.Profile.Age = fc.Profile.Age
	}
	if fc.Profile.WeightKg != 0 {
		c.Profile.WeightKg = fc.Profile.WeightKg
	}
	return nil
}

func (c *Config) applyEnv() {
	c.APIKey = firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY")
	if v := os.Getenv("MEALCOACH_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("MEALCOACH_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv("MEALCOACH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func defaultCameraCommand(goos string) []string {
	switch goos {
	case "linux":
		return []string{"fswebcam", "--no-banner", "-r", "1280x720", OutputPlaceholder}
	case "darwin":
		return []string{"imagesnap", "-w", "1", OutputPlaceholder}
	default:
		return nil
	}
}

func containsPlaceholder(argv []string) bool {
	for _, arg := range argv {
		if strings.Contains(arg, OutputPlaceholder) {
			return true
		}
	}
	return false
}
