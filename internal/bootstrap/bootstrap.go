package bootstrap

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	advisoroutadapter "mealcoach/internal/modules/advisor/adapter/out"
	advisorservice "mealcoach/internal/modules/advisor/service"
	advisorusecase "mealcoach/internal/modules/advisor/usecase"
	ingestinadapter "mealcoach/internal/modules/ingest/adapter/in"
	ingestoutadapter "mealcoach/internal/modules/ingest/adapter/out"
	ingestdomain "mealcoach/internal/modules/ingest/domain"
	ingestin "mealcoach/internal/modules/ingest/port/in"
	ingestservice "mealcoach/internal/modules/ingest/service"
	ingestusecase "mealcoach/internal/modules/ingest/usecase"
	reportinadapter "mealcoach/internal/modules/report/adapter/in"
	reportoutadapter "mealcoach/internal/modules/report/adapter/out"
	reportin "mealcoach/internal/modules/report/port/in"
	reportservice "mealcoach/internal/modules/report/service"
	reportusecase "mealcoach/internal/modules/report/usecase"
	sessionoutadapter "mealcoach/internal/modules/session/adapter/out"
	sessionout "mealcoach/internal/modules/session/port/out"
	sessionservice "mealcoach/internal/modules/session/service"
	sessionusecase "mealcoach/internal/modules/session/usecase"
	trackerinadapter "mealcoach/internal/modules/tracker/adapter/in"
	trackeroutadapter "mealcoach/internal/modules/tracker/adapter/out"
	trackerservice "mealcoach/internal/modules/tracker/service"
	trackerusecase "mealcoach/internal/modules/tracker/usecase"
	"mealcoach/internal/platform/clock"
	"mealcoach/internal/platform/config"
	"mealcoach/internal/platform/id"
	uiapp "mealcoach/internal/ui/app"
	"mealcoach/internal/ui/components"
)

// Tools are the handlers that work without the AI service.
type Tools struct {
	ImageCLI  ingestinadapter.CLIHandler
	ReportCLI reportinadapter.CLIHandler

	ingest ingestin.Usecase
	report reportin.Usecase
}

type App struct {
	Tools
	TrackerCLI trackerinadapter.CLIHandler
	TrackerTUI trackerinadapter.TUIHandler

	cfg   config.Config
	store sessionout.Store
}

func NewTools(cfg config.Config, log hclog.Logger) *Tools {
	clk := clock.SystemClock{}

	ingestUC := ingestusecase.NewInteractor(ingestservice.NewIngestService(
		clk,
		id.UUID{},
		ingestoutadapter.NewLocalFileLoader(),
		ingestoutadapter.NewCommandCamera(cfg.CameraCommand, config.OutputPlaceholder),
		log.Named("ingest"),
	))
	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		reportoutadapter.NewFPDFRenderer(),
		reportoutadapter.NewLocalPDFReader(),
		cfg.ExportDir,
		log.Named("report"),
	))
	return &Tools{
		ImageCLI:  ingestinadapter.NewCLIHandler(ingestUC),
		ReportCLI: reportinadapter.NewCLIHandler(reportUC),
		ingest:    ingestUC,
		report:    reportUC,
	}
}

// New wires every module for one session. It fails with ErrConfiguration when
// no API key is configured.
func New(ctx context.Context, cfg config.Config, log hclog.Logger) (*App, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	tools := NewTools(cfg, log)

	generator, err := advisoroutadapter.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}
	advisorLog := log.Named("advisor")
	advisorUC := advisorusecase.NewInteractor(advisorservice.NewAdvisorService(
		generator,
		advisorservice.Settings{Timeout: cfg.Timeout, Retries: cfg.Retries},
		advisorLog,
	), advisorLog)

	store, err := newSessionStore(ctx, cfg.SessionBackend)
	if err != nil {
		return nil, err
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		clock.SystemClock{},
		id.UUID{},
		store,
		log.Named("session"),
	))

	trackerUC := trackerusecase.NewInteractor(trackerservice.NewTrackerService(
		trackeroutadapter.NewIngestAdapter(tools.ingest),
		trackeroutadapter.NewAdvisorAdapter(advisorUC),
		trackeroutadapter.NewSessionAdapter(sessionUC),
		trackeroutadapter.NewReportAdapter(tools.report),
		log.Named("tracker"),
	), cfg.HistoryLimit)

	return &App{
		Tools:      *tools,
		TrackerCLI: trackerinadapter.NewCLIHandler(trackerUC),
		TrackerTUI: trackerinadapter.NewTUIHandler(trackerUC),
		cfg:        cfg,
		store:      store,
	}, nil
}

// Profile returns the configured profile defaults.
func (a *App) Profile() config.ProfileDefaults { return a.cfg.Profile }

// Close discards the session.
func (a *App) Close() error {
	return a.store.Close()
}

func RunTUI(app *App) error {
	uploadDir, err := os.Getwd()
	if err != nil {
		uploadDir = "."
	}
	p := app.cfg.Profile
	model := uiapp.NewModel(app.TrackerTUI, uiapp.Options{
		Profile: components.ProfileDefaults{
			MealType:   p.MealType,
			Goal:       p.Goal,
			DailyLimit: p.DailyLimit,
			Age:        p.Age,
			WeightKg:   p.WeightKg,
		},
		HistoryLimit: app.cfg.HistoryLimit,
		UploadDir:    uploadDir,
		Extensions:   ingestdomain.AcceptedExtensions,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func newSessionStore(ctx context.Context, backend string) (sessionout.Store, error) {
	switch backend {
	case config.BackendSQLite:
		store, err := sessionoutadapter.NewSQLiteStore(ctx)
		if err != nil {
			return nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, nil
	default:
		return sessionoutadapter.NewMemoryStore(), nil
	}
}
