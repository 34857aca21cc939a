package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/config"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/ubuntu-explorer/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/ubuntu-explorer/internal/platform/cache"
	idgen "github.com/riskibarqy/ubuntu-explorer/internal/platform/id"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/metrics"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/resilience"
	"github.com/riskibarqy/ubuntu-explorer/internal/usecase"
)

const (
	metricsNamespace         = "ubuntu_explorer"
	directoryShutdownTimeout = 5 * time.Second
)

// App is the assembled service: the HTTP server plus the background work and
// connections it owns.
type App struct {
	Server *http.Server

	logger    *logging.Logger
	landing   *usecase.LandingService
	directory *usecase.DirectoryRecorder
	sweeper   sessionSweeper
	sweepTick time.Duration
	closers   []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// New connects the configured stores and builds the HTTP server. On error
// every connection opened so far is closed again.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (_ *App, err error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{
		logger:    logger,
		sweepTick: cfg.SessionSweepInterval,
	}
	defer func() {
		if err != nil {
			a.closeAll()
		}
	}()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(metricsNamespace)
	}

	sessions, err := a.openSessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	catalogRepo := cache.NewCatalogRepository(
		memory.NewCatalogRepository(memory.SeedCatalog()),
		basecache.NewStore(cfg.CatalogCacheTTL),
	)

	var profiles profile.Repository = memory.NewProfileRepository()
	if cfg.DBEnabled {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, namedCloser{name: "postgres", close: db.Close})
		profiles = postgres.NewProfileRepository(db)
		logger.Info("profile directory backed by postgres", "db_name", parseDBTarget(cfg.DBURL, false).Name)
	}

	directory, err := usecase.NewDirectoryRecorder(profiles, usecase.DirectoryRecorderConfig{
		Workers:   cfg.DirectoryWorkers,
		QueueSize: cfg.DirectoryQueueSize,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DirectoryCircuitEnabled,
			FailureThreshold: cfg.DirectoryCircuitFailureCount,
			OpenTimeout:      cfg.DirectoryCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DirectoryCircuitHalfOpenMaxReq,
		},
	}, m, logger)
	if err != nil {
		return nil, fmt.Errorf("build directory recorder: %w", err)
	}
	a.directory = directory

	a.landing = usecase.NewLandingService(catalogRepo)
	shellSvc := usecase.NewShellService(sessions, catalogRepo, idgen.NewUUIDGenerator(), directory, m, logger)
	dashboardSvc := usecase.NewDashboardService(sessions, catalogRepo)

	handler := httpapi.NewHandler(a.landing, shellSvc, dashboardSvc, directory, logger)
	routerCfg := httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
	}
	if m != nil {
		routerCfg.Metrics = m.Handler()
	}

	a.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, logger, routerCfg),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return a, nil
}

// StartBackground warms the catalog cache and runs the session sweeper until
// ctx is done.
func (a *App) StartBackground(ctx context.Context) {
	go func() {
		if err := a.landing.Warmup(ctx); err != nil {
			a.logger.WarnContext(ctx, "catalog warmup failed", "error", err)
			return
		}
		a.logger.InfoContext(ctx, "catalog warmed up")
	}()

	if a.sweeper != nil {
		go runSessionSweeper(ctx, a.sweeper, a.sweepTick, a.logger)
	}
}

// Shutdown stops the HTTP server, drains the directory pool and closes the
// store connections.
func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("shutdown http server: %w", err)
		}
	}
	if a.directory != nil {
		if err := a.directory.Close(directoryShutdownTimeout); err != nil {
			a.logger.Warn("directory pool did not drain", "error", err)
		}
	}
	a.closeAll()
	return shutdownErr
}

func (a *App) closeAll() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			a.logger.Warn("close connection failed", "name", c.name, "error", err)
		}
	}
	a.closers = nil
}
