package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	httpapi "github.com/aussiebroadwan/leads/internal/leads/http"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/internal/leads/store"
	"github.com/aussiebroadwan/leads/internal/leads/store/drivers/postgres"
	"github.com/aussiebroadwan/leads/internal/leads/store/drivers/sqlite"
	"github.com/aussiebroadwan/leads/pkg/cryptox"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
	"github.com/aussiebroadwan/leads/pkg/metricsx"
	"github.com/aussiebroadwan/leads/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "leads-api"
)

// Application encapsulates the leads service with all its dependencies
type Application struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metricsx.Metrics

	// Core dependencies
	db     store.Store
	keys   *jwtx.KeySet
	hasher *cryptox.Hasher
	sealer *cryptox.Sealer

	// Services
	tokenService        *service.TokenService
	credentialService   *service.CredentialService
	leadService         *service.LeadService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router

	housekeepingRunning bool
	releaseOnce         sync.Once
	releaseErr          error
}

// New creates a new Application instance with all dependencies initialized.
// Configuration problems come back as a ConfigurationError and the process
// should refuse to start.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metricsx.New(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keys, err := LoadSigningKeys(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.keys = keys

	pepper, err := cryptox.LoadPepper(cfg.PepperFile)
	if err != nil {
		return nil, domain.NewAuthError(domain.KindConfiguration, err)
	}
	app.hasher = cryptox.NewHasher(pepper)
	if app.sealer, err = cryptox.NewSealer("leads-totp", pepper); err != nil {
		return nil, domain.NewAuthError(domain.KindConfiguration, err)
	}

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.seedAdmin(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.cfg.RevocationEnabled {
		app.housekeepingService.Start()
		app.housekeepingRunning = true
	}

	app.logger.Info("leads service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("server failed", "error", err)
			if relErr := app.release(); relErr != nil {
				return fmt.Errorf("server failed: %w", errors.Join(err, relErr))
			}
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down leads service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.release(); err != nil {
		return err
	}

	app.logger.Info("leads service stopped")
	return nil
}

// release stops the housekeeping worker and closes the store. It runs at
// most once; later calls return the first result.
func (app *Application) release() error {
	app.releaseOnce.Do(func() {
		if app.housekeepingRunning {
			app.housekeepingService.Stop()
			app.housekeepingRunning = false
		}

		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			app.releaseErr = err
		}
	})
	return app.releaseErr
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, postgres.Config{
			DSN:      app.cfg.DatabaseURL,
			MaxConns: int32(app.cfg.DatabaseMaxConns),
		})
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	tokens, err := service.NewTokenService(service.TokenConfig{
		Keys:       app.keys,
		Issuer:     app.cfg.Issuer,
		TTL:        app.cfg.TokenTTL,
		Revocation: app.cfg.RevocationEnabled,
		Sealer:     app.sealer,
	}, app.db, app.hasher, app.metrics)
	if err != nil {
		return err
	}
	app.tokenService = tokens

	app.credentialService = &service.CredentialService{
		Store:  app.db,
		Hasher: app.hasher,
		Sealer: app.sealer,
	}
	app.leadService = &service.LeadService{
		Store:       app.db,
		Metrics:     app.metrics,
		AdminFeeBps: app.cfg.AdminFeeBps,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.metrics,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

// seedAdmin makes the stored admin credential match the configuration.
func (app *Application) seedAdmin(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)

	generated, err := app.credentialService.EnsureAdmin(ctx,
		app.cfg.AdminUsername,
		app.cfg.AdminPassword,
		app.cfg.AdminTOTPSecret,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	if generated != "" {
		app.logger.Warn("generated admin password; store it now, it will not be shown again",
			"username", app.cfg.AdminUsername,
			"password", generated,
		)
	}
	return nil
}

// publicConfig is the snapshot served by GET /api/config.
func (app *Application) publicConfig() domain.PublicConfig {
	kid, _ := app.keys.Current()
	return domain.PublicConfig{
		Service:           serviceName,
		Version:           BuildVersion,
		Env:               app.cfg.Env,
		Issuer:            app.cfg.Issuer,
		SigningAlg:        app.tokenService.Signer.Alg(),
		KeyID:             kid,
		TokenTTL:          app.tokenService.TTL,
		RevocationEnabled: app.cfg.RevocationEnabled,
		OTPRequired:       app.cfg.AdminTOTPSecret != "",
		DatabaseDriver:    app.cfg.DatabaseDriver,
		AdminFeeBps:       app.cfg.AdminFeeBps,
		ConsortiumTypes:   domain.ConsortiumTypes,
		MinTermMonths:     domain.MinTermMonths,
		MaxTermMonths:     domain.MaxTermMonths,
		StartedAt:         time.Now().UTC(),
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		BuildVersion,
		app.db,
		app.logger,
		app.metrics,
	)

	router.TokenService = app.tokenService
	router.LeadService = app.leadService
	router.PublicConfig = app.publicConfig()
	router.RateLimits = app.cfg.RateLimits
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
