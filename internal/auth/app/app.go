package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/longevlabs/longev-auth/internal/auth/http"
	"github.com/longevlabs/longev-auth/internal/auth/mailer"
	"github.com/longevlabs/longev-auth/internal/auth/service"
	"github.com/longevlabs/longev-auth/internal/auth/store"
	"github.com/longevlabs/longev-auth/internal/auth/store/drivers/sqlite"
	"github.com/longevlabs/longev-auth/pkg/cryptox"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
	"github.com/longevlabs/longev-auth/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	keys   *jwtx.KeySet
	signer jwtx.Signer

	// Services
	tokenService        *service.TokenService
	authService         *service.AuthService
	userService         *service.UserService
	housekeepingService *service.HousekeepingService
	mailDispatcher      *mailer.Dispatcher

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "longev-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, signer, err := initAuthKeys(app.cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing keys: %w", err)
	}
	app.keys = keys
	app.signer = signer

	if err := app.initMailer(); err != nil {
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.mailDispatcher.Start()
	app.housekeepingService.Start()

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the background workers
	app.housekeepingService.Stop()
	app.mailDispatcher.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer wires the outbound mail pipeline. Without SMTP configuration
// passcodes are written to the log instead of delivered.
func (app *Application) initMailer() error {
	var sender mailer.Sender
	if app.cfg.SMTPHost != "" {
		smtp, err := mailer.NewSMTPSender(
			app.cfg.SMTPHost,
			app.cfg.SMTPPort,
			app.cfg.SMTPUsername,
			app.cfg.SMTPPassword,
			app.cfg.SMTPFrom,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
		sender = smtp
		app.logger.Info("smtp sender configured", "host", app.cfg.SMTPHost, "port", app.cfg.SMTPPort)
	} else {
		sender = &mailer.LogSender{Logger: app.logger}
		app.logger.Warn("SMTP not configured, outbound mail will only be logged")
	}

	app.mailDispatcher = mailer.NewDispatcher(
		sender,
		app.logger,
		app.cfg.MailQueueSize,
		float64(app.cfg.MailSendRate),
	)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:    app.signer,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTokenTTL,
	}

	app.authService = &service.AuthService{
		Store:  app.db,
		Tokens: app.tokenService,
		OTP:    &service.OTPGenerator{Digits: app.cfg.OTPDigits},
		Mail:   app.mailDispatcher,
		OTPTTL: app.cfg.OTPTTL,
	}

	app.userService = &service.UserService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		jwtx.NewVerifierEdDSA(app.keys, app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
