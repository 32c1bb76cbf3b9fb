// Package server assembles the API and runs it until its context ends.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/auth"
	"github.com/andrewpaige1/wisdom-compass-api/config"
	"github.com/andrewpaige1/wisdom-compass-api/handlers"
	"github.com/andrewpaige1/wisdom-compass-api/metrics"
	"github.com/andrewpaige1/wisdom-compass-api/middleware"
	"github.com/andrewpaige1/wisdom-compass-api/storage"
)

type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	handler http.Handler
	sweeper *auth.Sweeper
}

// New wires storage, auth, handlers and metrics for cfg.
func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*App, error) {
	provider, err := auth.NewProvider(cfg.Auth, cfg.Server.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("identity provider: %w", err)
	}
	return newApp(cfg, storage.New(db), provider, logger), nil
}

type identityProvider interface {
	handlers.IdentityProvider
	middleware.AccessTokenValidator
}

func newApp(cfg *config.Config, store *storage.DatabaseStorage, provider identityProvider, logger *zap.Logger) *App {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(reg)

	sessions := auth.NewSessionManager(store, cfg.Auth)
	env := config.NewEnvironment(cfg.Auth)

	returnTo := cfg.Auth.LogoutReturnURL
	if returnTo == "" {
		returnTo = cfg.Server.PublicURL
	}

	handler := NewRouter(Routes{
		API: handlers.NewDBHandler(store, logger, recorder),
		Auth: &handlers.AuthHandler{
			Provider:      provider,
			Sessions:      sessions,
			Users:         store,
			Log:           logger,
			ReturnTo:      returnTo,
			SecureCookies: env.CookieSecure,
		},
		Authenticator:  middleware.NewAuthenticator(sessions, provider, store, logger),
		Metrics:        recorder,
		Gatherer:       reg,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		sweeper: auth.NewSweeper(store, cfg.Auth.SweepInterval, logger, recorder.AddSessionsSwept),
	}
}

func (a *App) Handler() http.Handler { return a.handler }

// Run serves HTTP and sweeps sessions until ctx is cancelled, then shuts
// down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              "0.0.0.0:" + strconv.Itoa(a.cfg.Server.Port),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.sweeper.Run(serverCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-serverCtx.Done():
		a.logger.Info("Shutting down server")
	case err, ok := <-errCh:
		if ok {
			a.logger.Error("Server failed", zap.Error(err))
			serveErr = fmt.Errorf("serve: %w", err)
		}
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown failed", zap.Error(err))
		if serveErr == nil {
			serveErr = fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	wg.Wait()
	a.logger.Info("Server shutdown completed")
	return serveErr
}
