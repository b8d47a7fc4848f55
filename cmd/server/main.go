package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leadsite/backend/internal/config"
	"github.com/leadsite/backend/internal/handler"
	"github.com/leadsite/backend/internal/logging"
	"github.com/leadsite/backend/internal/monitoring"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/service"
	"github.com/leadsite/backend/pkg/auth"
	"github.com/leadsite/backend/pkg/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(logging.Options{Level: cfg.LogLevel, Service: "leadsite-server", Env: cfg.Env})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, repository.PoolConfig{
		DSN:      cfg.DSN(),
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL))
	if err != nil {
		logging.Fatal("failed to create token service", "error", err)
	}
	metrics := monitoring.New()

	contactRepo := repository.NewPgContactRepository(pool)
	leadRepo := repository.NewPgLeadRepository(pool)
	quoteRepo := repository.NewPgQuoteRepository(pool)
	statusRepo := repository.NewPgStatusRepository(pool)
	adminUserRepo := repository.NewPgAdminUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)

	production := cfg.IsProduction()
	intake := func(p service.Profile) *handler.IntakeHandler {
		return handler.NewIntakeHandler(
			service.NewContactService(contactRepo, p),
			service.NewLeadService(leadRepo, p),
			service.NewQuoteService(quoteRepo, p),
			handler.IntakeConfig{Production: production, TrustedProxies: cfg.TrustedProxies, Metrics: metrics},
		)
	}
	authService := service.NewAuthService(adminUserRepo, sessionRepo, tokens)
	adminService := service.NewAdminService(contactRepo, leadRepo, quoteRepo, statusRepo)

	routes := handler.Routes{
		Health:     handler.New(pool, "leadsite API"),
		Legacy:     intake(service.ProfileLegacy),
		Current:    intake(service.ProfileCurrent),
		Auth:       handler.NewAuthHandler(authService, production, cfg.TrustedProxies, metrics),
		Admin:      handler.NewAdminHandler(adminService, production),
		Verifier:   tokens,
		Metrics:    metrics,
		LegacyCORS: cors.NewSingleOrigin(cfg.FrontendURL),
		CORS:       cors.NewAllowList(cfg.AllowedOrigins),
		Production: production,
	}
	if cfg.RateLimitPerMinute > 0 {
		routes.RateLimit = handler.NewRateLimiter(ctx, cfg.RateLimitPerMinute, cfg.TrustedProxies).Middleware
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(routes),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
