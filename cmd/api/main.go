package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/xmikiesx/usage-metrics-api/internal/api/http"
	"github.com/xmikiesx/usage-metrics-api/internal/api/http/handlers"
	"github.com/xmikiesx/usage-metrics-api/internal/auth"
	"github.com/xmikiesx/usage-metrics-api/internal/config"
	"github.com/xmikiesx/usage-metrics-api/internal/metrics"
	"github.com/xmikiesx/usage-metrics-api/internal/observability"
	"github.com/xmikiesx/usage-metrics-api/internal/service"
	"github.com/xmikiesx/usage-metrics-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.SecretIsFallback {
		logger.Warn("AUTH_JWT_SECRET not set, using insecure development secret")
	}

	userStore := store.NewSeededUserStore()
	userService := service.NewUserService(userStore)
	accumulator := metrics.NewAccumulator()
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokenManager)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, accumulator, cfg.Metrics.TrackingEnabled)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Users:          handlers.NewUsersHandler(userService),
		Auth:           handlers.NewAuthHandler(tokenManager),
		Metrics:        handlers.NewMetricsHandler(accumulator),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.App.Addr()),
			zap.Strings("endpoints", []string{
				"POST /users",
				"GET /users",
				"GET /users/:id",
				"POST /auth/login",
				"GET /auth/profile",
				"GET /metrics",
			}))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
