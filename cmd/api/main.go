package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/visitor-service/internal/api/http"
	"github.com/spec-kit/visitor-service/internal/api/http/handlers"
	"github.com/spec-kit/visitor-service/internal/auth"
	"github.com/spec-kit/visitor-service/internal/config"
	"github.com/spec-kit/visitor-service/internal/events"
	"github.com/spec-kit/visitor-service/internal/mail"
	"github.com/spec-kit/visitor-service/internal/observability"
	"github.com/spec-kit/visitor-service/internal/persistence"
	"github.com/spec-kit/visitor-service/internal/repository"
	"github.com/spec-kit/visitor-service/internal/service"
	"github.com/spec-kit/visitor-service/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(cfg.Postgres.MigrationsDir, cfg.Postgres.DSN, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics, collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	visitorRepo := repository.NewVisitorRepository(pool)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	throttle := auth.NewLoginThrottle(persistence.NewAttemptCounter(redis.Client), cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow(), logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, logger, metrics)

	staffService := service.NewStaffService(service.StaffDependencies{
		StaffRepo:  staffRepo,
		Tokens:     tokens,
		Throttle:   throttle,
		Mailer:     mail.NewMailer(cfg.Mail, logger),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	visitorService := service.NewVisitorService(service.VisitorDependencies{
		VisitorRepo: visitorRepo,
		StaffRepo:   staffRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Staff:          handlers.NewStaffHandler(staffService),
		Visitors:       handlers.NewVisitorHandler(visitorService),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
		Gatherer:       registry,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
