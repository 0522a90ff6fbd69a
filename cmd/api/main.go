package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mobdesk/helpdesk-core/internal/api/http"
	"github.com/mobdesk/helpdesk-core/internal/api/http/handlers"
	"github.com/mobdesk/helpdesk-core/internal/auth"
	"github.com/mobdesk/helpdesk-core/internal/config"
	"github.com/mobdesk/helpdesk-core/internal/events"
	"github.com/mobdesk/helpdesk-core/internal/observability"
	"github.com/mobdesk/helpdesk-core/internal/persistence"
	"github.com/mobdesk/helpdesk-core/internal/repository"
	"github.com/mobdesk/helpdesk-core/internal/service"
	"github.com/mobdesk/helpdesk-core/internal/session"
	"github.com/mobdesk/helpdesk-core/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	resolver := session.NewResolver(profileRepo, redis, logger)
	unwatch := resolver.Watch(dispatcher, func(sess session.Session) {
		if sess.SignedIn() {
			logger.Info("session resolved",
				zap.String("user_id", sess.User.ID),
				zap.String("role", string(sess.Role.OrAgent())))
			return
		}
		logger.Info("session cleared")
	})
	defer unwatch()

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	ticketService := service.NewTicketService(ticketRepo, dispatcher)
	detailService := service.NewDetailService(ticketRepo, commentRepo, dispatcher)
	profileService := service.NewProfileService(profileRepo, ticketRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)
	defer notificationService.Shutdown()

	metrics := observability.NewMetrics()
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo, resolver)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService, detailService),
		Profile:        handlers.NewProfileHandler(profileService),
		Catalog:        handlers.NewCatalogHandler(),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
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
