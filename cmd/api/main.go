package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/member-directory/internal/api/http"
	"github.com/spec-kit/member-directory/internal/api/http/handlers"
	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/config"
	"github.com/spec-kit/member-directory/internal/events"
	"github.com/spec-kit/member-directory/internal/mail"
	"github.com/spec-kit/member-directory/internal/media"
	"github.com/spec-kit/member-directory/internal/observability"
	"github.com/spec-kit/member-directory/internal/persistence"
	"github.com/spec-kit/member-directory/internal/repository"
	"github.com/spec-kit/member-directory/internal/service"
	"github.com/spec-kit/member-directory/internal/worker"
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
	memberRepo := repository.NewMemberRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	storage, err := media.NewS3Storage(ctx, cfg.Media)
	if err != nil {
		logger.Fatal("failed to init media storage", zap.Error(err))
	}
	processor := media.NewProcessor(cfg.Media.MaxUploadSize, cfg.Media.BoundingSize)

	authService := service.NewAuthService(*cfg, memberRepo)
	membershipService := service.NewMembershipService(service.MembershipDependencies{
		MemberRepo: memberRepo,
		Dispatcher: dispatcher,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	directoryService := service.NewDirectoryService(memberRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	photoService := service.NewPhotoService(memberRepo, processor, storage, logger)

	mailer := mail.NewSMTPMailer(cfg.Mail)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger, cfg.Mail)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), memberRepo)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Media.MaxUploadSize) * 2,
	})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService, membershipService)
	membersHandler := handlers.NewMembersHandler(directoryService, membershipService, photoService)
	adminHandler := handlers.NewAdminHandler(membershipService, categoryService, photoService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		Members:        membersHandler,
		Admin:          adminHandler,
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
