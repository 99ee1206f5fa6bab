package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/warehouse-service/internal/api/http"
	"github.com/spec-kit/warehouse-service/internal/api/http/handlers"
	"github.com/spec-kit/warehouse-service/internal/auth"
	"github.com/spec-kit/warehouse-service/internal/config"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/observability"
	"github.com/spec-kit/warehouse-service/internal/persistence"
	"github.com/spec-kit/warehouse-service/internal/repository"
	"github.com/spec-kit/warehouse-service/internal/service"
	"github.com/spec-kit/warehouse-service/internal/worker"
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

	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer closeStore()

	userRepo := repository.NewUserRepository(store)
	sessionRepo := repository.NewSessionRepository(store)
	supplierRepo := repository.NewSupplierRepository(store)
	warehouseRepo := repository.NewWarehouseRepository(store)
	auditRepo := repository.NewAuditRepository(store)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
	})
	supplierService := service.NewSupplierService(supplierRepo, authService, dispatcher)
	warehouseService := service.NewWarehouseService(warehouseRepo, authService, dispatcher)
	auditService := service.NewAuditService(dispatcher, auditRepo, logger)

	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenIssuer())

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:           handlers.NewAuthHandler(authService),
		Suppliers:      handlers.NewSuppliersHandler(supplierService),
		Warehouses:     handlers.NewWarehousesHandler(warehouseService),
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

func newStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		logger.Info("using in-memory storage")
		return persistence.NewMemoryStore(), func() {}, nil
	case "file":
		store, err := persistence.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using file storage", zap.String("path", cfg.Storage.FilePath))
		return store, func() {}, nil
	case "redis":
		store := persistence.NewRedisStore(cfg.Redis, logger)
		return store, store.Close, nil
	case "postgres":
		store, err := persistence.NewPostgresStore(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER: %q", cfg.Storage.Driver)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
