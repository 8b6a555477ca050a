package main

// @title Coverage Planner API
// @version 1.0.0
// @description Сервис планирования беспроводного покрытия внутри зданий: бюджет радиолинии, расстановка точек доступа, тепловые карты сигнала с учётом стен и перекрытий.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/coverage-planner/docs"
	"github.com/coverage-planner/internal/config"
	httpDelivery "github.com/coverage-planner/internal/delivery/http"
	"github.com/coverage-planner/internal/delivery/http/handler"
	"github.com/coverage-planner/internal/observability"
	"github.com/coverage-planner/internal/pkg/logger"
	"github.com/coverage-planner/internal/repository/cache"
	"github.com/coverage-planner/internal/repository/postgres"
	"github.com/coverage-planner/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Coverage Planner API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("scenarios_enabled", cfg.Database.Enabled),
	)

	// 3. Tracing and metrics
	shutdownTracing, err := observability.InitTracing(context.Background(), cfg.Tracing, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	checkers := map[string]handler.HealthChecker{"redis": redisClient}

	// 5. Connect to PostgreSQL (сценарии), если включено
	var db *postgres.DB
	if cfg.Database.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(migrateCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}

		checkers["postgres"] = db
		log.Info("PostgreSQL connected")
	}

	// 6. Use cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	coverageUC := usecase.NewCoverageUseCase(cacheRepo, collector, log, cfg.Simulation, cfg.Cache)
	catalogUC := usecase.NewCatalogUseCase()
	exportUC := usecase.NewExportUseCase(coverageUC, log)

	// 7. HTTP handlers
	handlers := httpDelivery.Handlers{
		Coverage: handler.NewCoverageHandler(coverageUC, log),
		Catalog:  handler.NewCatalogHandler(catalogUC),
		Export:   handler.NewExportHandler(exportUC, log),
		Health:   handler.NewHealthHandler(checkers, log),
	}
	if db != nil {
		scenarioUC := usecase.NewScenarioUseCase(postgres.NewScenarioRepository(db), coverageUC, log)
		handlers.Scenario = handler.NewScenarioHandler(scenarioUC, log)
	}

	// 8. HTTP server
	server := httpDelivery.NewServer(cfg, log, collector, handlers)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
