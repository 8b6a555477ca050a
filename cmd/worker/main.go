package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/coverage-planner/internal/config"
	"github.com/coverage-planner/internal/observability"
	"github.com/coverage-planner/internal/pkg/logger"
	"github.com/coverage-planner/internal/repository/cache"
	"github.com/coverage-planner/internal/repository/postgres"
	redisRepo "github.com/coverage-planner/internal/repository/redis"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/worker"
	"github.com/coverage-planner/internal/worker/simulation"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Coverage Simulation Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	shutdownTracing, err := observability.InitTracing(context.Background(), cfg.Tracing, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Use cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	coverageUC := usecase.NewCoverageUseCase(cacheRepo, collector, log, cfg.Simulation, cfg.Cache)

	// Сценарии доступны только при включённом Postgres
	var scenarios simulation.ScenarioRunner
	if cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		scenarios = usecase.NewScenarioUseCase(postgres.NewScenarioRepository(db), coverageUC, log)
	}

	// 5. Workers
	simulationWorker := simulation.NewSimulationWorker(streamRepo, coverageUC, scenarios, cfg.Worker, log)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(simulationWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 6. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), worker.DefaultShutdownTimeout)
	defer stopCancel()

	if err := workerManager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
