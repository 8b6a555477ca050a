package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/config"
	"github.com/coverage-planner/internal/delivery/http/handler"
	"github.com/coverage-planner/internal/delivery/http/middleware"
	"github.com/coverage-planner/internal/observability"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/pkg/utils"
)

// Handlers - набор обработчиков сервера. ScenarioHandler может быть nil,
// если Postgres отключён: тогда маршруты /scenarios не регистрируются.
type Handlers struct {
	Coverage *handler.CoverageHandler
	Catalog  *handler.CatalogHandler
	Export   *handler.ExportHandler
	Scenario *handler.ScenarioHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	metrics  *observability.Collector
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Coverage Planner",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    16 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		metrics:  metrics,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	if s.metrics != nil {
		s.app.Use(middleware.Metrics(s.metrics))
	}
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Catalog
	api.Get("/technologies", s.handlers.Catalog.Technologies)
	api.Get("/materials", s.handlers.Catalog.Materials)

	// Coverage
	api.Post("/link-budget", s.handlers.Coverage.LinkBudget)
	api.Post("/access-points/plan", s.handlers.Coverage.PlanAccessPoints)
	api.Post("/signal", s.handlers.Coverage.Signal)
	api.Post("/heatmap", s.handlers.Coverage.Heatmap)
	api.Post("/simulate", s.handlers.Coverage.Simulate)
	api.Post("/simulate/export.xlsx", s.handlers.Export.ExportWorkbook)

	// Scenarios
	if s.handlers.Scenario != nil {
		scenarios := api.Group("/scenarios")
		scenarios.Post("/", s.handlers.Scenario.Create)
		scenarios.Get("/", s.handlers.Scenario.List)
		scenarios.Get("/:id", s.handlers.Scenario.Get)
		scenarios.Put("/:id", s.handlers.Scenario.Update)
		scenarios.Delete("/:id", s.handlers.Scenario.Delete)
		scenarios.Post("/:id/simulate", s.handlers.Scenario.Simulate)
	}
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			if e.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", e.Code), zap.Error(err))
			}
			appErr := errors.New("HTTP_ERROR", e.Message, e.Code)
			if e.Code == fiber.StatusNotFound {
				appErr = errors.New("NOT_FOUND", e.Message, e.Code)
			}
			return utils.SendError(c, appErr)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
