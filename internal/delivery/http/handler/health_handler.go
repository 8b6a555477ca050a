package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - зависимость, которую проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка состояния сервиса и его зависимостей
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

func NewHealthHandler(checkers map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	deps := make(fiber.Map, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = err.Error()
			status = "degraded"
			continue
		}
		deps[name] = "ok"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now(),
	})
}
