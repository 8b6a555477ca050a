package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/coverage-planner/internal/observability"
)

// Metrics - счётчики и гистограмма длительности HTTP запросов.
// Метка route - шаблон маршрута, а не фактический путь.
func Metrics(collector *observability.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		collector.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
