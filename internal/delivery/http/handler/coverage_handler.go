package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/pkg/utils"
	"github.com/coverage-planner/internal/pkg/validator"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/usecase/dto"
)

// CoverageHandler - расчёт покрытия: бюджет линии, расстановка точек доступа, тепловые карты
type CoverageHandler struct {
	coverageUC *usecase.CoverageUseCase
	logger     *zap.Logger
}

// NewCoverageHandler - создание нового CoverageHandler
func NewCoverageHandler(coverageUC *usecase.CoverageUseCase, logger *zap.Logger) *CoverageHandler {
	return &CoverageHandler{
		coverageUC: coverageUC,
		logger:     logger,
	}
}

// LinkBudget godoc
// @Summary Бюджет радиолинии
// @Description Допустимые потери на трассе и максимальный радиус покрытия в свободном пространстве
// @Tags Coverage
// @Accept json
// @Produce json
// @Param request body dto.LinkBudgetRequest true "Параметры линии"
// @Success 200 {object} utils.SuccessResponse{data=dto.LinkBudgetResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/link-budget [post]
func (h *CoverageHandler) LinkBudget(c *fiber.Ctx) error {
	var req dto.LinkBudgetRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.coverageUC.ComputeLinkBudget(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// PlanAccessPoints godoc
// @Summary Расстановка точек доступа
// @Description Рекомендуемое количество и координаты точек доступа по этажам
// @Tags Coverage
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Здание и параметры линии"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/access-points/plan [post]
func (h *CoverageHandler) PlanAccessPoints(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.coverageUC.PlanAccessPoints(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Plan.AccessPoints),
	})
}

// Signal godoc
// @Summary Уровень сигнала в точках
// @Tags Coverage
// @Accept json
// @Produce json
// @Param request body dto.SignalRequest true "Здание, препятствия, точки доступа и точки приёма"
// @Success 200 {object} utils.SuccessResponse{data=dto.SignalResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/signal [post]
func (h *CoverageHandler) Signal(c *fiber.Ctx) error {
	var req dto.SignalRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.coverageUC.ComputeSignalStrength(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Results),
	})
}

// Heatmap godoc
// @Summary Тепловая карта сигнала
// @Description Горизонтальный срез этажа или вертикальный разрез здания
// @Tags Coverage
// @Accept json
// @Produce json
// @Param request body dto.HeatmapRequest true "Здание, точки доступа и вид"
// @Success 200 {object} utils.SuccessResponse{data=dto.HeatmapResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/heatmap [post]
func (h *CoverageHandler) Heatmap(c *fiber.Ctx) error {
	var req dto.HeatmapRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.coverageUC.SampleHeatmap(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// Simulate godoc
// @Summary Полный расчёт покрытия
// @Description Бюджет линии, расстановка точек доступа, горизонтальная и вертикальная тепловые карты
// @Tags Coverage
// @Accept json
// @Produce json
// @Param request body dto.SimulateRequest true "Входные данные моделирования"
// @Success 200 {object} utils.SuccessResponse{data=dto.SimulateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/simulate [post]
func (h *CoverageHandler) Simulate(c *fiber.Ctx) error {
	var req dto.SimulateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	start := time.Now()
	result, err := h.coverageUC.Simulate(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.AccessPoints),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// parseBody - разбор JSON тела и валидация тегов
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return validator.Validate(req)
}
