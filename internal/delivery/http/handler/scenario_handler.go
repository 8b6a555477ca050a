package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/pkg/utils"
	"github.com/coverage-planner/internal/pkg/validator"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/usecase/dto"
)

// ScenarioHandler - CRUD сохранённых сценариев
type ScenarioHandler struct {
	scenarioUC *usecase.ScenarioUseCase
	logger     *zap.Logger
}

func NewScenarioHandler(scenarioUC *usecase.ScenarioUseCase, logger *zap.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioUC: scenarioUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Сохранить сценарий
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param request body dto.ScenarioRequest true "Сценарий"
// @Success 201 {object} utils.SuccessResponse{data=dto.ScenarioResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/scenarios [post]
func (h *ScenarioHandler) Create(c *fiber.Ctx) error {
	var req dto.ScenarioRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scenarioUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список сценариев
// @Tags Scenarios
// @Produce json
// @Param tags query []string false "Фильтр по тегам (все должны совпасть)" collectionFormat(csv)
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение"
// @Success 200 {object} utils.SuccessResponse{data=dto.ScenarioListResponse}
// @Router /api/v1/scenarios [get]
func (h *ScenarioHandler) List(c *fiber.Ctx) error {
	var req dto.ScenarioListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scenarioUC.List(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:  result.Total,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

// Get godoc
// @Summary Сценарий по ID
// @Tags Scenarios
// @Produce json
// @Param id path string true "UUID сценария"
// @Success 200 {object} utils.SuccessResponse{data=dto.ScenarioResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/scenarios/{id} [get]
func (h *ScenarioHandler) Get(c *fiber.Ctx) error {
	id, err := scenarioID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scenarioUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Заменить сценарий
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "UUID сценария"
// @Param request body dto.ScenarioRequest true "Сценарий"
// @Success 200 {object} utils.SuccessResponse{data=dto.ScenarioResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/scenarios/{id} [put]
func (h *ScenarioHandler) Update(c *fiber.Ctx) error {
	id, err := scenarioID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ScenarioRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scenarioUC.Update(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удалить сценарий
// @Tags Scenarios
// @Param id path string true "UUID сценария"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/scenarios/{id} [delete]
func (h *ScenarioHandler) Delete(c *fiber.Ctx) error {
	id, err := scenarioID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.scenarioUC.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Simulate godoc
// @Summary Расчёт покрытия для сохранённого сценария
// @Description Входные данные берутся из сценария, из тела - только параметры сетки и срезов
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "UUID сценария"
// @Param request body dto.SimulateRequest false "Параметры сетки"
// @Success 200 {object} utils.SuccessResponse{data=dto.SimulateResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/scenarios/{id}/simulate [post]
func (h *ScenarioHandler) Simulate(c *fiber.Ctx) error {
	id, err := scenarioID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var opts dto.SimulateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
		}
	}

	result, err := h.scenarioUC.Simulate(c.UserContext(), id, opts)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.AccessPoints),
	})
}

func scenarioID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithMessage("Invalid scenario id")
	}
	return id, nil
}
