package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/coverage-planner/internal/pkg/utils"
	"github.com/coverage-planner/internal/usecase"
	"github.com/coverage-planner/internal/usecase/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler - выгрузка результатов в XLSX
type ExportHandler struct {
	exportUC *usecase.ExportUseCase
	logger   *zap.Logger
}

func NewExportHandler(exportUC *usecase.ExportUseCase, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportUC: exportUC,
		logger:   logger,
	}
}

// ExportWorkbook godoc
// @Summary Расчёт покрытия в XLSX
// @Tags Export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.SimulateRequest true "Входные данные моделирования"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/simulate/export.xlsx [post]
func (h *ExportHandler) ExportWorkbook(c *fiber.Ctx) error {
	var req dto.SimulateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	data, err := h.exportUC.ExportWorkbook(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="coverage.xlsx"`)
	return c.Send(data)
}
