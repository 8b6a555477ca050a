package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coverage-planner/internal/pkg/utils"
	"github.com/coverage-planner/internal/usecase"
)

// CatalogHandler - справочники технологий и материалов
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// Technologies godoc
// @Summary Поддерживаемые технологии и диапазоны частот
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.TechnologiesResponse}
// @Router /api/v1/technologies [get]
func (h *CatalogHandler) Technologies(c *fiber.Ctx) error {
	result := h.catalogUC.Technologies()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Technologies),
	})
}

// Materials godoc
// @Summary Материалы стен и их затухание
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MaterialsResponse}
// @Router /api/v1/materials [get]
func (h *CatalogHandler) Materials(c *fiber.Ctx) error {
	result := h.catalogUC.Materials()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Materials),
	})
}
