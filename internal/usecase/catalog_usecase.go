package usecase

import (
	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/usecase/dto"
)

// CatalogUseCase отдаёт справочники технологий и материалов
type CatalogUseCase struct{}

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

func (uc *CatalogUseCase) Technologies() *dto.TechnologiesResponse {
	return &dto.TechnologiesResponse{Technologies: domain.Technologies()}
}

func (uc *CatalogUseCase) Materials() *dto.MaterialsResponse {
	return &dto.MaterialsResponse{Materials: domain.Materials()}
}
