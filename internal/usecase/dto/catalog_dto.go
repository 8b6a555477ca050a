package dto

import "github.com/coverage-planner/internal/domain"

// TechnologiesResponse - каталог технологий
type TechnologiesResponse struct {
	Technologies []domain.TechnologyProfile `json:"technologies"`
}

// MaterialsResponse - таблица материалов
type MaterialsResponse struct {
	Materials []domain.WallMaterial `json:"materials"`
}
