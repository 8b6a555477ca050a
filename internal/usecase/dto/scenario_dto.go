package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/coverage-planner/internal/domain"
)

// ScenarioRequest - создание или замена сценария
type ScenarioRequest struct {
	Name        string                 `json:"name" validate:"required,min=1,max=200"`
	Description string                 `json:"description,omitempty" validate:"max=2000"`
	Tags        []string               `json:"tags,omitempty" validate:"max=20,dive,min=1,max=50"`
	Input       domain.SimulationInput `json:"input"`
}

// ScenarioListRequest - фильтр списка сценариев
type ScenarioListRequest struct {
	Tags   []string `query:"tags" validate:"max=20"`
	Limit  int      `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int      `query:"offset" validate:"omitempty,min=0"`
}

// ScenarioResponse - сохранённый сценарий
type ScenarioResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Tags        []string               `json:"tags"`
	Input       domain.SimulationInput `json:"input"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ScenarioListResponse - страница сценариев
type ScenarioListResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// NewScenarioResponse конвертирует доменный сценарий в ответ API
func NewScenarioResponse(s *domain.Scenario) ScenarioResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return ScenarioResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Tags:        tags,
		Input:       s.Input,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
