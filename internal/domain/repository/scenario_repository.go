package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/coverage-planner/internal/domain"
)

// ScenarioFilter - фильтр списка сценариев
type ScenarioFilter struct {
	Tags   []string
	Limit  int
	Offset int
}

// ScenarioRepository - хранилище сохранённых входных данных расчёта
type ScenarioRepository interface {
	Create(ctx context.Context, scenario *domain.Scenario) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Scenario, error)
	List(ctx context.Context, filter ScenarioFilter) ([]*domain.Scenario, int, error)
	Update(ctx context.Context, scenario *domain.Scenario) error
	Delete(ctx context.Context, id uuid.UUID) error
}
