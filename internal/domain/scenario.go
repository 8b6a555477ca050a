package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimulationInput - полный набор входных данных конвейера расчёта.
// AccessPoints, если заданы, отключают автоматическую расстановку.
type SimulationInput struct {
	TechnologyID string         `json:"technology_id"`
	Band         string         `json:"band"`
	Building     Building       `json:"building"`
	Obstacles    []Obstacle     `json:"obstacles"`
	Link         LinkParameters `json:"link"`
	AccessPoints []AccessPoint  `json:"access_points,omitempty"`
}

// Scenario - сохранённые входные данные (не результаты расчёта)
type Scenario struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description,omitempty" db:"description"`
	Tags        []string        `json:"tags,omitempty" db:"tags"`
	Input       SimulationInput `json:"input" db:"-"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}
