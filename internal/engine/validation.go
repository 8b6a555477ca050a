package engine

import (
	"math"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/pkg/errors"
	"github.com/coverage-planner/internal/pkg/utils"
)

// ValidateBuilding проверяет, что объём здания задан положительными величинами
func ValidateBuilding(b domain.Building) error {
	switch {
	case !utils.IsFinitePositive(b.LengthM):
		return invalidDimension("length_m", b.LengthM)
	case !utils.IsFinitePositive(b.WidthM):
		return invalidDimension("width_m", b.WidthM)
	case !utils.IsFinitePositive(b.FloorHeightM):
		return invalidDimension("floor_height_m", b.FloorHeightM)
	case b.FloorCount < 1:
		return invalidDimension("floor_count", float64(b.FloorCount))
	}
	return nil
}

// ValidateObstacles проверяет геометрию препятствий и ссылки на материал и этаж.
// Возвращает затухание каждого препятствия в порядке входного списка.
func ValidateObstacles(b domain.Building, obstacles []domain.Obstacle, materials domain.MaterialTable) ([]float64, error) {
	attenuation := make([]float64, len(obstacles))
	for i, o := range obstacles {
		if !utils.IsFinitePositive(o.Width) || !utils.IsFinitePositive(o.Height) {
			return nil, errors.ErrInvalidDimension.WithDetails(map[string]interface{}{
				"obstacle_id": o.ID,
				"width":       o.Width,
				"height":      o.Height,
			})
		}
		if math.IsNaN(o.X) || math.IsNaN(o.Y) || o.X < 0 || o.X > b.LengthM || o.Y < 0 || o.Y > b.WidthM {
			return nil, errors.ErrInvalidDimension.WithDetails(map[string]interface{}{
				"obstacle_id": o.ID,
				"x":           o.X,
				"y":           o.Y,
			})
		}

		material, ok := materials[o.MaterialID]
		if !ok {
			return nil, errors.ErrUnresolvedReference.WithDetails(map[string]interface{}{
				"obstacle_id": o.ID,
				"material_id": o.MaterialID,
			})
		}
		if o.FloorLevel < 0 || o.FloorLevel >= b.FloorCount {
			return nil, errors.ErrUnresolvedReference.WithDetails(map[string]interface{}{
				"obstacle_id": o.ID,
				"floor_level": o.FloorLevel,
				"floor_count": b.FloorCount,
			})
		}
		attenuation[i] = material.AttenuationDb
	}
	return attenuation, nil
}

// ValidateAccessPoints проверяет частоту, координаты и этаж каждой точки доступа
func ValidateAccessPoints(b domain.Building, aps []domain.AccessPoint) error {
	for i, ap := range aps {
		if !utils.IsFinitePositive(ap.FrequencyMHz) {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"access_point":  i,
				"frequency_mhz": ap.FrequencyMHz,
			})
		}
		if !isFinite(ap.X) || !isFinite(ap.Y) || !isFinite(ap.Z) || !isFinite(ap.TxPowerDbm) {
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"access_point": i,
			})
		}
		if ap.FloorLevel < 0 || ap.FloorLevel >= b.FloorCount {
			return errors.ErrUnresolvedReference.WithDetails(map[string]interface{}{
				"access_point": i,
				"floor_level":  ap.FloorLevel,
				"floor_count":  b.FloorCount,
			})
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidDimension(field string, value float64) error {
	return errors.ErrInvalidDimension.WithDetails(map[string]interface{}{
		"field": field,
		"value": value,
	})
}
