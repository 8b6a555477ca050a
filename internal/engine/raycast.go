package engine

import (
	"math"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/pkg/errors"
)

// Point2D - точка на плане этажа
type Point2D struct {
	X float64
	Y float64
}

// SegmentsIntersect - параметрический тест пересечения отрезков p1p2 и p3p4.
// Почти параллельные отрезки (|знаменатель| < eps) не пересекаются.
func SegmentsIntersect(p1, p2, p3, p4 Point2D) bool {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < parallelEpsilon {
		return false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / denom
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / denom

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// RayCrossesObstacle - пересекает ли луч хотя бы одну из четырёх сторон прямоугольника
func RayCrossesObstacle(from, to Point2D, o domain.Obstacle) bool {
	corners := [4]Point2D{
		{X: o.X, Y: o.Y},
		{X: o.X + o.Width, Y: o.Y},
		{X: o.X + o.Width, Y: o.Y + o.Height},
		{X: o.X, Y: o.Y + o.Height},
	}
	for i := range corners {
		if SegmentsIntersect(from, to, corners[i], corners[(i+1)%4]) {
			return true
		}
	}
	return false
}

// ObstacleAttenuation суммирует затухание всех препятствий на этажах floors,
// которые пересекает луч from→to. Каждое пересечённое препятствие даёт
// полное затухание материала независимо от длины пути внутри него.
func ObstacleAttenuation(from, to Point2D, floors []int, obstacles []domain.Obstacle, materials domain.MaterialTable) (float64, error) {
	total := 0.0
	for _, o := range obstacles {
		if !containsFloor(floors, o.FloorLevel) {
			continue
		}
		material, ok := materials[o.MaterialID]
		if !ok {
			return 0, errors.ErrUnresolvedReference.WithDetails(map[string]interface{}{
				"obstacle_id": o.ID,
				"material_id": o.MaterialID,
			})
		}
		if RayCrossesObstacle(from, to, o) {
			total += material.AttenuationDb
		}
	}
	return total, nil
}

func containsFloor(floors []int, floor int) bool {
	for _, f := range floors {
		if f == floor {
			return true
		}
	}
	return false
}
