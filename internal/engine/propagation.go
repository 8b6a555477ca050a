package engine

import (
	"math"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/pkg/utils"
)

// PropagationOptions - настраиваемые константы модели распространения
type PropagationOptions struct {
	// InterFloorAttenuationDb - потери на каждое перекрытие между этажами
	InterFloorAttenuationDb float64
	// Materials - таблица материалов; nil означает встроенный каталог
	Materials domain.MaterialTable
}

// Propagator считает уровень сигнала в точках одного здания.
// Препятствия заранее проверены и сгруппированы по этажам.
type Propagator struct {
	building     domain.Building
	byFloor      map[int][]domain.Obstacle
	materials    domain.MaterialTable
	interFloorDb float64
}

// NewPropagator проверяет здание и препятствия и готовит их к трассировке
func NewPropagator(b domain.Building, obstacles []domain.Obstacle, opts PropagationOptions) (*Propagator, error) {
	if err := ValidateBuilding(b); err != nil {
		return nil, err
	}

	materials := opts.Materials
	if materials == nil {
		materials = domain.DefaultMaterialTable()
	}

	if _, err := ValidateObstacles(b, obstacles, materials); err != nil {
		return nil, err
	}

	byFloor := make(map[int][]domain.Obstacle)
	for _, o := range obstacles {
		byFloor[o.FloorLevel] = append(byFloor[o.FloorLevel], o)
	}

	return &Propagator{
		building:     b,
		byFloor:      byFloor,
		materials:    materials,
		interFloorDb: opts.InterFloorAttenuationDb,
	}, nil
}

// Building возвращает здание, для которого построен Propagator
func (p *Propagator) Building() domain.Building {
	return p.building
}

// FloorOf - этаж точки по высоте: floor(z / floorHeight), без ограничения диапазона.
// На границе этажей точка относится к верхнему этажу.
func (p *Propagator) FloorOf(z float64) int {
	return int(math.Floor(z / p.building.FloorHeightM))
}

// ObstacleLoss - затухание на препятствиях этажей точки доступа и приёмника
func (p *Propagator) ObstacleLoss(from, to Point2D, apFloor, sampleFloor int) float64 {
	total := p.floorObstacleLoss(from, to, apFloor)
	if sampleFloor != apFloor {
		total += p.floorObstacleLoss(from, to, sampleFloor)
	}
	return total
}

// floorObstacleLoss - ObstacleAttenuation по препятствиям одного этажа.
// Материалы проверены в NewPropagator, ошибка здесь невозможна.
func (p *Propagator) floorObstacleLoss(from, to Point2D, floor int) float64 {
	obstacles := p.byFloor[floor]
	if len(obstacles) == 0 {
		return 0
	}
	loss, _ := ObstacleAttenuation(from, to, []int{floor}, obstacles, p.materials)
	return loss
}

// SignalFrom - уровень сигнала одной точки доступа в точке pt, dBm
func (p *Propagator) SignalFrom(pt domain.Point3D, ap domain.AccessPoint) float64 {
	distance := utils.Distance3D(pt.X, pt.Y, pt.Z, ap.X, ap.Y, ap.Z)
	if distance == 0 {
		return ap.TxPowerDbm
	}

	fspl := FreeSpacePathLoss(distance, ap.FrequencyMHz)

	floorDifference := math.Abs(float64(p.FloorOf(pt.Z) - ap.FloorLevel))
	floorLoss := floorDifference * p.interFloorDb

	obstacleLoss := p.ObstacleLoss(
		Point2D{X: ap.X, Y: ap.Y},
		Point2D{X: pt.X, Y: pt.Y},
		ap.FloorLevel,
		p.FloorOf(pt.Z),
	)

	return ap.TxPowerDbm - fspl - obstacleLoss - floorLoss
}

// SignalStrength - максимум по всем точкам доступа; без точек доступа NoSignalDbm
func (p *Propagator) SignalStrength(pt domain.Point3D, aps []domain.AccessPoint) float64 {
	best := NoSignalDbm
	for i, ap := range aps {
		s := p.SignalFrom(pt, ap)
		if i == 0 || s > best {
			best = s
		}
	}
	return best
}

// ComputeSignalStrength - разовый расчёт уровня сигнала в точке.
// Точки доступа проверяются так же, как препятствия.
func ComputeSignalStrength(
	pt domain.Point3D,
	aps []domain.AccessPoint,
	b domain.Building,
	obstacles []domain.Obstacle,
	opts PropagationOptions,
) (float64, error) {
	p, err := NewPropagator(b, obstacles, opts)
	if err != nil {
		return 0, err
	}
	if err := ValidateAccessPoints(b, aps); err != nil {
		return 0, err
	}
	return p.SignalStrength(pt, aps), nil
}
