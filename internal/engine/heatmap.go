package engine

import (
	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/pkg/errors"
)

// HeatmapOptions - параметры сетки
type HeatmapOptions struct {
	Resolution    int
	TargetRssiDbm float64
}

// ClassifySignal относит уровень сигнала к категории относительно целевого RSSI
func ClassifySignal(strengthDbm, targetRssiDbm float64) domain.SignalQuality {
	diff := strengthDbm - targetRssiDbm
	switch {
	case diff >= 10:
		return domain.QualityExcellent
	case diff >= 0:
		return domain.QualityGood
	case diff >= -10:
		return domain.QualityFair
	case diff >= -20:
		return domain.QualityPoor
	default:
		return domain.QualityVeryPoor
	}
}

// SampleHeatmap строит сетку resolution×resolution в центрах ячеек.
// grid[row][col]: для горизонтального среза row идёт по y, col по x;
// для вертикального row идёт по z снизу вверх, col по x.
func (p *Propagator) SampleHeatmap(view domain.HeatmapView, aps []domain.AccessPoint, opts HeatmapOptions) ([][]domain.SamplePoint, error) {
	if opts.Resolution < 1 {
		return nil, errors.ErrInvalidView.WithDetails(map[string]interface{}{
			"resolution": opts.Resolution,
		})
	}

	b := p.building
	res := opts.Resolution
	stepX := b.LengthM / float64(res)

	var point func(row, col int) domain.Point3D

	switch view.Kind {
	case domain.ViewHorizontal:
		if view.FloorLevel < 0 || view.FloorLevel >= b.FloorCount {
			return nil, errors.ErrInvalidView.WithDetails(map[string]interface{}{
				"floor_level": view.FloorLevel,
				"floor_count": b.FloorCount,
			})
		}
		if view.HeightM < 0 || view.HeightM >= b.FloorHeightM {
			return nil, errors.ErrInvalidView.WithDetails(map[string]interface{}{
				"height_m":       view.HeightM,
				"floor_height_m": b.FloorHeightM,
			})
		}
		z := float64(view.FloorLevel)*b.FloorHeightM + view.HeightM
		stepY := b.WidthM / float64(res)
		point = func(row, col int) domain.Point3D {
			return domain.Point3D{
				X: (float64(col) + 0.5) * stepX,
				Y: (float64(row) + 0.5) * stepY,
				Z: z,
			}
		}

	case domain.ViewVertical:
		if view.SlicePercent < 0 || view.SlicePercent > 100 {
			return nil, errors.ErrInvalidView.WithDetails(map[string]interface{}{
				"slice_percent": view.SlicePercent,
			})
		}
		y := b.WidthM * view.SlicePercent / 100
		stepZ := b.TotalHeightM() / float64(res)
		point = func(row, col int) domain.Point3D {
			return domain.Point3D{
				X: (float64(col) + 0.5) * stepX,
				Y: y,
				Z: (float64(row) + 0.5) * stepZ,
			}
		}

	default:
		return nil, errors.ErrInvalidView.WithDetails(map[string]interface{}{
			"kind": view.Kind,
		})
	}

	grid := make([][]domain.SamplePoint, res)
	for row := 0; row < res; row++ {
		grid[row] = make([]domain.SamplePoint, res)
		for col := 0; col < res; col++ {
			pt := point(row, col)
			strength := p.SignalStrength(pt, aps)
			grid[row][col] = domain.SamplePoint{
				X:                 pt.X,
				Y:                 pt.Y,
				Z:                 pt.Z,
				SignalStrengthDbm: strength,
				Quality:           ClassifySignal(strength, opts.TargetRssiDbm),
			}
		}
	}

	return grid, nil
}

// SampleHeatmap - разовый расчёт тепловой карты для здания и препятствий
func SampleHeatmap(
	view domain.HeatmapView,
	b domain.Building,
	aps []domain.AccessPoint,
	obstacles []domain.Obstacle,
	propagation PropagationOptions,
	opts HeatmapOptions,
) ([][]domain.SamplePoint, error) {
	p, err := NewPropagator(b, obstacles, propagation)
	if err != nil {
		return nil, err
	}
	if err := ValidateAccessPoints(b, aps); err != nil {
		return nil, err
	}
	return p.SampleHeatmap(view, aps, opts)
}
