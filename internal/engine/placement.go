package engine

import (
	"fmt"
	"math"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/pkg/errors"
)

// PlacementOptions - параметры расстановки точек доступа
type PlacementOptions struct {
	OverlapFactor float64
	MountHeightM  float64
	Technology    string
	FrequencyMHz  float64
	TxPowerDbm    float64
}

// PlanAccessPoints рассчитывает число точек доступа и их координаты.
//
// На каждый этаж ставится ceil(floorArea / (π r² · overlap)) точек, но не меньше одной.
// Сумма ограничена ceil(totalArea / (π r² · overlap)); лишние точки снимаются
// с последнего этажа, затем с предыдущих.
func PlanAccessPoints(b domain.Building, budget domain.LinkBudget, opts PlacementOptions) (*domain.AccessPointPlan, error) {
	if err := ValidateBuilding(b); err != nil {
		return nil, err
	}

	radius := budget.MaxCoverageRadiusM
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, errors.ErrInfeasibleLinkBudget.WithDetails(map[string]interface{}{
			"available_path_loss_db": budget.AvailablePathLossDb,
			"max_coverage_radius_m":  radius,
		})
	}

	overlap := opts.OverlapFactor
	if overlap <= 0 {
		overlap = DefaultOverlapFactor
	}

	coverageArea := math.Pi * radius * radius * overlap

	perFloor := int(math.Ceil(b.FloorArea() / coverageArea))
	if perFloor < 1 {
		perFloor = 1
	}
	globalLimit := int(math.Ceil(b.TotalArea() / coverageArea))
	if globalLimit < 1 {
		globalLimit = 1
	}

	required := make([]int, b.FloorCount)
	counts := make([]int, b.FloorCount)
	total := 0
	for f := range counts {
		required[f] = perFloor
		counts[f] = perFloor
		total += perFloor
	}

	excess := total - globalLimit
	for f := b.FloorCount - 1; f >= 0 && excess > 0; f-- {
		cut := excess
		if cut > counts[f] {
			cut = counts[f]
		}
		counts[f] -= cut
		excess -= cut
	}

	plan := &domain.AccessPointPlan{
		CoverageAreaPerAPM2: coverageArea,
		RequiredPerFloor:    required,
		APsPerFloor:         counts,
		GlobalLimit:         globalLimit,
		AccessPoints:        make([]domain.AccessPoint, 0, globalLimit),
	}

	for f := 0; f < b.FloorCount; f++ {
		positions := FloorLayout(b, required[f])
		z := float64(f)*b.FloorHeightM + opts.MountHeightM
		for i := 0; i < counts[f]; i++ {
			plan.AccessPoints = append(plan.AccessPoints, domain.AccessPoint{
				ID:              fmt.Sprintf("ap-f%d-%d", f, i+1),
				X:               positions[i].X,
				Y:               positions[i].Y,
				Z:               z,
				FloorLevel:      f,
				CoverageRadiusM: radius,
				Technology:      opts.Technology,
				FrequencyMHz:    opts.FrequencyMHz,
				TxPowerDbm:      opts.TxPowerDbm,
			})
		}
	}
	plan.Recommended = len(plan.AccessPoints)

	return plan, nil
}

// FloorLayout - позиции n точек доступа на плане этажа.
// Одна точка - в центре; иначе центры ячеек сетки cols×rows по строкам.
func FloorLayout(b domain.Building, n int) []Point2D {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point2D{{X: b.LengthM / 2, Y: b.WidthM / 2}}
	}

	cols := int(math.Ceil(math.Sqrt(float64(n) * b.LengthM / b.WidthM)))
	if cols > n {
		cols = n
	}
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Ceil(float64(n) / float64(cols)))

	cellW := b.LengthM / float64(cols)
	cellH := b.WidthM / float64(rows)

	positions := make([]Point2D, 0, n)
	for r := 0; r < rows && len(positions) < n; r++ {
		for c := 0; c < cols && len(positions) < n; c++ {
			positions = append(positions, Point2D{
				X: (float64(c) + 0.5) * cellW,
				Y: (float64(r) + 0.5) * cellH,
			})
		}
	}
	return positions
}
