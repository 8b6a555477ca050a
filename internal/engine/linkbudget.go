package engine

import (
	"math"

	"github.com/coverage-planner/internal/domain"
)

// FreeSpacePathLoss - FSPL(d, f) = 20·log10(d) + 20·log10(f_GHz) + 32.45
func FreeSpacePathLoss(distanceM, frequencyMHz float64) float64 {
	return 20*math.Log10(distanceM) + 20*math.Log10(frequencyMHz/1000) + FSPLConstantDb
}

// ComputeLinkBudget считает допустимые потери и обращает FSPL в радиус покрытия.
// Препятствия здесь не учитываются, они применяются к каждому лучу отдельно.
// Невыполнимый бюджет даёт нулевой радиус.
func ComputeLinkBudget(p domain.LinkParameters) domain.LinkBudget {
	budget := domain.LinkBudget{
		AvailablePathLossDb: p.TxPowerDbm - p.TargetRssiDbm - p.SafetyMarginDb,
	}

	if !(budget.AvailablePathLossDb > 0) || !(p.FrequencyMHz > 0) {
		return budget
	}

	exponent := (budget.AvailablePathLossDb - 20*math.Log10(p.FrequencyMHz/1000) - FSPLConstantDb) / 20
	radius := math.Pow(10, exponent)
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return budget
	}

	budget.MaxCoverageRadiusM = radius
	return budget
}
