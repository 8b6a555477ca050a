package engine

import (
	"math"

	"github.com/coverage-planner/internal/domain"
)

// EstimateCapacity - сколько точек доступа нужно по числу клиентов
func EstimateCapacity(b domain.Building, densityPer100m2 float64, maxClientsPerAP int) domain.CapacityEstimate {
	estimate := domain.CapacityEstimate{MaxClientsPerAP: maxClientsPerAP}
	if densityPer100m2 <= 0 || maxClientsPerAP <= 0 {
		return estimate
	}

	estimate.UsersPerFloor = int(math.Ceil(b.FloorArea() / 100 * densityPer100m2))
	estimate.TotalUsers = estimate.UsersPerFloor * b.FloorCount

	perFloor := int(math.Ceil(float64(estimate.UsersPerFloor) / float64(maxClientsPerAP)))
	estimate.APsForCapacity = perFloor * b.FloorCount

	return estimate
}
