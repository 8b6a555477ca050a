package utils

import "math"

// Distance3D вычисляет евклидово расстояние между двумя точками в метрах
func Distance3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	dz := z2 - z1
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsFinitePositive проверяет, что значение конечно и больше нуля
func IsFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
