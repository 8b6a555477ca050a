// Package engine implements the indoor radio propagation model: link budget,
// free-space path loss, obstacle ray casting, inter-floor penetration loss,
// access point placement and heatmap sampling.
//
// All functions are pure: they read their arguments and return new values,
// so independent computations may run concurrently.
package engine

const (
	// FSPLConstantDb - константа FSPL для d в метрах и f в ГГц
	FSPLConstantDb = 32.45

	// NoSignalDbm - уровень сигнала при отсутствии точек доступа
	NoSignalDbm = -150.0

	// DefaultOverlapFactor - 20% проектного перекрытия зон
	DefaultOverlapFactor = 0.8

	// DefaultMountHeightM - высота подвеса точки доступа над полом
	DefaultMountHeightM = 2.7

	// DefaultGridResolution - размер сетки тепловой карты по каждой оси
	DefaultGridResolution = 50

	// parallelEpsilon - порог знаменателя, ниже которого отрезки считаются параллельными
	parallelEpsilon = 1e-10
)
