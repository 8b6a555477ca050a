package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/coverage-planner/internal/domain"
)

// SummarizeHeatmap - минимум, максимум, среднее и доля ячеек не хуже целевого RSSI
func SummarizeHeatmap(grid [][]domain.SamplePoint, targetRssiDbm float64) domain.HeatmapSummary {
	summary := domain.HeatmapSummary{
		Counts: make(map[domain.SignalQuality]int, len(domain.SignalQualities)),
	}
	for _, q := range domain.SignalQualities {
		summary.Counts[q] = 0
	}

	values := make([]float64, 0, len(grid)*len(grid))
	covered := 0
	for _, row := range grid {
		for _, s := range row {
			values = append(values, s.SignalStrengthDbm)
			summary.Counts[s.Quality]++
			if s.SignalStrengthDbm >= targetRssiDbm {
				covered++
			}
		}
	}

	summary.Samples = len(values)
	if summary.Samples == 0 {
		return summary
	}

	summary.MinDbm = floats.Min(values)
	summary.MaxDbm = floats.Max(values)
	summary.MeanDbm = stat.Mean(values, nil)
	summary.CoveragePercent = math.Round(float64(covered)/float64(summary.Samples)*10000) / 100

	return summary
}
