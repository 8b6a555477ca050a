package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverage-planner/internal/domain"
	"github.com/coverage-planner/internal/engine"
	"github.com/coverage-planner/internal/pkg/errors"
)

func TestClassifySignal(t *testing.T) {
	tests := []struct {
		strength float64
		want     domain.SignalQuality
	}{
		{-50, domain.QualityExcellent},
		{-60, domain.QualityExcellent},
		{-65, domain.QualityGood},
		{-70, domain.QualityGood},
		{-75, domain.QualityFair},
		{-80, domain.QualityFair},
		{-85, domain.QualityPoor},
		{-90, domain.QualityPoor},
		{-91, domain.QualityVeryPoor},
		{engine.NoSignalDbm, domain.QualityVeryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.ClassifySignal(tt.strength, -70), "strength %v", tt.strength)
	}
}

func TestSampleHeatmap_Horizontal(t *testing.T) {
	b := domain.Building{LengthM: 40, WidthM: 20, FloorHeightM: 3, FloorCount: 2}
	aps := []domain.AccessPoint{testAP(20, 10, 2.7, 0)}

	grid, err := engine.SampleHeatmap(
		domain.HeatmapView{Kind: domain.ViewHorizontal, FloorLevel: 1, HeightM: 1},
		b, aps, nil,
		engine.PropagationOptions{InterFloorAttenuationDb: 15},
		engine.HeatmapOptions{Resolution: 4, TargetRssiDbm: -70},
	)
	require.NoError(t, err)
	require.Len(t, grid, 4)

	first := grid[0][0]
	assert.Equal(t, 5.0, first.X)
	assert.Equal(t, 2.5, first.Y)
	assert.Equal(t, 4.0, first.Z)

	last := grid[3][3]
	assert.Equal(t, 35.0, last.X)
	assert.Equal(t, 17.5, last.Y)

	for _, row := range grid {
		require.Len(t, row, 4)
		for _, s := range row {
			assert.Equal(t, engine.ClassifySignal(s.SignalStrengthDbm, -70), s.Quality)
		}
	}
}

func TestSampleHeatmap_Vertical(t *testing.T) {
	b := domain.Building{LengthM: 40, WidthM: 20, FloorHeightM: 3, FloorCount: 2}
	aps := []domain.AccessPoint{testAP(20, 10, 2.7, 0)}

	grid, err := engine.SampleHeatmap(
		domain.HeatmapView{Kind: domain.ViewVertical, SlicePercent: 50},
		b, aps, nil,
		engine.PropagationOptions{InterFloorAttenuationDb: 15},
		engine.HeatmapOptions{Resolution: 4, TargetRssiDbm: -70},
	)
	require.NoError(t, err)
	require.Len(t, grid, 4)

	for row := range grid {
		for _, s := range grid[row] {
			assert.Equal(t, 10.0, s.Y)
		}
	}
	assert.Equal(t, 0.75, grid[0][0].Z)
	assert.Equal(t, 5.25, grid[3][0].Z)

	// верхний этаж теряет затухание перекрытия
	assert.Less(t, grid[3][1].SignalStrengthDbm, grid[1][1].SignalStrengthDbm)
}

func TestSampleHeatmap_NoAccessPoints(t *testing.T) {
	b := domain.Building{LengthM: 10, WidthM: 10, FloorHeightM: 3, FloorCount: 1}

	grid, err := engine.SampleHeatmap(
		domain.HeatmapView{Kind: domain.ViewHorizontal, HeightM: 1},
		b, nil, nil, engine.PropagationOptions{},
		engine.HeatmapOptions{Resolution: 3, TargetRssiDbm: -70},
	)
	require.NoError(t, err)
	for _, row := range grid {
		for _, s := range row {
			assert.Equal(t, engine.NoSignalDbm, s.SignalStrengthDbm)
			assert.Equal(t, domain.QualityVeryPoor, s.Quality)
		}
	}
}

func TestSampleHeatmap_InvalidView(t *testing.T) {
	b := domain.Building{LengthM: 10, WidthM: 10, FloorHeightM: 3, FloorCount: 1}
	p, err := engine.NewPropagator(b, nil, engine.PropagationOptions{})
	require.NoError(t, err)

	views := map[string]domain.HeatmapView{
		"unknown kind":       {Kind: "diagonal"},
		"floor out of range": {Kind: domain.ViewHorizontal, FloorLevel: 1},
		"height above floor": {Kind: domain.ViewHorizontal, HeightM: 3},
		"slice above 100":    {Kind: domain.ViewVertical, SlicePercent: 120},
		"negative slice":     {Kind: domain.ViewVertical, SlicePercent: -1},
	}
	for name, view := range views {
		t.Run(name, func(t *testing.T) {
			_, err := p.SampleHeatmap(view, nil, engine.HeatmapOptions{Resolution: 5})
			assert.ErrorIs(t, err, errors.ErrInvalidView)
		})
	}

	_, err = p.SampleHeatmap(domain.HeatmapView{Kind: domain.ViewVertical}, nil, engine.HeatmapOptions{})
	assert.ErrorIs(t, err, errors.ErrInvalidView)
}

func TestSummarizeHeatmap(t *testing.T) {
	grid := [][]domain.SamplePoint{
		{{SignalStrengthDbm: -50, Quality: domain.QualityExcellent}, {SignalStrengthDbm: -70, Quality: domain.QualityGood}},
		{{SignalStrengthDbm: -80, Quality: domain.QualityFair}, {SignalStrengthDbm: -100, Quality: domain.QualityVeryPoor}},
	}

	summary := engine.SummarizeHeatmap(grid, -70)

	assert.Equal(t, 4, summary.Samples)
	assert.Equal(t, -100.0, summary.MinDbm)
	assert.Equal(t, -50.0, summary.MaxDbm)
	assert.Equal(t, -75.0, summary.MeanDbm)
	assert.Equal(t, 50.0, summary.CoveragePercent)
	assert.Equal(t, 1, summary.Counts[domain.QualityExcellent])
	assert.Equal(t, 0, summary.Counts[domain.QualityPoor])
	assert.Len(t, summary.Counts, len(domain.SignalQualities))
}

func TestSummarizeHeatmap_Empty(t *testing.T) {
	summary := engine.SummarizeHeatmap(nil, -70)
	assert.Equal(t, 0, summary.Samples)
	assert.Equal(t, 0.0, summary.CoveragePercent)
}

func TestEstimateCapacity(t *testing.T) {
	b := domain.Building{LengthM: 50, WidthM: 30, FloorHeightM: 3, FloorCount: 2}

	estimate := engine.EstimateCapacity(b, 10, 30)
	assert.Equal(t, 150, estimate.UsersPerFloor)
	assert.Equal(t, 300, estimate.TotalUsers)
	assert.Equal(t, 10, estimate.APsForCapacity)

	assert.Equal(t, 0, engine.EstimateCapacity(b, 0, 30).APsForCapacity)
}

func TestSampleHeatmap_InvalidAccessPoints(t *testing.T) {
	b := domain.Building{LengthM: 10, WidthM: 10, FloorHeightM: 3, FloorCount: 1}
	view := domain.HeatmapView{Kind: domain.ViewHorizontal, HeightM: 1}

	silent := testAP(5, 5, 2.7, 0)
	silent.FrequencyMHz = 0

	grid, err := engine.SampleHeatmap(view, b, []domain.AccessPoint{silent}, nil,
		engine.PropagationOptions{}, engine.HeatmapOptions{Resolution: 2, TargetRssiDbm: -70})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	assert.Nil(t, grid)

	grid, err = engine.SampleHeatmap(view, b, []domain.AccessPoint{testAP(5, 5, 2.7, 3)}, nil,
		engine.PropagationOptions{}, engine.HeatmapOptions{Resolution: 2, TargetRssiDbm: -70})
	assert.ErrorIs(t, err, errors.ErrUnresolvedReference)
	assert.Nil(t, grid)
}
