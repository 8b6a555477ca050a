package domain

// SignalQuality - категория качества сигнала относительно целевого RSSI
type SignalQuality string

const (
	QualityExcellent SignalQuality = "excellent"
	QualityGood      SignalQuality = "good"
	QualityFair      SignalQuality = "fair"
	QualityPoor      SignalQuality = "poor"
	QualityVeryPoor  SignalQuality = "very_poor"
)

// SignalQualities - категории от лучшей к худшей
var SignalQualities = []SignalQuality{
	QualityExcellent,
	QualityGood,
	QualityFair,
	QualityPoor,
	QualityVeryPoor,
}

// ViewKind - плоскость среза тепловой карты
type ViewKind string

const (
	ViewHorizontal ViewKind = "horizontal"
	ViewVertical   ViewKind = "vertical"
)

// HeatmapView - выбор среза.
// Horizontal: z = FloorLevel*floorHeight + HeightM.
// Vertical: y = width*SlicePercent/100, сканируются x и z по всей высоте здания.
type HeatmapView struct {
	Kind         ViewKind `json:"kind"`
	FloorLevel   int      `json:"floor_level"`
	HeightM      float64  `json:"height_m"`
	SlicePercent float64  `json:"slice_percent"`
}

// SamplePoint - одна ячейка тепловой карты
type SamplePoint struct {
	X                 float64       `json:"x"`
	Y                 float64       `json:"y"`
	Z                 float64       `json:"z"`
	SignalStrengthDbm float64       `json:"signal_strength_dbm"`
	Quality           SignalQuality `json:"quality"`
}

// HeatmapSummary - агрегаты по сетке
type HeatmapSummary struct {
	Samples         int                   `json:"samples"`
	MinDbm          float64               `json:"min_dbm"`
	MaxDbm          float64               `json:"max_dbm"`
	MeanDbm         float64               `json:"mean_dbm"`
	CoveragePercent float64               `json:"coverage_percent"`
	Counts          map[SignalQuality]int `json:"counts"`
}
