package dto

import "github.com/coverage-planner/internal/domain"

// LinkBudgetRequest - параметры радиолинии
type LinkBudgetRequest struct {
	FrequencyMHz   float64 `json:"frequency_mhz" validate:"required,gt=0,max=100000"`
	TxPowerDbm     float64 `json:"tx_power_dbm" validate:"min=-40,max=60"`
	TargetRssiDbm  float64 `json:"target_rssi_dbm" validate:"min=-150,max=0"`
	SafetyMarginDb float64 `json:"safety_margin_db" validate:"min=0,max=60"`
}

// ToDomain переводит запрос в параметры движка
func (r LinkBudgetRequest) ToDomain() domain.LinkParameters {
	return domain.LinkParameters{
		FrequencyMHz:   r.FrequencyMHz,
		TxPowerDbm:     r.TxPowerDbm,
		TargetRssiDbm:  r.TargetRssiDbm,
		SafetyMarginDb: r.SafetyMarginDb,
	}
}

// LinkBudgetResponse - допустимые потери и радиус
type LinkBudgetResponse struct {
	domain.LinkBudget
	FrequencyMHz float64 `json:"frequency_mhz"`
}

// PlanRequest - запрос на автоматическую расстановку точек доступа
type PlanRequest struct {
	TechnologyID  string            `json:"technology_id" validate:"omitempty,oneof=wifi bluetooth lora zigbee"`
	Building      domain.Building   `json:"building"`
	Link          LinkBudgetRequest `json:"link"`
	OverlapFactor *float64          `json:"overlap_factor,omitempty" validate:"omitempty,gt=0,max=1"`
	MountHeightM  *float64          `json:"mount_height_m,omitempty" validate:"omitempty,min=0"`
}

// PlanResponse - бюджет линии и расстановка
type PlanResponse struct {
	LinkBudget domain.LinkBudget       `json:"link_budget"`
	Plan       *domain.AccessPointPlan `json:"plan"`
}

// SignalRequest - уровень сигнала в наборе точек
type SignalRequest struct {
	Building     domain.Building      `json:"building"`
	Obstacles    []domain.Obstacle    `json:"obstacles,omitempty" validate:"max=2000"`
	AccessPoints []domain.AccessPoint `json:"access_points" validate:"max=1000"`
	Points       []domain.Point3D     `json:"points" validate:"required,min=1,max=10000"`
}

// SignalResult - уровень сигнала в одной точке
type SignalResult struct {
	domain.Point3D
	SignalStrengthDbm float64 `json:"signal_strength_dbm"`
}

// SignalResponse - результаты в порядке входных точек
type SignalResponse struct {
	Results []SignalResult `json:"results"`
}

// HeatmapRequest - тепловая карта одного среза для заданных точек доступа
type HeatmapRequest struct {
	Building      domain.Building      `json:"building"`
	Obstacles     []domain.Obstacle    `json:"obstacles,omitempty" validate:"max=2000"`
	AccessPoints  []domain.AccessPoint `json:"access_points" validate:"max=1000"`
	View          domain.HeatmapView   `json:"view"`
	Resolution    int                  `json:"resolution,omitempty" validate:"omitempty,min=1"`
	TargetRssiDbm float64              `json:"target_rssi_dbm" validate:"min=-150,max=0"`
}

// HeatmapResult - сетка и её агрегаты
type HeatmapResult struct {
	View       domain.HeatmapView     `json:"view"`
	Resolution int                    `json:"resolution"`
	Grid       [][]domain.SamplePoint `json:"grid,omitempty"`
	Summary    domain.HeatmapSummary  `json:"summary"`
}

// SimulateRequest - полный расчёт: бюджет, расстановка, оба среза тепловой карты.
// Пустой FrequencyMHz берётся из диапазона технологии. TargetRssiDbm == 0 означает
// "не задан" и заменяется минимальным RSSI технологии: цель 0 dBm через этот запрос
// не выражается, для неё есть /link-budget и /heatmap.
// Без ReceiverHeightM высота приёмника берётся из конфигурации, а если она не ниже
// высоты этажа - середина этажа.
type SimulateRequest struct {
	domain.SimulationInput
	Resolution      int      `json:"resolution,omitempty" validate:"omitempty,min=1"`
	FloorLevel      int      `json:"floor_level" validate:"min=0"`
	ReceiverHeightM *float64 `json:"receiver_height_m,omitempty" validate:"omitempty,min=0"`
	SlicePercent    *float64 `json:"slice_percent,omitempty" validate:"omitempty,min=0,max=100"`
	OmitGrid        bool     `json:"omit_grid,omitempty"`
}

// SimulateResponse - результат полного расчёта
type SimulateResponse struct {
	TechnologyID   string                   `json:"technology_id"`
	Band           string                   `json:"band"`
	Link           domain.LinkParameters    `json:"link"`
	LinkBudget     domain.LinkBudget        `json:"link_budget"`
	Plan           *domain.AccessPointPlan  `json:"plan,omitempty"`
	RecommendedAPs int                      `json:"recommended_aps"`
	AccessPoints   []domain.AccessPoint     `json:"access_points"`
	Horizontal     HeatmapResult            `json:"horizontal"`
	Vertical       HeatmapResult            `json:"vertical"`
	Capacity       *domain.CapacityEstimate `json:"capacity,omitempty"`
}
