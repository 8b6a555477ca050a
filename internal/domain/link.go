package domain

// LinkParameters - параметры радиолинии, заданные пользователем.
// В полном расчёте нулевые FrequencyMHz и TargetRssiDbm заменяются значениями технологии.
type LinkParameters struct {
	FrequencyMHz        float64 `json:"frequency_mhz"`
	TxPowerDbm          float64 `json:"tx_power_dbm"`
	TargetRssiDbm       float64 `json:"target_rssi_dbm"`
	SafetyMarginDb      float64 `json:"safety_margin_db"`
	UserDensityPer100m2 float64 `json:"user_density_per_100m2"`
}

// LinkBudget - допустимые потери и теоретический радиус покрытия
type LinkBudget struct {
	AvailablePathLossDb float64 `json:"available_path_loss_db"`
	MaxCoverageRadiusM  float64 `json:"max_coverage_radius_m"`
}

// Feasible - бюджет даёт ненулевой радиус
func (b LinkBudget) Feasible() bool {
	return b.AvailablePathLossDb > 0 && b.MaxCoverageRadiusM > 0
}
