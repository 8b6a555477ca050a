package domain

// AccessPoint - размещённая (или заданная вручную) точка доступа
type AccessPoint struct {
	ID              string  `json:"id"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Z               float64 `json:"z"`
	FloorLevel      int     `json:"floor_level"`
	CoverageRadiusM float64 `json:"coverage_radius_m"`
	Technology      string  `json:"technology"`
	FrequencyMHz    float64 `json:"frequency_mhz"`
	TxPowerDbm      float64 `json:"tx_power_dbm"`
}

// Point3D - точка в объёме здания, метры
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Position возвращает координаты точки доступа
func (ap AccessPoint) Position() Point3D {
	return Point3D{X: ap.X, Y: ap.Y, Z: ap.Z}
}

// AccessPointPlan - результат автоматической расстановки
type AccessPointPlan struct {
	CoverageAreaPerAPM2 float64       `json:"coverage_area_per_ap_m2"`
	RequiredPerFloor    []int         `json:"required_per_floor"`
	APsPerFloor         []int         `json:"aps_per_floor"`
	GlobalLimit         int           `json:"global_limit"`
	Recommended         int           `json:"recommended"`
	AccessPoints        []AccessPoint `json:"access_points"`
}

// CapacityEstimate - оценка числа точек доступа по плотности пользователей.
// Носит справочный характер и не меняет расстановку по покрытию.
type CapacityEstimate struct {
	UsersPerFloor   int `json:"users_per_floor"`
	TotalUsers      int `json:"total_users"`
	MaxClientsPerAP int `json:"max_clients_per_ap"`
	APsForCapacity  int `json:"aps_for_capacity"`
}
