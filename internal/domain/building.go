package domain

// Building - прямоугольный план этажа, повторённый FloorCount раз
type Building struct {
	LengthM      float64 `json:"length_m"`
	WidthM       float64 `json:"width_m"`
	FloorHeightM float64 `json:"floor_height_m"`
	FloorCount   int     `json:"floor_count"`
}

// FloorArea - площадь одного этажа, м²
func (b Building) FloorArea() float64 {
	return b.LengthM * b.WidthM
}

// TotalArea - суммарная площадь всех этажей, м²
func (b Building) TotalArea() float64 {
	return b.FloorArea() * float64(b.FloorCount)
}

// TotalHeightM - высота всего здания
func (b Building) TotalHeightM() float64 {
	return b.FloorHeightM * float64(b.FloorCount)
}

// Obstacle - прямоугольная преграда на одном этаже.
// Занимает [X, X+Width] × [Y, Y+Height] в плане.
type Obstacle struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	MaterialID string  `json:"material_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	FloorLevel int     `json:"floor_level"`
}
