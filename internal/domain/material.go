package domain

// WallMaterial - материал препятствия с фиксированным затуханием
type WallMaterial struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AttenuationDb float64 `json:"attenuation_db"`
}

var materials = []WallMaterial{
	{ID: "drywall", Name: "Drywall", AttenuationDb: 3},
	{ID: "wood", Name: "Wood", AttenuationDb: 4},
	{ID: "glass", Name: "Glass", AttenuationDb: 6},
	{ID: "brick", Name: "Brick", AttenuationDb: 8},
	{ID: "concrete", Name: "Concrete", AttenuationDb: 12},
	{ID: "reinforced_concrete", Name: "Reinforced concrete", AttenuationDb: 18},
	{ID: "metal", Name: "Metal", AttenuationDb: 26},
}

// Materials возвращает копию таблицы материалов
func Materials() []WallMaterial {
	result := make([]WallMaterial, len(materials))
	copy(result, materials)
	return result
}

// FindMaterial ищет материал по ID
func FindMaterial(id string) (WallMaterial, bool) {
	for _, m := range materials {
		if m.ID == id {
			return m, true
		}
	}
	return WallMaterial{}, false
}

// MaterialTable - индекс материалов по ID
type MaterialTable map[string]WallMaterial

// DefaultMaterialTable строит индекс по встроенному каталогу
func DefaultMaterialTable() MaterialTable {
	table := make(MaterialTable, len(materials))
	for _, m := range materials {
		table[m.ID] = m
	}
	return table
}
