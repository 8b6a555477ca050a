package domain

// FrequencyBand - один частотный диапазон технологии
type FrequencyBand struct {
	Band         string  `json:"band"`
	FrequencyMHz float64 `json:"frequency_mhz"`
	MaxRangeM    float64 `json:"max_range_m"`
	TxPowerDbm   float64 `json:"tx_power_dbm"`
}

// TechnologyProfile - справочная запись беспроводной технологии
type TechnologyProfile struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Bands             []FrequencyBand `json:"bands"`
	MinRssiDbm        float64         `json:"min_rssi_dbm"`
	TypicalTxPowerDbm float64         `json:"typical_tx_power_dbm"`
	MaxClientsPerAP   int             `json:"max_clients_per_ap"`
}

// Technology IDs
const (
	TechnologyWiFi      = "wifi"
	TechnologyBluetooth = "bluetooth"
	TechnologyLoRa      = "lora"
	TechnologyZigbee    = "zigbee"
)

var technologies = []TechnologyProfile{
	{
		ID:   TechnologyWiFi,
		Name: "Wi-Fi",
		Bands: []FrequencyBand{
			{Band: "2.4GHz", FrequencyMHz: 2400, MaxRangeM: 100, TxPowerDbm: 20},
			{Band: "5GHz", FrequencyMHz: 5000, MaxRangeM: 50, TxPowerDbm: 23},
			{Band: "6GHz", FrequencyMHz: 6000, MaxRangeM: 40, TxPowerDbm: 23},
		},
		MinRssiDbm:        -70,
		TypicalTxPowerDbm: 20,
		MaxClientsPerAP:   30,
	},
	{
		ID:   TechnologyBluetooth,
		Name: "Bluetooth",
		Bands: []FrequencyBand{
			{Band: "2.4GHz", FrequencyMHz: 2400, MaxRangeM: 10, TxPowerDbm: 4},
			{Band: "BLE", FrequencyMHz: 2402, MaxRangeM: 50, TxPowerDbm: 10},
		},
		MinRssiDbm:        -90,
		TypicalTxPowerDbm: 4,
		MaxClientsPerAP:   7,
	},
	{
		ID:   TechnologyLoRa,
		Name: "LoRa",
		Bands: []FrequencyBand{
			{Band: "433MHz", FrequencyMHz: 433, MaxRangeM: 5000, TxPowerDbm: 14},
			{Band: "868MHz", FrequencyMHz: 868, MaxRangeM: 5000, TxPowerDbm: 14},
			{Band: "915MHz", FrequencyMHz: 915, MaxRangeM: 5000, TxPowerDbm: 20},
		},
		MinRssiDbm:        -120,
		TypicalTxPowerDbm: 14,
		MaxClientsPerAP:   1000,
	},
	{
		ID:   TechnologyZigbee,
		Name: "Zigbee",
		Bands: []FrequencyBand{
			{Band: "2.4GHz", FrequencyMHz: 2400, MaxRangeM: 100, TxPowerDbm: 3},
			{Band: "915MHz", FrequencyMHz: 915, MaxRangeM: 300, TxPowerDbm: 3},
			{Band: "868MHz", FrequencyMHz: 868, MaxRangeM: 300, TxPowerDbm: 3},
		},
		MinRssiDbm:        -85,
		TypicalTxPowerDbm: 3,
		MaxClientsPerAP:   64,
	},
}

// Technologies возвращает копию каталога технологий в стабильном порядке
func Technologies() []TechnologyProfile {
	result := make([]TechnologyProfile, len(technologies))
	for i, t := range technologies {
		result[i] = t.clone()
	}
	return result
}

// FindTechnology ищет технологию по ID
func FindTechnology(id string) (TechnologyProfile, bool) {
	for _, t := range technologies {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return TechnologyProfile{}, false
}

// FindBand ищет частотный диапазон по метке
func (t TechnologyProfile) FindBand(label string) (FrequencyBand, bool) {
	for _, b := range t.Bands {
		if b.Band == label {
			return b, true
		}
	}
	return FrequencyBand{}, false
}

func (t TechnologyProfile) clone() TechnologyProfile {
	bands := make([]FrequencyBand, len(t.Bands))
	copy(bands, t.Bands)
	t.Bands = bands
	return t
}
