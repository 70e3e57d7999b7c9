package weather

// Fetch status values reported by the meteo API.
const (
	STATUS_OK    = "OK"
	STATUS_ERROR = "ERROR"
)

// WeatherInfo is the per-day weather context attached to comparison rows.
// DateKey is the API-formatted date string the entry is cached under.
type WeatherInfo struct {
	DateKey      string  `json:"date"`
	Condition    string  `json:"condition"`
	TempMinC     float64 `json:"temp_min_c"`
	TempMaxC     float64 `json:"temp_max_c"`
	PrecipMM     float64 `json:"precip_mm"`
	WindSpeedKMH float64 `json:"wind_speed_kmh"`
}

// FetchResponse is the envelope a weather fetch resolves to: a per-date
// lookup table plus an overall status and, on failure, a message.
type FetchResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Lookup  map[string]WeatherInfo `json:"lookup"`
}
