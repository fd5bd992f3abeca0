package models

// WeatherSample describes game-time weather at a team's park. Temperature is
// in degrees Fahrenheit, wind speed in mph, pressure in hPa. Precipitation is
// 0 or 1 to match the historical cache encoding.
type WeatherSample struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation int     `json:"precipitation"`
	Pressure      float64 `json:"pressure"`
	Conditions    string  `json:"conditions"`
}

// PitcherFormSample summarizes a pitcher's recent trailing-window form.
type PitcherFormSample struct {
	PitcherName   string  `json:"pitcher_name"`
	RecentERA     float64 `json:"recent_era"`
	RecentWHIP    float64 `json:"recent_whip"`
	KPerNine      float64 `json:"k_per_nine"`
	QualityStarts int     `json:"quality_starts"`
}

// StadiumInfo describes the park environment used for the stadium factor and
// the current-conditions report.
type StadiumInfo struct {
	Stadium                   string   `json:"stadium"`
	Type                      string   `json:"type"`
	Altitude                  int      `json:"altitude"`
	AltitudeCategory          string   `json:"altitude_category"`
	PitcherFriendlinessScore  float64  `json:"pitcher_friendliness_score"`
	Characteristics           []string `json:"characteristics"`
}

// CurrentConditions bundles the best-effort condition samples attached to a
// prediction. Any field may be nil when its analyzer was degraded.
type CurrentConditions struct {
	Weather     *WeatherSample     `json:"weather,omitempty"`
	PitcherForm *PitcherFormSample `json:"pitcher_stats,omitempty"`
	Stadium     *StadiumInfo       `json:"stadium_info,omitempty"`
}
