package models

import "time"

// Date layouts used throughout the repository. Daily records key on a plain
// calendar date; monthly records key on its year-month prefix.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// DailyRecord is one calendar day of recovery output for a station.
//
// Invariants (enforced by the history builder):
//   - Date is unique within a station's series.
//   - Date never exceeds the global cutoff date.
//   - RecoveredLiters >= 0.
//   - SalesAmount == RecoveredLiters * PricePerLiter at computation time.
type DailyRecord struct {
	Date            string  `json:"date" example:"2024-03-15"`
	RecoveredLiters float64 `json:"recovered_liters" example:"842"`
	AvgTemperatureC float64 `json:"avg_temperature_c" example:"27.4"`
	SalesAmount     float64 `json:"sales_amount" example:"1010.4"`
	Efficiency      float64 `json:"efficiency" example:"0.91"`
	OutageReason    string  `json:"outage_reason,omitempty" example:"pending installation"`
}

// MonthlyRecord is the per-month fold of a station's daily series. It is
// derived data: regenerated whenever the daily series changes, never edited.
type MonthlyRecord struct {
	Month           string  `json:"month" example:"2024-03"`
	RecoveredLiters float64 `json:"recovered_liters" example:"24510"`
	SalesAmount     float64 `json:"sales_amount" example:"29412"`
	AvgTemperatureC float64 `json:"avg_temperature_c" example:"25.1"`
}

// HourlyRecord is one point of the short live-feel window. The window is
// regenerated on every build and is not preserved across config updates.
type HourlyRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	RecoveredLiters float64   `json:"recovered_liters" example:"36.2"`
	TemperatureC    float64   `json:"temperature_c" example:"29.8"`
	PressurePSI     float64   `json:"pressure_psi" example:"118.4"`
	Efficiency      float64   `json:"efficiency" example:"0.88"`
}

// StationRecord is the full extended record for one station. Exactly one
// instance exists per station id for the process lifetime; it is owned by
// the station repository and replaced only by a config update.
type StationRecord struct {
	ID      string          `json:"id" example:"ST-001"`
	Config  StationConfig   `json:"config"`
	Hourly  []HourlyRecord  `json:"hourly"`
	Daily   []DailyRecord   `json:"daily"`
	Monthly []MonthlyRecord `json:"monthly"`
}
