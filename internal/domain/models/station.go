package models

// StationConfig describes how a station's recovered liters are converted
// into money. It is immutable except through the repository's UpdateConfig
// operation, which keeps every derived monetary field consistent.
//
// Fields:
//   - PricePerLiter: sale price of one recovered liter, in Currency.
//   - Currency: ISO code of the station's local currency (e.g., "ILS").
//   - TargetDailyYield: nominal daily output in liters, used by the
//     synthetic generator and for efficiency ratios.
//   - VATRate: fraction of revenue owed as tax (e.g., 0.17).
//   - ElectricityKwPerLiter: energy consumed per recovered liter.
//   - ElectricityCostPerKw: local price of one kWh, in Currency.
type StationConfig struct {
	PricePerLiter         float64 `json:"price_per_liter" example:"1.2"`
	Currency              string  `json:"currency" example:"ILS"`
	TargetDailyYield      float64 `json:"target_daily_yield" example:"870"`
	VATRate               float64 `json:"vat_rate" example:"0.17"`
	ElectricityKwPerLiter float64 `json:"electricity_kw_per_liter" example:"0.35"`
	ElectricityCostPerKw  float64 `json:"electricity_cost_per_kw" example:"0.53"`
}

// ConfigPatch is a partial StationConfig. Nil fields keep the stored value.
type ConfigPatch struct {
	PricePerLiter         *float64 `json:"price_per_liter,omitempty"`
	Currency              *string  `json:"currency,omitempty"`
	TargetDailyYield      *float64 `json:"target_daily_yield,omitempty"`
	VATRate               *float64 `json:"vat_rate,omitempty"`
	ElectricityKwPerLiter *float64 `json:"electricity_kw_per_liter,omitempty"`
	ElectricityCostPerKw  *float64 `json:"electricity_cost_per_kw,omitempty"`
}

// Apply merges the non-nil fields of the patch into cfg and returns the result.
func (p ConfigPatch) Apply(cfg StationConfig) StationConfig {
	if p.PricePerLiter != nil {
		cfg.PricePerLiter = *p.PricePerLiter
	}
	if p.Currency != nil {
		cfg.Currency = *p.Currency
	}
	if p.TargetDailyYield != nil {
		cfg.TargetDailyYield = *p.TargetDailyYield
	}
	if p.VATRate != nil {
		cfg.VATRate = *p.VATRate
	}
	if p.ElectricityKwPerLiter != nil {
		cfg.ElectricityKwPerLiter = *p.ElectricityKwPerLiter
	}
	if p.ElectricityCostPerKw != nil {
		cfg.ElectricityCostPerKw = *p.ElectricityCostPerKw
	}
	return cfg
}

// StationClass identifies which financial configuration a station runs
// under. Classes are registered once, at fleet-manifest load time; they are
// never inferred from the shape of a station id.
type StationClass string

const (
	// ClassStandard is the primary fleet's configuration.
	ClassStandard StationClass = "standard"
	// ClassRegional is the single-region deployment with its own
	// currency, VAT and electricity tariff.
	ClassRegional StationClass = "regional"
	// ClassPartner is the external-partner family, settled in USD.
	ClassPartner StationClass = "partner"
)

// StationStatus is the operational state reported by fleet membership.
type StationStatus string

const (
	StatusActive     StationStatus = "active"
	StatusPreinstall StationStatus = "preinstall"
	StatusOffline    StationStatus = "offline"
)
