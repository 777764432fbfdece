package models

// WindowAll selects every generated date up to the global cutoff. Any other
// window value is a four-digit year, e.g. "2024".
const WindowAll = "all"

// FleetRow is one calendar date of fleet-wide totals, with every monetary
// figure already normalized into the base currency.
//
// Profit is computed once per date, after all contributing stations have
// been folded in: Profit = Revenue - Expenses.
type FleetRow struct {
	Date            string  `json:"date" example:"2024-03-15"`
	RecoveredLiters float64 `json:"recovered_liters" example:"10180"`
	Revenue         float64 `json:"revenue" example:"12216"`
	Expenses        float64 `json:"expenses" example:"3530.5"`
	Profit          float64 `json:"profit" example:"8685.5"`
}
