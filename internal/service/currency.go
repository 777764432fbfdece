package service

// rateToILS is the static exchange table: units of ILS per one unit of the
// listed currency. All cross-station sums are normalized through it before
// accumulation; summing across currencies without normalization is treated
// as a correctness bug, not a rounding concern.
var rateToILS = map[string]float64{
	"ILS": 1.0,
	"USD": 3.65,
	"EUR": 3.95,
}

// KnownCurrency reports whether the exchange table can normalize the code.
func KnownCurrency(code string) bool {
	_, ok := rateToILS[code]
	return ok
}

// normalize converts an amount from one currency into the base currency.
// Unknown codes fall back to a 1:1 rate rather than failing, keeping the
// degrade-to-default contract of the core.
func normalize(amount float64, from, base string) float64 {
	fromRate, ok := rateToILS[from]
	if !ok {
		fromRate = 1.0
	}
	baseRate, ok := rateToILS[base]
	if !ok {
		baseRate = 1.0
	}
	return amount * fromRate / baseRate
}
