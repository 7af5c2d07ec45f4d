package engine

import "pointswise/internal/models"

// homeRates maps a foreign currency to its USD conversion factor. The table is
// fixed: captured prices only need to be comparable, not settlement-accurate,
// and a conversion always widens the close-call band downstream.
var homeRates = map[models.Currency]float64{
	"EUR": 1.09,
	"GBP": 1.27,
	"CAD": 0.74,
	"AUD": 0.66,
	"NZD": 0.61,
	"JPY": 0.0067,
	"CHF": 1.13,
	"MXN": 0.058,
	"INR": 0.012,
	"SGD": 0.75,
	"HKD": 0.128,
	"THB": 0.029,
	"SEK": 0.095,
	"NOK": 0.094,
	"DKK": 0.146,
}

// ToHomeCurrency converts an amount to USD using the fixed rate table.
// Unknown codes are treated as already-home-currency and pass through at 1.0;
// the function is total and never errors.
func ToHomeCurrency(amount float64, code models.Currency) float64 {
	if rate, ok := homeRates[code]; ok {
		return amount * rate
	}
	return amount
}

// normalizeMoney converts a Money to USD and reports whether a real
// conversion happened. Empty and unknown codes count as home currency.
func normalizeMoney(m models.Money) (float64, bool) {
	if m.Currency == "" || m.Currency == models.CurrencyUSD {
		return m.Amount, false
	}
	if rate, ok := homeRates[m.Currency]; ok {
		return m.Amount * rate, true
	}
	return m.Amount, false
}
