package models

// Currency is an ISO 4217 currency code as reported by the capture collaborator.
type Currency string

// CurrencyUSD is the traveler's home currency; all engine math happens in it.
const CurrencyUSD Currency = "USD"

// Money is a non-negative amount in a specific currency.
type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// USD builds a home-currency Money.
func USD(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyUSD}
}
