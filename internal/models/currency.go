package models

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode string `db:"code"`   // Primary Key (e.g., "USD")
	Symbol       string `db:"symbol"` // e.g., "$"
	Name         string `db:"name"`   // e.g., "US Dollar"
}
