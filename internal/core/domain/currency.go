package domain

// Currency is an ISO 4217 currency known to the system.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
