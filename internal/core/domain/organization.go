package domain

// Organization is the tenant owning the ledger.
type Organization struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BaseCurrency string `json:"baseCurrency"`
}
