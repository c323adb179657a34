package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID Reference
	UpdatedAt time.Time `json:"updatedAt"`
}

// Page describes an offset page request.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page, treating pages as 1-based.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
