package domain

import "time"

// FiscalPeriod bounds a range of dates within a fiscal year. Closed periods refuse postings.
type FiscalPeriod struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organizationId"`
	FiscalYearName string    `json:"fiscalYearName"`
	Name           string    `json:"name"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	IsClosed       bool      `json:"isClosed"`
}

// Contains reports whether date falls inside the period, inclusive of both ends.
func (p FiscalPeriod) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate.Truncate(24*time.Hour)) && !d.After(p.EndDate.Truncate(24*time.Hour))
}
