package models

import "time"

// Organization is the tenant row.
type Organization struct {
	OrganizationID int64  `db:"id"`
	Name           string `db:"name"`
	BaseCurrency   string `db:"base_currency"`
}

// FiscalPeriod joins a fiscal period with the name of its fiscal year.
type FiscalPeriod struct {
	FiscalPeriodID int64     `db:"id"`
	OrganizationID int64     `db:"organization_id"`
	FiscalYearName string    `db:"fiscal_year_name"`
	Name           string    `db:"name"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	IsClosed       bool      `db:"is_closed"`
}
