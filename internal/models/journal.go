package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus mirrors the journal_entries.status column.
type JournalEntryStatus string

const (
	Draft  JournalEntryStatus = "draft"
	Posted JournalEntryStatus = "posted"
	Voided JournalEntryStatus = "voided"
)

// JournalEntry represents a row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID int64              `db:"id"`
	OrganizationID int64              `db:"organization_id"`
	EntryNo        string             `db:"entry_no"`
	EntryDate      time.Time          `db:"entry_date"`
	FiscalPeriodID int64              `db:"fiscal_period_id"`
	Description    string             `db:"description"`
	Reference      string             `db:"reference"`
	Source         string             `db:"source"`
	CurrencyCode   string             `db:"currency_code"`
	ExchangeRate   decimal.Decimal    `db:"exchange_rate"`
	Status         JournalEntryStatus `db:"status"`
	ApprovedBy     *string            `db:"approved_by"` // Nullable
	PostedAt       *time.Time         `db:"posted_at"`   // Nullable
	AuditFields
}

// JournalEntryItem represents a row of the journal_entry_items table.
type JournalEntryItem struct {
	JournalEntryItemID int64           `db:"id"`
	JournalEntryID     int64           `db:"journal_entry_id"`
	AccountID          int64           `db:"account_id"`
	Description        string          `db:"description"`
	Memo               string          `db:"memo"`
	DebitAmount        decimal.Decimal `db:"debit_amount"`
	CreditAmount       decimal.Decimal `db:"credit_amount"`
	BaseDebitAmount    decimal.Decimal `db:"base_debit_amount"`
	BaseCreditAmount   decimal.Decimal `db:"base_credit_amount"`
	Dimensions         map[string]any  `db:"dimensions"` // JSONB, nullable
}
