package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry.
type JournalEntryStatus string

const (
	StatusDraft  JournalEntryStatus = "draft"
	StatusPosted JournalEntryStatus = "posted"
	StatusVoided JournalEntryStatus = "voided"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s JournalEntryStatus) IsTerminal() bool {
	return s == StatusPosted || s == StatusVoided
}

// CanTransitionTo reports whether s may move to next. Only draft entries move.
func (s JournalEntryStatus) CanTransitionTo(next JournalEntryStatus) bool {
	return s == StatusDraft && next.IsTerminal()
}

// JournalEntry is a transaction proposal made of balanced debit and credit items.
type JournalEntry struct {
	ID             int64              `json:"id"`
	OrganizationID int64              `json:"organizationId"`
	EntryNo        string             `json:"entryNo"`
	EntryDate      time.Time          `json:"entryDate"`
	FiscalPeriodID int64              `json:"fiscalPeriodId"`
	Description    string             `json:"description"`
	Reference      string             `json:"reference"`
	Source         string             `json:"source"`
	CurrencyCode   string             `json:"currencyCode"`
	ExchangeRate   decimal.Decimal    `json:"exchangeRate"`
	Status         JournalEntryStatus `json:"status"`
	ApprovedBy     *string            `json:"approvedBy,omitempty"`
	PostedAt       *time.Time         `json:"postedAt,omitempty"`
	AuditFields
	Items []JournalEntryItem `json:"items,omitempty"`
}

// JournalEntryItem is one debit or credit line of a journal entry.
type JournalEntryItem struct {
	ID               int64           `json:"id"`
	JournalEntryID   int64           `json:"journalEntryId"`
	AccountID        int64           `json:"accountId"`
	Description      string          `json:"description"`
	Memo             string          `json:"memo"`
	DebitAmount      decimal.Decimal `json:"debitAmount"`
	CreditAmount     decimal.Decimal `json:"creditAmount"`
	BaseDebitAmount  decimal.Decimal `json:"baseDebitAmount"`
	BaseCreditAmount decimal.Decimal `json:"baseCreditAmount"`
	Dimensions       map[string]any  `json:"dimensions,omitempty"`
}

// ItemDescription returns the item's description, or the entry's when the item has none.
func (e JournalEntry) ItemDescription(item JournalEntryItem) string {
	if item.Description != "" {
		return item.Description
	}
	return e.Description
}

// AccountIDs returns the distinct account ids referenced by the entry's items in first-seen order.
func (e JournalEntry) AccountIDs() []int64 {
	seen := make(map[int64]struct{}, len(e.Items))
	ids := make([]int64, 0, len(e.Items))
	for _, item := range e.Items {
		if _, ok := seen[item.AccountID]; ok {
			continue
		}
		seen[item.AccountID] = struct{}{}
		ids = append(ids, item.AccountID)
	}
	return ids
}

// PostingResult is returned after a journal entry has been posted.
type PostingResult struct {
	ID       int64              `json:"id"`
	EntryNo  string             `json:"entryNo"`
	Status   JournalEntryStatus `json:"status"`
	PostedAt time.Time          `json:"postedAt"`
}

// JournalEntryFilter narrows journal entry listings.
type JournalEntryFilter struct {
	Status    *JournalEntryStatus
	StartDate *time.Time
	EndDate   *time.Time
	Reference string
	Search    string
	Page
}
