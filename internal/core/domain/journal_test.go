package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.JournalEntryStatus
		to   domain.JournalEntryStatus
		want bool
	}{
		{name: "draft to posted", from: domain.StatusDraft, to: domain.StatusPosted, want: true},
		{name: "draft to voided", from: domain.StatusDraft, to: domain.StatusVoided, want: true},
		{name: "draft to draft", from: domain.StatusDraft, to: domain.StatusDraft, want: false},
		{name: "posted to voided", from: domain.StatusPosted, to: domain.StatusVoided, want: false},
		{name: "posted to posted", from: domain.StatusPosted, to: domain.StatusPosted, want: false},
		{name: "voided to posted", from: domain.StatusVoided, to: domain.StatusPosted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJournalEntry_ItemDescription(t *testing.T) {
	entry := domain.JournalEntry{Description: "Monthly rent"}

	assert.Equal(t, "Office rent", entry.ItemDescription(domain.JournalEntryItem{Description: "Office rent"}))
	assert.Equal(t, "Monthly rent", entry.ItemDescription(domain.JournalEntryItem{}))
}

func TestJournalEntry_AccountIDs(t *testing.T) {
	entry := domain.JournalEntry{Items: []domain.JournalEntryItem{
		{AccountID: 7}, {AccountID: 3}, {AccountID: 7}, {AccountID: 9},
	}}

	assert.Equal(t, []int64{7, 3, 9}, entry.AccountIDs())
}

func TestFiscalPeriod_Contains(t *testing.T) {
	period := domain.FiscalPeriod{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "first day", date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "last day afternoon", date: time.Date(2025, 1, 31, 15, 30, 0, 0, time.UTC), want: true},
		{name: "day before", date: time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), want: false},
		{name: "day after", date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, period.Contains(tt.date))
		})
	}
}

func TestAccountType_DefaultNormalBalance(t *testing.T) {
	assert.Equal(t, domain.NormalDebit, domain.Asset.DefaultNormalBalance())
	assert.Equal(t, domain.NormalDebit, domain.Expense.DefaultNormalBalance())
	assert.Equal(t, domain.NormalCredit, domain.Liability.DefaultNormalBalance())
	assert.Equal(t, domain.NormalCredit, domain.Equity.DefaultNormalBalance())
	assert.Equal(t, domain.NormalCredit, domain.Revenue.DefaultNormalBalance())
}
