package mapping

import (
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/SscSPs/org_ledger_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry. Items are mapped separately.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.ID,
		OrganizationID: d.OrganizationID,
		EntryNo:        d.EntryNo,
		EntryDate:      d.EntryDate,
		FiscalPeriodID: d.FiscalPeriodID,
		Description:    d.Description,
		Reference:      d.Reference,
		Source:         d.Source,
		CurrencyCode:   d.CurrencyCode,
		ExchangeRate:   d.ExchangeRate,
		Status:         models.JournalEntryStatus(d.Status),
		ApprovedBy:     d.ApprovedBy,
		PostedAt:       d.PostedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:             m.JournalEntryID,
		OrganizationID: m.OrganizationID,
		EntryNo:        m.EntryNo,
		EntryDate:      m.EntryDate,
		FiscalPeriodID: m.FiscalPeriodID,
		Description:    m.Description,
		Reference:      m.Reference,
		Source:         m.Source,
		CurrencyCode:   m.CurrencyCode,
		ExchangeRate:   m.ExchangeRate,
		Status:         domain.JournalEntryStatus(m.Status),
		ApprovedBy:     m.ApprovedBy,
		PostedAt:       m.PostedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryItem converts a domain JournalEntryItem to a model JournalEntryItem
func ToModelJournalEntryItem(d domain.JournalEntryItem) models.JournalEntryItem {
	return models.JournalEntryItem{
		JournalEntryItemID: d.ID,
		JournalEntryID:     d.JournalEntryID,
		AccountID:          d.AccountID,
		Description:        d.Description,
		Memo:               d.Memo,
		DebitAmount:        d.DebitAmount,
		CreditAmount:       d.CreditAmount,
		BaseDebitAmount:    d.BaseDebitAmount,
		BaseCreditAmount:   d.BaseCreditAmount,
		Dimensions:         d.Dimensions,
	}
}

// ToDomainJournalEntryItem converts a model JournalEntryItem to a domain JournalEntryItem
func ToDomainJournalEntryItem(m models.JournalEntryItem) domain.JournalEntryItem {
	return domain.JournalEntryItem{
		ID:               m.JournalEntryItemID,
		JournalEntryID:   m.JournalEntryID,
		AccountID:        m.AccountID,
		Description:      m.Description,
		Memo:             m.Memo,
		DebitAmount:      m.DebitAmount,
		CreditAmount:     m.CreditAmount,
		BaseDebitAmount:  m.BaseDebitAmount,
		BaseCreditAmount: m.BaseCreditAmount,
		Dimensions:       m.Dimensions,
	}
}

// ToDomainJournalEntryItemSlice converts a slice of model items to domain items
func ToDomainJournalEntryItemSlice(ms []models.JournalEntryItem) []domain.JournalEntryItem {
	if ms == nil {
		return nil
	}
	ds := make([]domain.JournalEntryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryItem(m)
	}
	return ds
}
