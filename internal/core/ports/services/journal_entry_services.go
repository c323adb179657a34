package services

import (
	"context"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/SscSPs/org_ledger_app/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries
type JournalEntryReaderSvc interface {
	// GetJournalEntry retrieves an entry of the organization with its items.
	GetJournalEntry(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves one page of entries and the total number of matches.
	ListJournalEntries(ctx context.Context, organizationID int64, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int64, error)
}

// JournalEntryWriterSvc defines write operations for draft journal entries
type JournalEntryWriterSvc interface {
	// CreateJournalEntry validates and stores a new draft entry.
	CreateJournalEntry(ctx context.Context, organizationID int64, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// VoidJournalEntry marks a draft entry as voided.
	VoidJournalEntry(ctx context.Context, organizationID, entryID int64, userID string) error
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}

// PostingSvc moves draft entries into the general ledger.
type PostingSvc interface {
	// PostJournalEntry validates a draft entry, appends its ledger rows, updates the
	// account balances of its fiscal period and marks it posted, all atomically.
	// actingUserID is recorded as the approver.
	PostJournalEntry(ctx context.Context, organizationID, entryID int64, actingUserID string) (*domain.PostingResult, error)
}
