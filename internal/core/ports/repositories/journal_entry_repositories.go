package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindJournalEntryByID retrieves an entry of the organization together with its items in insertion order.
	FindJournalEntryByID(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error)

	// ListJournalEntries returns one page of entries matching the filter and the total number of matches.
	ListJournalEntries(ctx context.Context, organizationID int64, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int64, error)
}

// JournalEntryWriter defines write operations for journal entries
type JournalEntryWriter interface {
	// CreateJournalEntry stores a draft entry and its items, assigning the next entry number of the year.
	CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// VoidJournalEntry moves a draft entry to voided. Posted or voided entries are rejected.
	VoidJournalEntry(ctx context.Context, organizationID, entryID int64, userID string, now time.Time) error
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
