package pgsql

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_ledger_app/internal/models"
	"github.com/SscSPs/org_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching search literally anywhere in the column.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// entryNoAttempts bounds retries when two drafts of the same year race for a number.
const entryNoAttempts = 3

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries and their items.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

// entryNoPrefix returns the per-year prefix of entry numbers, e.g. "JE-2025-".
func entryNoPrefix(entryDate time.Time) string {
	return fmt.Sprintf("JE-%d-", entryDate.Year())
}

// CreateJournalEntry implements portsrepo.JournalEntryWriter
func (r *PgxJournalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	var created *domain.JournalEntry
	var err error
	for attempt := 1; attempt <= entryNoAttempts; attempt++ {
		created, err = r.createOnce(ctx, entry)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		return nil, storageError("failed to create journal entry", err)
	}
	return created, nil
}

func (r *PgxJournalEntryRepository) createOnce(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	modelEntry := mapping.ToModelJournalEntry(entry)
	created := entry
	created.Items = make([]domain.JournalEntryItem, len(entry.Items))

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		prefix := entryNoPrefix(modelEntry.EntryDate)
		seqQuery := `
			SELECT COALESCE(MAX(CAST(SUBSTRING(entry_no FROM $3) AS INTEGER)), 0) + 1
			FROM journal_entries
			WHERE organization_id = $1 AND entry_no LIKE $2;`
		var seq int
		if err := tx.QueryRow(ctx, seqQuery, modelEntry.OrganizationID, prefix+"%", len(prefix)+1).Scan(&seq); err != nil {
			return fmt.Errorf("next entry number: %w", err)
		}
		modelEntry.EntryNo = fmt.Sprintf("%s%04d", prefix, seq)

		entryQuery := `
			INSERT INTO journal_entries (
				organization_id, entry_no, entry_date, fiscal_period_id, description, reference,
				source, currency_code, exchange_rate, status, created_at, created_by, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id;`
		err := tx.QueryRow(ctx, entryQuery,
			modelEntry.OrganizationID,
			modelEntry.EntryNo,
			modelEntry.EntryDate,
			modelEntry.FiscalPeriodID,
			modelEntry.Description,
			modelEntry.Reference,
			modelEntry.Source,
			modelEntry.CurrencyCode,
			modelEntry.ExchangeRate,
			string(modelEntry.Status),
			modelEntry.CreatedAt,
			modelEntry.CreatedBy,
			modelEntry.UpdatedAt,
		).Scan(&modelEntry.JournalEntryID)
		if err != nil {
			return fmt.Errorf("insert journal entry: %w", err)
		}

		itemQuery := `
			INSERT INTO journal_entry_items (
				journal_entry_id, account_id, description, memo, debit_amount, credit_amount,
				base_debit_amount, base_credit_amount, dimensions
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`
		batch := &pgx.Batch{}
		for _, item := range entry.Items {
			m := mapping.ToModelJournalEntryItem(item)
			batch.Queue(itemQuery,
				modelEntry.JournalEntryID,
				m.AccountID,
				m.Description,
				m.Memo,
				m.DebitAmount,
				m.CreditAmount,
				m.BaseDebitAmount,
				m.BaseCreditAmount,
				m.Dimensions,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for i, item := range entry.Items {
			item.JournalEntryID = modelEntry.JournalEntryID
			if err := br.QueryRow().Scan(&item.ID); err != nil {
				br.Close()
				return fmt.Errorf("insert journal entry item %d: %w", i, err)
			}
			created.Items[i] = item
		}
		return br.Close()
	})
	if err != nil {
		return nil, err
	}

	created.ID = modelEntry.JournalEntryID
	created.EntryNo = modelEntry.EntryNo
	return &created, nil
}

// FindJournalEntryByID implements portsrepo.JournalEntryReader
func (r *PgxJournalEntryRepository) FindJournalEntryByID(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + `
		FROM journal_entries je
		WHERE je.organization_id = $1 AND je.id = $2;`
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, organizationID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Journal entry %d not found", entryID))
		}
		return nil, storageError("failed to find journal entry", err)
	}

	items, err := findJournalEntryItems(ctx, r.Pool, entryID)
	if err != nil {
		return nil, storageError("failed to find journal entry items", err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.Items = mapping.ToDomainJournalEntryItemSlice(items)
	return &entry, nil
}

// ListJournalEntries implements portsrepo.JournalEntryReader
func (r *PgxJournalEntryRepository) ListJournalEntries(ctx context.Context, organizationID int64, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	conditions := []string{"je.organization_id = $1"}
	args := []any{organizationID}
	addArg := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.Status != nil {
		addArg("je.status = $%d", string(*filter.Status))
	}
	if filter.StartDate != nil {
		addArg("je.entry_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addArg("je.entry_date <= $%d", *filter.EndDate)
	}
	if filter.Reference != "" {
		addArg("je.reference = $%d", filter.Reference)
	}
	if filter.Search != "" {
		args = append(args, containsPattern(filter.Search))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(`(je.entry_no ILIKE $%d ESCAPE '\' OR je.description ILIKE $%d ESCAPE '\' OR je.reference ILIKE $%d ESCAPE '\')`, n, n, n))
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM journal_entries je WHERE ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, storageError("failed to count journal entries", err)
	}

	listArgs := append(slices.Clone(args), filter.Limit, filter.Offset())
	listQuery := fmt.Sprintf(`SELECT %s
		FROM journal_entries je
		WHERE %s
		ORDER BY je.entry_date DESC, je.id DESC
		LIMIT $%d OFFSET $%d;`, journalEntryColumns, where, len(args)+1, len(args)+2)

	rows, err := r.Pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, storageError("failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, 0, storageError("failed to scan journal entry", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageError("failed to list journal entries", err)
	}
	return entries, total, nil
}

// VoidJournalEntry implements portsrepo.JournalEntryWriter
func (r *PgxJournalEntryRepository) VoidJournalEntry(ctx context.Context, organizationID, entryID int64, userID string, now time.Time) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var status models.JournalEntryStatus
		statusQuery := `SELECT status FROM journal_entries WHERE organization_id = $1 AND id = $2 FOR UPDATE;`
		if err := tx.QueryRow(ctx, statusQuery, organizationID, entryID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError(fmt.Sprintf("Journal entry %d not found", entryID))
			}
			return storageError("failed to read journal entry status", err)
		}

		switch status {
		case models.Posted:
			return apperrors.NewAlreadyPostedError(entryID)
		case models.Voided:
			return apperrors.NewEntryVoidedError(entryID)
		}

		updateQuery := `
			UPDATE journal_entries
			SET status = $1, voided_by = $2, voided_at = $3, updated_at = $3
			WHERE organization_id = $4 AND id = $5;`
		if _, err := tx.Exec(ctx, updateQuery, string(models.Voided), userID, now, organizationID, entryID); err != nil {
			return storageError("failed to void journal entry", err)
		}
		return nil
	})
}
