package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// memStore is a transactional in-memory posting store. Transactions are
// serialized and work on a copy of the state that replaces it on commit.
type memStore struct {
	mu    sync.Mutex
	state *memState

	// failOn names a PostingTx method that fails with a non-transient storage error.
	failOn string
	// transientFailures is the number of upcoming transactions that abort with a
	// transient storage error before running.
	transientFailures int
	attempts          int
}

type balanceKey struct {
	periodID  int64
	accountID int64
}

type memState struct {
	entries      map[int64]domain.JournalEntry
	periods      map[int64]domain.FiscalPeriod
	accounts     map[int64]domain.Account
	ledger       []domain.GeneralLedgerRow
	balances     map[balanceKey]domain.AccountBalance
	nextLedgerID int64
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		entries:      make(map[int64]domain.JournalEntry),
		periods:      make(map[int64]domain.FiscalPeriod),
		accounts:     make(map[int64]domain.Account),
		balances:     make(map[balanceKey]domain.AccountBalance),
		nextLedgerID: 1,
	}}
}

var _ portsrepo.PostingUnitOfWork = (*memStore)(nil)

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	items := make([]domain.JournalEntryItem, len(e.Items))
	copy(items, e.Items)
	e.Items = items
	return e
}

func (s *memState) clone() *memState {
	c := &memState{
		entries:      make(map[int64]domain.JournalEntry, len(s.entries)),
		periods:      make(map[int64]domain.FiscalPeriod, len(s.periods)),
		accounts:     make(map[int64]domain.Account, len(s.accounts)),
		ledger:       make([]domain.GeneralLedgerRow, len(s.ledger)),
		balances:     make(map[balanceKey]domain.AccountBalance, len(s.balances)),
		nextLedgerID: s.nextLedgerID,
	}
	for k, v := range s.entries {
		c.entries[k] = cloneEntry(v)
	}
	for k, v := range s.periods {
		c.periods[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	copy(c.ledger, s.ledger)
	for k, v := range s.balances {
		c.balances[k] = v
	}
	return c
}

func (s *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.PostingTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts++
	if s.transientFailures > 0 {
		s.transientFailures--
		return apperrors.NewStorageError("could not serialize access", nil, true)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("transaction aborted", err, true)
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{state: work, failOn: s.failOn}); err != nil {
		return err
	}
	s.state = work
	return nil
}

// seeding and inspection helpers; they take the store lock themselves

func (s *memStore) addPeriod(p domain.FiscalPeriod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.periods[p.ID] = p
}

func (s *memStore) addAccount(a domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.RunningBalance.IsZero() {
		a.RunningBalance = decimal.Zero
	}
	s.state.accounts[a.ID] = a
}

func (s *memStore) addEntry(e domain.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.entries[e.ID] = cloneEntry(e)
}

func (s *memStore) entry(id int64) domain.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntry(s.state.entries[id])
}

func (s *memStore) account(id int64) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.accounts[id]
}

func (s *memStore) ledgerRows() []domain.GeneralLedgerRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GeneralLedgerRow, len(s.state.ledger))
	copy(out, s.state.ledger)
	return out
}

func (s *memStore) balance(periodID, accountID int64) (domain.AccountBalance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.state.balances[balanceKey{periodID: periodID, accountID: accountID}]
	return b, ok
}

func (s *memStore) normals() map[int64]domain.NormalBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]domain.NormalBalance, len(s.state.accounts))
	for id, a := range s.state.accounts {
		out[id] = a.NormalBalance
	}
	return out
}

func (s *memStore) attemptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

type memTx struct {
	state  *memState
	failOn string
}

var _ portsrepo.PostingTx = (*memTx)(nil)

func (t *memTx) fail(method string) error {
	if t.failOn == method {
		return apperrors.NewStorageError(fmt.Sprintf("%s failed", method), nil, false)
	}
	return nil
}

func (t *memTx) LockJournalEntry(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error) {
	if err := t.fail("LockJournalEntry"); err != nil {
		return nil, err
	}
	e, ok := t.state.entries[entryID]
	if !ok || e.OrganizationID != organizationID {
		return nil, apperrors.NewNotFoundError("Journal entry not found")
	}
	e = cloneEntry(e)
	return &e, nil
}

func (t *memTx) FindFiscalPeriodForShare(ctx context.Context, organizationID, fiscalPeriodID int64) (*domain.FiscalPeriod, error) {
	p, ok := t.state.periods[fiscalPeriodID]
	if !ok || p.OrganizationID != organizationID {
		return nil, apperrors.NewNotFoundError("Fiscal period not found")
	}
	return &p, nil
}

func (t *memTx) LockAccounts(ctx context.Context, organizationID int64, accountIDs []int64) (map[int64]domain.Account, error) {
	ids := append([]int64(nil), accountIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make(map[int64]domain.Account, len(ids))
	for _, id := range ids {
		a, ok := t.state.accounts[id]
		if !ok || a.OrganizationID != organizationID {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Account %d not found", id))
		}
		out[id] = a
	}
	return out, nil
}

func (t *memTx) InsertLedgerRows(ctx context.Context, rows []domain.GeneralLedgerRow) ([]int64, error) {
	if err := t.fail("InsertLedgerRows"); err != nil {
		return nil, err
	}
	ids := make([]int64, len(rows))
	for i, row := range rows {
		row.ID = t.state.nextLedgerID
		t.state.nextLedgerID++
		t.state.ledger = append(t.state.ledger, row)
		ids[i] = row.ID
	}
	return ids, nil
}

func (t *memTx) UpsertAccountBalance(ctx context.Context, delta domain.AccountBalanceDelta, now time.Time) (*domain.AccountBalance, error) {
	if err := t.fail("UpsertAccountBalance"); err != nil {
		return nil, err
	}
	key := balanceKey{periodID: delta.FiscalPeriodID, accountID: delta.AccountID}
	var existing *domain.AccountBalance
	if b, ok := t.state.balances[key]; ok {
		existing = &b
	}
	next, err := accounting.ApplyBalanceDelta(existing, delta, now)
	if err != nil {
		return nil, err
	}
	t.state.balances[key] = next
	return &next, nil
}

func (t *memTx) UpdateAccountRunningBalances(ctx context.Context, organizationID int64, balances map[int64]decimal.Decimal, now time.Time) error {
	if err := t.fail("UpdateAccountRunningBalances"); err != nil {
		return err
	}
	for id, balance := range balances {
		a := t.state.accounts[id]
		a.RunningBalance = balance
		t.state.accounts[id] = a
	}
	return nil
}

func (t *memTx) MarkJournalEntryPosted(ctx context.Context, organizationID, entryID int64, approvedBy string, postedAt time.Time) error {
	if err := t.fail("MarkJournalEntryPosted"); err != nil {
		return err
	}
	e := t.state.entries[entryID]
	e.Status = domain.StatusPosted
	e.ApprovedBy = &approvedBy
	e.PostedAt = &postedAt
	e.UpdatedAt = postedAt
	t.state.entries[entryID] = e
	return nil
}
