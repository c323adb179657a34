package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
)

const (
	defaultPostingTxTimeout = 10 * time.Second
	defaultRetryBackoff     = 50 * time.Millisecond
)

// postingService moves draft journal entries into the general ledger.
type postingService struct {
	BaseService
	uow         portsrepo.PostingUnitOfWork
	locker      portsrepo.Locker
	tolerance   accounting.BalanceTolerance
	txTimeout   time.Duration
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingLocker gates each posting behind a lock shared across instances.
func WithPostingLocker(locker portsrepo.Locker) PostingServiceOption {
	return func(s *postingService) {
		s.locker = locker
	}
}

// WithPostingTolerance sets the accepted debit/credit difference.
func WithPostingTolerance(tolerance accounting.BalanceTolerance) PostingServiceOption {
	return func(s *postingService) {
		s.tolerance = tolerance
	}
}

// WithPostingTxTimeout bounds each transaction attempt.
func WithPostingTxTimeout(timeout time.Duration) PostingServiceOption {
	return func(s *postingService) {
		if timeout > 0 {
			s.txTimeout = timeout
		}
	}
}

// WithPostingRetry retries transient store failures up to maxAttempts attempts in total,
// waiting attempt x backoff between attempts.
func WithPostingRetry(maxAttempts int, backoff time.Duration) PostingServiceOption {
	return func(s *postingService) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if backoff >= 0 {
			s.backoff = backoff
		}
	}
}

// WithPostingClock overrides the time source used for postedAt and ledger timestamps.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates a new posting service with the provided options
func NewPostingService(uow portsrepo.PostingUnitOfWork, options ...PostingServiceOption) portssvc.PostingSvc {
	svc := &postingService{
		uow:         uow,
		tolerance:   accounting.DefaultTolerance(),
		txTimeout:   defaultPostingTxTimeout,
		maxAttempts: 1,
		backoff:     defaultRetryBackoff,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvc = (*postingService)(nil)

func postingLockKey(organizationID, entryID int64) string {
	return fmt.Sprintf("posting:%d:%d", organizationID, entryID)
}

// PostJournalEntry implements portssvc.PostingSvc
func (s *postingService) PostJournalEntry(ctx context.Context, organizationID, entryID int64, actingUserID string) (*domain.PostingResult, error) {
	logger := s.GetLogger(ctx).With(
		slog.Int64("organization_id", organizationID),
		slog.Int64("journal_entry_id", entryID),
		slog.String("user_id", actingUserID),
	)

	if actingUserID == "" {
		return nil, apperrors.NewValidationError("Acting user is required to post a journal entry")
	}

	if s.locker != nil {
		release, err := s.locker.Obtain(ctx, postingLockKey(organizationID, entryID))
		if err != nil {
			if errors.Is(err, portsrepo.ErrLockNotObtained) {
				logger.Warn("Posting gate held by another request")
				return nil, apperrors.NewPostingInProgressError(entryID)
			}
			logger.Error("Failed to obtain posting gate", slog.String("error", err.Error()))
			return nil, apperrors.NewStorageError("failed to obtain posting lock", err, true)
		}
		defer func() {
			if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
				logger.Warn("Failed to release posting gate", slog.String("error", rerr.Error()))
			}
		}()
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result, err := s.postOnce(ctx, organizationID, entryID, actingUserID)
		if err == nil {
			logger.Info("Journal entry posted",
				slog.String("entry_no", result.EntryNo),
				slog.Int("attempt", attempt),
			)
			return result, nil
		}
		lastErr = err

		if !apperrors.IsTransient(err) || attempt == s.maxAttempts {
			break
		}
		logger.Warn("Transient failure while posting, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return nil, apperrors.NewStorageError("posting cancelled", ctx.Err(), true)
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}

	var appErr *apperrors.AppError
	if !errors.As(lastErr, &appErr) {
		lastErr = apperrors.NewInternalError("failed to post journal entry", lastErr)
	}
	if errors.Is(lastErr, apperrors.ErrStorage) || errors.Is(lastErr, apperrors.ErrInternal) {
		logger.Error("Failed to post journal entry", slog.String("error", lastErr.Error()))
	} else {
		logger.Info("Journal entry rejected", slog.String("reason", lastErr.Error()))
	}
	return nil, lastErr
}

// postOnce runs one transaction attempt. Validation happens inside the transaction
// after the entry row is locked so a concurrent post of the same entry observes
// the committed status.
func (s *postingService) postOnce(ctx context.Context, organizationID, entryID int64, actingUserID string) (*domain.PostingResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var result *domain.PostingResult
	err := s.uow.RunInTx(txCtx, func(ctx context.Context, tx portsrepo.PostingTx) error {
		entry, err := tx.LockJournalEntry(ctx, organizationID, entryID)
		if err != nil {
			return err
		}

		switch entry.Status {
		case domain.StatusPosted:
			return apperrors.NewAlreadyPostedError(entryID)
		case domain.StatusVoided:
			return apperrors.NewEntryVoidedError(entryID)
		case domain.StatusDraft:
		default:
			return apperrors.NewInternalError(fmt.Sprintf("journal entry %d has unknown status %q", entryID, entry.Status), nil)
		}

		period, err := tx.FindFiscalPeriodForShare(ctx, organizationID, entry.FiscalPeriodID)
		if err != nil {
			return err
		}
		if period.IsClosed {
			return apperrors.NewFiscalPeriodClosedError(period.ID)
		}

		if len(entry.Items) == 0 {
			return apperrors.NewValidationError("Journal entry has no items")
		}
		if err := accounting.ValidateEntryBalance(entry.Items, s.tolerance); err != nil {
			return err
		}

		accounts, err := tx.LockAccounts(ctx, organizationID, entry.AccountIDs())
		if err != nil {
			return err
		}

		now := s.now()
		derived, err := accounting.DeriveLedgerRows(*entry, accounts, now)
		if err != nil {
			return apperrors.NewInternalError("failed to derive ledger rows", err)
		}

		if _, err := tx.InsertLedgerRows(ctx, derived.Rows); err != nil {
			return err
		}
		for _, delta := range derived.Deltas {
			if _, err := tx.UpsertAccountBalance(ctx, delta, now); err != nil {
				return err
			}
		}
		if err := tx.UpdateAccountRunningBalances(ctx, organizationID, derived.RunningBalances, now); err != nil {
			return err
		}
		if err := tx.MarkJournalEntryPosted(ctx, organizationID, entryID, actingUserID, now); err != nil {
			return err
		}

		result = &domain.PostingResult{
			ID:       entry.ID,
			EntryNo:  entry.EntryNo,
			Status:   domain.StatusPosted,
			PostedAt: now,
		}
		return nil
	})

	if err != nil {
		if errors.Is(txCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil && !errors.Is(err, apperrors.ErrStorage) {
			return nil, apperrors.NewStorageError("posting transaction timed out", err, true)
		}
		return nil, err
	}
	return result, nil
}
