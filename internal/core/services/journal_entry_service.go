package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/org_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/org_ledger_app/internal/dto"
	"github.com/SscSPs/org_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrJournalMinItems    = errors.New("journal entry must have at least two items")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrEntryOutsidePeriod = errors.New("entry date is outside the fiscal period")
	ErrAmountPrecision    = errors.New("amounts support at most 4 decimal places")
	ErrUnknownCurrency    = errors.New("currency not found")
)

// journalEntryService manages draft journal entries.
type journalEntryService struct {
	BaseService
	entryRepo    portsrepo.JournalEntryRepositoryFacade
	accountRepo  portsrepo.AccountReader
	periodRepo   portsrepo.FiscalPeriodReader
	currencyRepo portsrepo.CurrencyReader
	orgRepo      portsrepo.OrganizationReader
	tolerance    accounting.BalanceTolerance
	now          func() time.Time
}

// JournalEntryServiceOption is a functional option for configuring the journal entry service
type JournalEntryServiceOption func(*journalEntryService)

// WithEntryTolerance sets the tolerance used when validating new drafts.
func WithEntryTolerance(tolerance accounting.BalanceTolerance) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.tolerance = tolerance
	}
}

// WithEntryClock overrides the time source used for audit fields.
func WithEntryClock(now func() time.Time) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.now = now
	}
}

// NewJournalEntryService creates a new JournalEntryService.
func NewJournalEntryService(
	entryRepo portsrepo.JournalEntryRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	periodRepo portsrepo.FiscalPeriodReader,
	currencyRepo portsrepo.CurrencyReader,
	orgRepo portsrepo.OrganizationReader,
	options ...JournalEntryServiceOption,
) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		entryRepo:    entryRepo,
		accountRepo:  accountRepo,
		periodRepo:   periodRepo,
		currencyRepo: currencyRepo,
		orgRepo:      orgRepo,
		tolerance:    accounting.DefaultTolerance(),
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func validationErr(base error, format string, args ...any) error {
	msg := base.Error()
	if format != "" {
		msg = fmt.Sprintf("%s: %s", msg, fmt.Sprintf(format, args...))
	}
	appErr := apperrors.NewValidationError(msg)
	appErr.Err = base
	return appErr
}

func hasAmountPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(accounting.AmountScale))
}

// CreateJournalEntry implements portssvc.JournalEntryWriterSvc
func (s *journalEntryService) CreateJournalEntry(ctx context.Context, organizationID int64, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if len(req.Items) < 2 {
		return nil, validationErr(ErrJournalMinItems, "")
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, validationErr(apperrors.ErrValidation, "entryDate must be formatted as YYYY-MM-DD")
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load organization", slog.Int64("organization_id", organizationID))
		return nil, err
	}

	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if currencyCode == "" {
		currencyCode = org.BaseCurrency
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, validationErr(ErrUnknownCurrency, "%s", currencyCode)
		}
		return nil, err
	}

	exchangeRate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil {
		if !req.ExchangeRate.IsPositive() {
			return nil, validationErr(apperrors.ErrValidation, "exchangeRate must be positive")
		}
		exchangeRate = *req.ExchangeRate
	}

	period, err := s.periodRepo.FindFiscalPeriodByID(ctx, organizationID, req.FiscalPeriodID)
	if err != nil {
		return nil, err
	}
	if period.IsClosed {
		return nil, apperrors.NewFiscalPeriodClosedError(period.ID)
	}
	if !period.Contains(entryDate) {
		return nil, validationErr(ErrEntryOutsidePeriod, "%s is not within %s to %s",
			req.EntryDate, period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02"))
	}

	items := make([]domain.JournalEntryItem, len(req.Items))
	accountIDs := make([]int64, 0, len(req.Items))
	for i, itemReq := range req.Items {
		item := domain.JournalEntryItem{
			AccountID:        itemReq.AccountID,
			Description:      itemReq.Description,
			Memo:             itemReq.Memo,
			DebitAmount:      itemReq.DebitAmount,
			CreditAmount:     itemReq.CreditAmount,
			BaseDebitAmount:  accounting.ToBaseAmount(itemReq.DebitAmount, exchangeRate),
			BaseCreditAmount: accounting.ToBaseAmount(itemReq.CreditAmount, exchangeRate),
			Dimensions:       itemReq.Dimensions,
		}
		if err := accounting.ValidateItemSides(item); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				appErr.WithDetail("item", i)
			}
			return nil, err
		}
		if !hasAmountPrecision(item.DebitAmount) || !hasAmountPrecision(item.CreditAmount) {
			return nil, validationErr(ErrAmountPrecision, "item %d", i)
		}
		items[i] = item
		accountIDs = append(accountIDs, item.AccountID)
	}

	if err := accounting.ValidateEntryBalance(items, s.tolerance); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for journal entry", slog.Int64("organization_id", organizationID))
		return nil, err
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Account %d not found in organization", id))
		}
		if !account.IsActive {
			return nil, validationErr(ErrAccountInactive, "%s (%d)", account.Code, account.ID)
		}
	}

	now := s.now()
	entry := domain.JournalEntry{
		OrganizationID: organizationID,
		EntryDate:      entryDate,
		FiscalPeriodID: period.ID,
		Description:    req.Description,
		Reference:      req.Reference,
		Source:         "manual",
		CurrencyCode:   currencyCode,
		ExchangeRate:   exchangeRate,
		Status:         domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
			UpdatedAt: now,
		},
		Items: items,
	}

	created, err := s.entryRepo.CreateJournalEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to create journal entry", slog.Int64("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.Int64("organization_id", organizationID),
		slog.Int64("journal_entry_id", created.ID),
		slog.String("entry_no", created.EntryNo),
		slog.Int("item_count", len(created.Items)))
	return created, nil
}

// GetJournalEntry implements portssvc.JournalEntryReaderSvc
func (s *journalEntryService) GetJournalEntry(ctx context.Context, organizationID, entryID int64) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, organizationID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal entry",
				slog.Int64("organization_id", organizationID),
				slog.Int64("journal_entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries implements portssvc.JournalEntryReaderSvc
func (s *journalEntryService) ListJournalEntries(ctx context.Context, organizationID int64, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page.Page < 1 {
		filter.Page.Page = 1
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, 0, validationErr(apperrors.ErrValidation, "endDate must not be before startDate")
	}

	entries, total, err := s.entryRepo.ListJournalEntries(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int64("organization_id", organizationID))
		return nil, 0, err
	}
	return entries, total, nil
}

// VoidJournalEntry implements portssvc.JournalEntryWriterSvc
func (s *journalEntryService) VoidJournalEntry(ctx context.Context, organizationID, entryID int64, userID string) error {
	if err := s.entryRepo.VoidJournalEntry(ctx, organizationID, entryID, userID, s.now()); err != nil {
		s.LogWarn(ctx, "Failed to void journal entry",
			slog.Int64("organization_id", organizationID),
			slog.Int64("journal_entry_id", entryID),
			slog.String("error", err.Error()))
		return err
	}
	s.LogInfo(ctx, "Journal entry voided",
		slog.Int64("organization_id", organizationID),
		slog.Int64("journal_entry_id", entryID),
		slog.String("user_id", userID))
	return nil
}
