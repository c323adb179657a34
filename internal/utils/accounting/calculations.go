package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/org_ledger_app/internal/apperrors"
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept for every monetary amount.
const AmountScale int32 = 4

// ToleranceMode selects how the balance tolerance is interpreted.
type ToleranceMode string

const (
	ToleranceAbsolute ToleranceMode = "absolute"
	ToleranceRelative ToleranceMode = "relative"
)

var (
	defaultTolerance        = decimal.RequireFromString("0.01")
	minRelativeTolerance    = decimal.RequireFromString("0.0001")
	errUnknownNormalSide    = fmt.Errorf("%w: unknown normal balance side", apperrors.ErrValidation)
	errInvalidToleranceMode = fmt.Errorf("%w: tolerance mode must be absolute or relative", apperrors.ErrValidation)
)

// BalanceTolerance bounds the accepted difference between total debits and total credits.
// Absolute mode compares the difference to Value directly. Relative mode scales Value
// by the larger of the two totals, never going below 0.0001.
type BalanceTolerance struct {
	Mode  ToleranceMode
	Value decimal.Decimal
}

// DefaultTolerance is the fixed absolute tolerance of 0.01.
func DefaultTolerance() BalanceTolerance {
	return BalanceTolerance{Mode: ToleranceAbsolute, Value: defaultTolerance}
}

// NewBalanceTolerance parses a mode name and a value into a tolerance.
func NewBalanceTolerance(mode string, value decimal.Decimal) (BalanceTolerance, error) {
	m := ToleranceMode(strings.ToLower(strings.TrimSpace(mode)))
	if m == "" {
		m = ToleranceAbsolute
	}
	if m != ToleranceAbsolute && m != ToleranceRelative {
		return BalanceTolerance{}, errInvalidToleranceMode
	}
	if value.IsNegative() {
		return BalanceTolerance{}, fmt.Errorf("%w: tolerance must not be negative", apperrors.ErrValidation)
	}
	return BalanceTolerance{Mode: m, Value: value}, nil
}

// Limit returns the largest difference accepted for the given totals.
func (t BalanceTolerance) Limit(totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	if t.Mode != ToleranceRelative {
		return t.Value
	}
	limit := decimal.Max(totalDebit.Abs(), totalCredit.Abs()).Mul(t.Value)
	return decimal.Max(limit, minRelativeTolerance)
}

// Allows reports whether |totalDebit - totalCredit| is within the tolerance.
func (t BalanceTolerance) Allows(totalDebit, totalCredit decimal.Decimal) bool {
	return totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(t.Limit(totalDebit, totalCredit))
}

// SignedDelta returns how much a debit/credit pair moves an account's balance.
// Debit-normal accounts grow with debits, credit-normal accounts with credits.
func SignedDelta(normal domain.NormalBalance, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch normal {
	case domain.NormalDebit:
		return debit.Sub(credit), nil
	case domain.NormalCredit:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("%w '%s'", errUnknownNormalSide, normal)
	}
}

// ClosingBalance computes opening + sign x (debit - credit) for the account's normal side.
func ClosingBalance(normal domain.NormalBalance, opening, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	delta, err := SignedDelta(normal, debit, credit)
	if err != nil {
		return decimal.Zero, err
	}
	return opening.Add(delta), nil
}

// ToBaseAmount converts an amount into base currency at the given rate.
func ToBaseAmount(amount, exchangeRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(exchangeRate).Round(AmountScale)
}

// SumItems totals the native debit and credit amounts of the items.
func SumItems(items []domain.JournalEntryItem) (decimal.Decimal, decimal.Decimal) {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, item := range items {
		totalDebit = totalDebit.Add(item.DebitAmount)
		totalCredit = totalCredit.Add(item.CreditAmount)
	}
	return totalDebit, totalCredit
}

// ValidateEntryBalance fails with an unbalanced entry error carrying the totals and
// their difference when the items do not balance within tolerance.
func ValidateEntryBalance(items []domain.JournalEntryItem, tolerance BalanceTolerance) error {
	totalDebit, totalCredit := SumItems(items)
	if !tolerance.Allows(totalDebit, totalCredit) {
		return apperrors.NewUnbalancedEntryError(totalDebit, totalCredit)
	}
	return nil
}

// ValidateItemSides checks that amounts are non-negative and exactly one side is non-zero.
func ValidateItemSides(item domain.JournalEntryItem) error {
	if item.DebitAmount.IsNegative() || item.CreditAmount.IsNegative() {
		return apperrors.NewValidationError("Debit and credit amounts must not be negative")
	}
	if item.DebitAmount.IsZero() == item.CreditAmount.IsZero() {
		return apperrors.NewValidationError("Each item must have either a debit or a credit amount, not both")
	}
	return nil
}

// LedgerDerivation holds the ledger rows and balance increments derived from one entry.
type LedgerDerivation struct {
	Rows   []domain.GeneralLedgerRow
	Deltas []domain.AccountBalanceDelta
	// RunningBalances maps account id to the running balance after the last derived row.
	RunningBalances map[int64]decimal.Decimal
}

// DeriveLedgerRows turns a journal entry's items, in order, into general ledger rows.
// Each row's running balance continues from the account's RunningBalance, or from the
// previous row of the same account within this entry.
func DeriveLedgerRows(entry domain.JournalEntry, accounts map[int64]domain.Account, createdAt time.Time) (LedgerDerivation, error) {
	out := LedgerDerivation{
		Rows:            make([]domain.GeneralLedgerRow, 0, len(entry.Items)),
		Deltas:          make([]domain.AccountBalanceDelta, 0, len(entry.Items)),
		RunningBalances: make(map[int64]decimal.Decimal),
	}

	for _, item := range entry.Items {
		account, ok := accounts[item.AccountID]
		if !ok {
			return LedgerDerivation{}, fmt.Errorf("%w: account %d not loaded for item %d", apperrors.ErrNotFound, item.AccountID, item.ID)
		}

		prior, seen := out.RunningBalances[account.ID]
		if !seen {
			prior = account.RunningBalance
		}

		delta, err := SignedDelta(account.NormalBalance, item.BaseDebitAmount, item.BaseCreditAmount)
		if err != nil {
			return LedgerDerivation{}, fmt.Errorf("account %d: %w", account.ID, err)
		}
		running := prior.Add(delta)
		out.RunningBalances[account.ID] = running

		out.Rows = append(out.Rows, domain.GeneralLedgerRow{
			OrganizationID:     entry.OrganizationID,
			FiscalPeriodID:     entry.FiscalPeriodID,
			AccountID:          account.ID,
			JournalEntryID:     entry.ID,
			JournalEntryItemID: item.ID,
			TransactionDate:    entry.EntryDate,
			Description:        entry.ItemDescription(item),
			DebitAmount:        item.DebitAmount,
			CreditAmount:       item.CreditAmount,
			Balance:            running,
			CurrencyCode:       entry.CurrencyCode,
			BaseDebitAmount:    item.BaseDebitAmount,
			BaseCreditAmount:   item.BaseCreditAmount,
			BaseBalance:        running,
			Dimensions:         item.Dimensions,
			CreatedAt:          createdAt,
		})

		out.Deltas = append(out.Deltas, domain.AccountBalanceDelta{
			OrganizationID:   entry.OrganizationID,
			FiscalPeriodID:   entry.FiscalPeriodID,
			AccountID:        account.ID,
			NormalBalance:    account.NormalBalance,
			CurrencyCode:     entry.CurrencyCode,
			DebitAmount:      item.DebitAmount,
			CreditAmount:     item.CreditAmount,
			BaseDebitAmount:  item.BaseDebitAmount,
			BaseCreditAmount: item.BaseCreditAmount,
		})
	}

	return out, nil
}

// ApplyBalanceDelta returns the AccountBalance after one item's increment. A nil
// existing balance starts a new aggregate with a zero opening balance.
func ApplyBalanceDelta(existing *domain.AccountBalance, delta domain.AccountBalanceDelta, now time.Time) (domain.AccountBalance, error) {
	next := domain.AccountBalance{
		OrganizationID:     delta.OrganizationID,
		FiscalPeriodID:     delta.FiscalPeriodID,
		AccountID:          delta.AccountID,
		OpeningBalance:     decimal.Zero,
		DebitAmount:        decimal.Zero,
		CreditAmount:       decimal.Zero,
		BaseOpeningBalance: decimal.Zero,
		BaseDebitAmount:    decimal.Zero,
		BaseCreditAmount:   decimal.Zero,
		CurrencyCode:       delta.CurrencyCode,
	}
	if existing != nil {
		next = *existing
	}

	next.DebitAmount = next.DebitAmount.Add(delta.DebitAmount)
	next.CreditAmount = next.CreditAmount.Add(delta.CreditAmount)
	next.BaseDebitAmount = next.BaseDebitAmount.Add(delta.BaseDebitAmount)
	next.BaseCreditAmount = next.BaseCreditAmount.Add(delta.BaseCreditAmount)

	closing, err := ClosingBalance(delta.NormalBalance, next.OpeningBalance, next.DebitAmount, next.CreditAmount)
	if err != nil {
		return domain.AccountBalance{}, err
	}
	baseClosing, err := ClosingBalance(delta.NormalBalance, next.BaseOpeningBalance, next.BaseDebitAmount, next.BaseCreditAmount)
	if err != nil {
		return domain.AccountBalance{}, err
	}
	next.ClosingBalance = closing
	next.BaseClosingBalance = baseClosing
	next.Version++
	next.LastUpdatedAt = now
	return next, nil
}
