package accounting

import (
	"sort"

	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReplayer recomputes running balances one row at a time. Rows must be fed
// in id order; only the running balance per account is retained.
type LedgerReplayer struct {
	normals map[int64]domain.NormalBalance
	running map[int64]decimal.Decimal
	rows    int
}

func NewLedgerReplayer(normals map[int64]domain.NormalBalance) *LedgerReplayer {
	return &LedgerReplayer{normals: normals, running: make(map[int64]decimal.Decimal)}
}

// Apply folds row into the replay and returns a discrepancy when the stored
// balance disagrees with the replayed one.
func (r *LedgerReplayer) Apply(row domain.GeneralLedgerRow) (*domain.LedgerDiscrepancy, error) {
	delta, err := SignedDelta(r.normals[row.AccountID], row.BaseDebitAmount, row.BaseCreditAmount)
	if err != nil {
		return nil, err
	}
	r.rows++
	expected := r.running[row.AccountID].Add(delta)
	r.running[row.AccountID] = expected

	if expected.Equal(row.Balance) && expected.Equal(row.BaseBalance) {
		return nil, nil
	}
	actual := row.Balance
	if expected.Equal(row.Balance) {
		actual = row.BaseBalance
	}
	// continue from the stored value so one bad row is reported once
	r.running[row.AccountID] = row.BaseBalance
	return &domain.LedgerDiscrepancy{
		Kind:        domain.DiscrepancyRunningBalance,
		AccountID:   row.AccountID,
		LedgerRowID: row.ID,
		Expected:    expected,
		Actual:      actual,
	}, nil
}

// Balances returns the replayed running balance per account seen so far.
func (r *LedgerReplayer) Balances() map[int64]decimal.Decimal {
	return r.running
}

// Rows returns how many rows have been applied.
func (r *LedgerReplayer) Rows() int {
	return r.rows
}

// ReplayLedger recomputes running balances from zero, per account in row id order,
// and reports every row whose stored balance disagrees with the replay. It returns
// the final replayed balance per account.
func ReplayLedger(rows []domain.GeneralLedgerRow, normals map[int64]domain.NormalBalance) (map[int64]decimal.Decimal, []domain.LedgerDiscrepancy, error) {
	ordered := make([]domain.GeneralLedgerRow, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	replayer := NewLedgerReplayer(normals)
	var discrepancies []domain.LedgerDiscrepancy
	for _, row := range ordered {
		discrepancy, err := replayer.Apply(row)
		if err != nil {
			return nil, nil, err
		}
		if discrepancy != nil {
			discrepancies = append(discrepancies, *discrepancy)
		}
	}

	return replayer.Balances(), discrepancies, nil
}

// CheckClosingBalance verifies closing = opening + sign x (debit - credit) for native
// and base amounts. It returns nil when the aggregate is consistent.
func CheckClosingBalance(b domain.AccountBalanceView) (*domain.LedgerDiscrepancy, error) {
	closing, err := ClosingBalance(b.NormalBalance, b.OpeningBalance, b.DebitAmount, b.CreditAmount)
	if err != nil {
		return nil, err
	}
	baseClosing, err := ClosingBalance(b.NormalBalance, b.BaseOpeningBalance, b.BaseDebitAmount, b.BaseCreditAmount)
	if err != nil {
		return nil, err
	}
	if closing.Equal(b.ClosingBalance) && baseClosing.Equal(b.BaseClosingBalance) {
		return nil, nil
	}
	expected, actual := closing, b.ClosingBalance
	if closing.Equal(b.ClosingBalance) {
		expected, actual = baseClosing, b.BaseClosingBalance
	}
	return &domain.LedgerDiscrepancy{
		Kind:           domain.DiscrepancyClosingBalance,
		AccountID:      b.AccountID,
		FiscalPeriodID: b.FiscalPeriodID,
		Expected:       expected,
		Actual:         actual,
	}, nil
}
