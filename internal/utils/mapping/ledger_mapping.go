package mapping

import (
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/SscSPs/org_ledger_app/internal/models"
)

// ToModelGeneralLedgerRow converts a domain GeneralLedgerRow to a model GeneralLedgerRow
func ToModelGeneralLedgerRow(d domain.GeneralLedgerRow) models.GeneralLedgerRow {
	return models.GeneralLedgerRow{
		GeneralLedgerID:    d.ID,
		OrganizationID:     d.OrganizationID,
		FiscalPeriodID:     d.FiscalPeriodID,
		AccountID:          d.AccountID,
		JournalEntryID:     d.JournalEntryID,
		JournalEntryItemID: d.JournalEntryItemID,
		TransactionDate:    d.TransactionDate,
		Description:        d.Description,
		DebitAmount:        d.DebitAmount,
		CreditAmount:       d.CreditAmount,
		Balance:            d.Balance,
		CurrencyCode:       d.CurrencyCode,
		BaseDebitAmount:    d.BaseDebitAmount,
		BaseCreditAmount:   d.BaseCreditAmount,
		BaseBalance:        d.BaseBalance,
		Dimensions:         d.Dimensions,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainGeneralLedgerRow converts a model GeneralLedgerRow to a domain GeneralLedgerRow
func ToDomainGeneralLedgerRow(m models.GeneralLedgerRow) domain.GeneralLedgerRow {
	return domain.GeneralLedgerRow{
		ID:                 m.GeneralLedgerID,
		OrganizationID:     m.OrganizationID,
		FiscalPeriodID:     m.FiscalPeriodID,
		AccountID:          m.AccountID,
		JournalEntryID:     m.JournalEntryID,
		JournalEntryItemID: m.JournalEntryItemID,
		TransactionDate:    m.TransactionDate,
		Description:        m.Description,
		DebitAmount:        m.DebitAmount,
		CreditAmount:       m.CreditAmount,
		Balance:            m.Balance,
		CurrencyCode:       m.CurrencyCode,
		BaseDebitAmount:    m.BaseDebitAmount,
		BaseCreditAmount:   m.BaseCreditAmount,
		BaseBalance:        m.BaseBalance,
		Dimensions:         m.Dimensions,
		CreatedAt:          m.CreatedAt,
	}
}

// ToDomainGeneralLedgerRowSlice converts a slice of model ledger rows to domain rows
func ToDomainGeneralLedgerRowSlice(ms []models.GeneralLedgerRow) []domain.GeneralLedgerRow {
	ds := make([]domain.GeneralLedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGeneralLedgerRow(m)
	}
	return ds
}

// ToDomainAccountBalance converts a model AccountBalance to a domain AccountBalance
func ToDomainAccountBalance(m models.AccountBalance) domain.AccountBalance {
	return domain.AccountBalance{
		OrganizationID:     m.OrganizationID,
		FiscalPeriodID:     m.FiscalPeriodID,
		AccountID:          m.AccountID,
		OpeningBalance:     m.OpeningBalance,
		DebitAmount:        m.DebitAmount,
		CreditAmount:       m.CreditAmount,
		ClosingBalance:     m.ClosingBalance,
		BaseOpeningBalance: m.BaseOpeningBalance,
		BaseDebitAmount:    m.BaseDebitAmount,
		BaseCreditAmount:   m.BaseCreditAmount,
		BaseClosingBalance: m.BaseClosingBalance,
		CurrencyCode:       m.CurrencyCode,
		Version:            m.Version,
		LastUpdatedAt:      m.LastUpdatedAt,
	}
}

// ToDomainAccountBalanceView converts a joined balance row to a domain AccountBalanceView
func ToDomainAccountBalanceView(m models.AccountBalanceWithAccount) domain.AccountBalanceView {
	return domain.AccountBalanceView{
		AccountBalance: ToDomainAccountBalance(m.AccountBalance),
		AccountCode:    m.AccountCode,
		AccountName:    m.AccountName,
		AccountType:    domain.AccountType(m.AccountType),
		NormalBalance:  domain.NormalBalance(m.NormalBalance),
	}
}
