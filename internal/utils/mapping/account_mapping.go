package mapping

import (
	"github.com/SscSPs/org_ledger_app/internal/core/domain"
	"github.com/SscSPs/org_ledger_app/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:             m.AccountID,
		OrganizationID: m.OrganizationID,
		Code:           m.Code,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		NormalBalance:  domain.NormalBalance(m.NormalBalance),
		CurrencyCode:   m.CurrencyCode,
		IsActive:       m.IsActive,
		RunningBalance: m.RunningBalance,
	}
}

// ToDomainFiscalPeriod converts a model FiscalPeriod to a domain FiscalPeriod
func ToDomainFiscalPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		ID:             m.FiscalPeriodID,
		OrganizationID: m.OrganizationID,
		FiscalYearName: m.FiscalYearName,
		Name:           m.Name,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		IsClosed:       m.IsClosed,
	}
}

func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Code:   m.CurrencyCode,
		Name:   m.Name,
		Symbol: m.Symbol,
	}
}

func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		ID:           m.OrganizationID,
		Name:         m.Name,
		BaseCurrency: m.BaseCurrency,
	}
}
