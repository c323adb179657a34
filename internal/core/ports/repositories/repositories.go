package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	JournalEntryRepo JournalEntryRepositoryFacade
	PostingUoW       PostingUnitOfWork
	LedgerRepo       LedgerRepositoryFacade
	AccountRepo      AccountReader
	FiscalPeriodRepo FiscalPeriodReader
	CurrencyRepo     CurrencyReader
	OrganizationRepo OrganizationReader
}
