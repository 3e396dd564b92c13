package repositories

// RepositoryProvider bundles all repository facades for dependency
// injection into the service container.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	StaffRepo   StaffRepositoryFacade
	LoanRepo    LoanRepositoryFacade
	PaymentRepo PaymentRepositoryFacade
	DebtRepo    DebtRepositoryFacade
	ExpenseRepo ExpenseRepositoryFacade
	RiderRepo   RiderRepositoryFacade
	SaleRepo    SaleRepositoryFacade
}
