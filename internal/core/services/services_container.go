package services

import (
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Staff service first since most other services resolve StaffRefs through it
	container.Staff = NewStaffService(repos.StaffRepo, repos.UserRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Loan = NewLoanService(repos.LoanRepo, container.Staff)
	container.Settlement = NewSettlementService(repos.PaymentRepo, repos.LoanRepo, container.Staff)
	container.Debt = NewDebtService(repos.DebtRepo, container.Staff)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Rider = NewRiderService(repos.RiderRepo)
	container.Sale = NewSaleService(repos.SaleRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}
