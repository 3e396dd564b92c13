package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	staffRepo := newPgxStaffRepository(dbPool)
	loanRepo := newPgxLoanRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool, loanRepo)
	debtRepo := newPgxDebtRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	riderRepo := newPgxRiderRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:    userRepo,
		StaffRepo:   staffRepo,
		LoanRepo:    loanRepo,
		PaymentRepo: paymentRepo,
		DebtRepo:    debtRepo,
		ExpenseRepo: expenseRepo,
		RiderRepo:   riderRepo,
		SaleRepo:    saleRepo,
	}
}
