package services

import (
	"context"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
)

// ExpenseSvcFacade defines the service operations for operating expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actorUserID string) (*domain.OperatingExpense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.OperatingExpense, error)
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.OperatingExpense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actorUserID string) (*domain.OperatingExpense, error)
	DeleteExpense(ctx context.Context, expenseID string, actorUserID string) error
}

// RiderSvcFacade defines the service operations for delivery riders.
type RiderSvcFacade interface {
	CreateRider(ctx context.Context, req dto.CreateRiderRequest, actorUserID string) (*domain.Rider, error)
	GetRiderByID(ctx context.Context, riderID string) (*domain.Rider, error)
	ListRiders(ctx context.Context, limit, offset int) ([]domain.Rider, error)
	ListRiderPayments(ctx context.Context, riderID string) ([]domain.RiderPayment, error)

	// AddCredit records goods going out to a rider on credit.
	AddCredit(ctx context.Context, riderID string, req dto.AdjustRiderCreditRequest, actorUserID string) (*domain.Rider, error)

	// RecordPayment records a rider's payment and reduces their credit balance.
	RecordPayment(ctx context.Context, riderID string, req dto.RiderPaymentRequest, actorUserID string) (*domain.RiderPayment, error)
}
