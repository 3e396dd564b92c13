package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// expenseService manages operating expense records.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actorUserID string) (*domain.OperatingExpense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.OperatingExpense{
		ExpenseID:   uuid.NewString(),
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.OperatingExpense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.OperatingExpense, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	// Default to the current month when no range is given.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		to = *params.To
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, from, to, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actorUserID string) (*domain.OperatingExpense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s for update: %w", expenseID, err)
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = actorUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.expenseRepo.MarkExpenseDeleted(ctx, expenseID, actorUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	logger.Info("Expense deleted", slog.String("expense_id", expenseID), slog.String("deleted_by", actorUserID))
	return nil
}
