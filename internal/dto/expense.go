package dto

import (
	"time"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording an operating expense.
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate time.Time       `json:"expenseDate" binding:"required"`
	Description string          `json:"description"`
}

// UpdateExpenseRequest defines the payload for updating an expense.
// Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	ExpenseDate *time.Time       `json:"expenseDate,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ListExpensesParams holds query parameters for listing expenses.
type ListExpensesParams struct {
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	Limit  int        `form:"limit"`
	Offset int        `form:"offset"`
}

// ExpenseResponse defines the expense data returned to clients.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.OperatingExpense to its DTO.
func ToExpenseResponse(e *domain.OperatingExpense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Category:    e.Category,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of expenses to DTOs.
func ToExpenseResponses(expenses []domain.OperatingExpense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
