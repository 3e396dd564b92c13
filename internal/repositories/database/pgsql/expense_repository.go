package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, category, amount, expense_date, description, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Category,
		&m.Amount,
		&m.ExpenseDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.OperatingExpense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, category, amount, expense_date, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Amount,
		m.ExpenseDate,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.OperatingExpense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE expense_id = $1 AND deleted_at IS NULL;`, expenseColumns)
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.OperatingExpense, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM expenses
		WHERE deleted_at IS NULL AND expense_date >= $1 AND expense_date < $2
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`, expenseColumns)
	rows, err := r.Pool.Query(ctx, query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var ms []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.OperatingExpense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET category = $2, amount = $3, expense_date = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Amount,
		m.ExpenseDate,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) MarkExpenseDeleted(ctx context.Context, expenseID string, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE expenses
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, expenseID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark expense %s deleted: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
