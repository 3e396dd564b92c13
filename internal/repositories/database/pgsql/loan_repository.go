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

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(db *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `loan_id, staff_kind, staff_id, amount, loan_date, reason, is_paid, deducted_date, created_at, created_by, last_updated_at, last_updated_by`

func scanLoan(row pgx.Row) (*models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.StaffKind,
		&m.StaffID,
		&m.Amount,
		&m.LoanDate,
		&m.Reason,
		&m.IsPaid,
		&m.DeductedDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.LoanRecord) error {
	m := mapping.ToModelLoan(loan)
	query := `
		INSERT INTO loans (loan_id, staff_kind, staff_id, amount, loan_date, reason, is_paid, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LoanID,
		m.StaffKind,
		m.StaffID,
		m.Amount,
		m.LoanDate,
		m.Reason,
		m.IsPaid,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.LoanRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM loans WHERE loan_id = $1;`, loanColumns)
	m, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}
	d := mapping.ToDomainLoan(*m)
	return &d, nil
}

func (r *PgxLoanRepository) ListLoansByStaff(ctx context.Context, staff domain.StaffRef, unpaidOnly bool) ([]domain.LoanRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM loans
		WHERE staff_kind = $1 AND staff_id = $2
	`, loanColumns)
	if unpaidOnly {
		query += ` AND is_paid = FALSE`
	}
	query += ` ORDER BY loan_date ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, string(staff.Kind), staff.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans for %s: %w", staff.Key(), err)
	}
	defer rows.Close()

	var ms []models.Loan
	for rows.Next() {
		m, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}
	return mapping.ToDomainLoanSlice(ms), nil
}

// MarkLoansPaidInTx marks the given loans paid within the caller's
// transaction. The is_paid = FALSE guard means rows that were settled by a
// competing commit are simply not counted, and the caller compares the
// returned count against what it expected.
func (r *PgxLoanRepository) MarkLoansPaidInTx(ctx context.Context, tx pgx.Tx, staff domain.StaffRef, loanIDs []string, deductedDate time.Time, updatedBy string, updatedAt time.Time) (int64, error) {
	if len(loanIDs) == 0 {
		return 0, nil
	}
	query := `
		UPDATE loans
		SET is_paid = TRUE, deducted_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE staff_kind = $1 AND staff_id = $2 AND loan_id = ANY($3) AND is_paid = FALSE;
	`
	tag, err := tx.Exec(ctx, query, string(staff.Kind), staff.ID, loanIDs, deductedDate, updatedAt, updatedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to mark loans paid for %s: %w", staff.Key(), err)
	}
	return tag.RowsAffected(), nil
}
