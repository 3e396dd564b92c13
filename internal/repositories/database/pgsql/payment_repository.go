package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/mapping"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/pagination"
)

// PgxPaymentRepository persists payment records. It carries the loan
// repository so the settlement commit can mark loans paid inside its own
// transaction.
type PgxPaymentRepository struct {
	BaseRepository
	loanRepo portsrepo.LoanRepositoryFacade
}

func newPgxPaymentRepository(db *pgxpool.Pool, loanRepo portsrepo.LoanRepositoryFacade) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: db}, loanRepo: loanRepo}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, staff_kind, staff_id, gross_amount, tax_amount, pension_amount, other_deductions, loan_deduction, total_deductions, net_amount, salary_period, payment_date, payment_method, reference_number, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.StaffKind,
		&m.StaffID,
		&m.GrossAmount,
		&m.TaxAmount,
		&m.PensionAmount,
		&m.OtherDeductions,
		&m.LoanDeduction,
		&m.TotalDeductions,
		&m.NetAmount,
		&m.SalaryPeriod,
		&m.PaymentDate,
		&m.PaymentMethod,
		&m.ReferenceNumber,
		&m.Notes,
		&m.Status,
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

// SavePaymentAndMarkLoans persists the payment record and marks the settled
// loans paid in one database transaction. If any listed loan was already
// settled by a competing commit the affected-row count comes up short, the
// transaction rolls back, and ErrConcurrentModification is returned.
func (r *PgxPaymentRepository) SavePaymentAndMarkLoans(ctx context.Context, payment domain.PaymentRecord, loanIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPayment(payment)
	insertQuery := `
		INSERT INTO payments (
			payment_id, staff_kind, staff_id, gross_amount, tax_amount, pension_amount,
			other_deductions, loan_deduction, total_deductions, net_amount,
			salary_period, payment_date, payment_method, reference_number, notes, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.StaffKind,
		m.StaffID,
		m.GrossAmount,
		m.TaxAmount,
		m.PensionAmount,
		m.OtherDeductions,
		m.LoanDeduction,
		m.TotalDeductions,
		m.NetAmount,
		m.SalaryPeriod,
		m.PaymentDate,
		m.PaymentMethod,
		m.ReferenceNumber,
		m.Notes,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	affected, err := r.loanRepo.MarkLoansPaidInTx(ctx, tx, payment.Staff, loanIDs, payment.PaymentDate, payment.CreatedBy, payment.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark loans paid", err)
	}
	if affected != int64(len(loanIDs)) {
		// Some loan was settled between the read and this write. Roll the
		// whole commit back so no payment exists without its loans cleared.
		return apperrors.ErrConcurrentModification
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE payment_id = $1;`, paymentColumns)
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(*m)
	return &d, nil
}

// ListPaymentsByStaff pages newest-first on (payment_date, created_at),
// which is a stable total order even when several payments share a date.
func (r *PgxPaymentRepository) ListPaymentsByStaff(ctx context.Context, staff domain.StaffRef, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	args := []interface{}{string(staff.Kind), staff.ID}
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE staff_kind = $1 AND staff_id = $2
	`, paymentColumns)

	if nextToken != nil && *nextToken != "" {
		paymentDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (payment_date, created_at) < ($3, $4)`
		args = append(args, paymentDate, createdAt)
	}

	// Fetch one extra row to know if another page exists.
	query += fmt.Sprintf(` ORDER BY payment_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payments for %s: %w", staff.Key(), err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainPaymentSlice(ms), token, nil
}
