package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/mapping"
)

type PgxRiderRepository struct {
	BaseRepository
}

func newPgxRiderRepository(db *pgxpool.Pool) portsrepo.RiderRepositoryFacade {
	return &PgxRiderRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RiderRepositoryFacade = (*PgxRiderRepository)(nil)

const riderColumns = `rider_id, name, phone, credit_balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanRider(row pgx.Row) (*models.Rider, error) {
	var m models.Rider
	err := row.Scan(
		&m.RiderID,
		&m.Name,
		&m.Phone,
		&m.CreditBalance,
		&m.IsActive,
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

func (r *PgxRiderRepository) SaveRider(ctx context.Context, rider domain.Rider) error {
	m := mapping.ToModelRider(rider)
	query := `
		INSERT INTO riders (rider_id, name, phone, credit_balance, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RiderID,
		m.Name,
		m.Phone,
		m.CreditBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save rider: %w", err)
	}
	return nil
}

func (r *PgxRiderRepository) FindRiderByID(ctx context.Context, riderID string) (*domain.Rider, error) {
	query := fmt.Sprintf(`SELECT %s FROM riders WHERE rider_id = $1;`, riderColumns)
	m, err := scanRider(r.Pool.QueryRow(ctx, query, riderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rider by ID %s: %w", riderID, err)
	}
	d := mapping.ToDomainRider(*m)
	return &d, nil
}

func (r *PgxRiderRepository) ListRiders(ctx context.Context, limit int, offset int) ([]domain.Rider, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM riders
		ORDER BY name ASC
		LIMIT $1 OFFSET $2;
	`, riderColumns)
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list riders: %w", err)
	}
	defer rows.Close()

	var ms []models.Rider
	for rows.Next() {
		m, err := scanRider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rider row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rider rows: %w", err)
	}
	return mapping.ToDomainRiderSlice(ms), nil
}

func (r *PgxRiderRepository) ListRiderPayments(ctx context.Context, riderID string) ([]domain.RiderPayment, error) {
	query := `
		SELECT rider_payment_id, rider_id, amount, payment_date, payment_method, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM rider_payments
		WHERE rider_id = $1
		ORDER BY payment_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for rider %s: %w", riderID, err)
	}
	defer rows.Close()

	var ms []models.RiderPayment
	for rows.Next() {
		var m models.RiderPayment
		if err := rows.Scan(
			&m.RiderPaymentID,
			&m.RiderID,
			&m.Amount,
			&m.PaymentDate,
			&m.PaymentMethod,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rider payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rider payment rows: %w", err)
	}
	return mapping.ToDomainRiderPaymentSlice(ms), nil
}

// AdjustCredit atomically adds delta to the rider's credit balance.
func (r *PgxRiderRepository) AdjustCredit(ctx context.Context, riderID string, delta decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE riders
		SET credit_balance = credit_balance + $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE rider_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, riderID, delta, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust credit for rider %s: %w", riderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveRiderPaymentAndReduceCredit persists the payment and reduces the
// rider's credit balance in one transaction. The balance guard rejects a
// payment that would push the balance negative.
func (r *PgxRiderRepository) SaveRiderPaymentAndReduceCredit(ctx context.Context, payment domain.RiderPayment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelRiderPayment(payment)
	insertQuery := `
		INSERT INTO rider_payments (rider_payment_id, rider_id, amount, payment_date, payment_method, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.RiderPaymentID,
		m.RiderID,
		m.Amount,
		m.PaymentDate,
		m.PaymentMethod,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert rider payment "+m.RiderPaymentID, err)
	}

	balanceQuery := `
		UPDATE riders
		SET credit_balance = credit_balance - $2, last_updated_at = $3, last_updated_by = $4
		WHERE rider_id = $1 AND credit_balance >= $2;
	`
	tag, err := tx.Exec(ctx, balanceQuery, m.RiderID, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reduce credit for rider "+m.RiderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConcurrentModification
	}

	return r.Commit(ctx, tx)
}
