package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ovenpos/bakery_backoffice_app/internal/apperrors"
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	portsrepo "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/repositories"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/mapping"
)

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, staff_kind, staff_id, original_amount, outstanding, debt_type, status, reason, created_at, created_by, last_updated_at, last_updated_by`

func scanDebt(row pgx.Row) (*models.CompanyDebt, error) {
	var m models.CompanyDebt
	err := row.Scan(
		&m.DebtID,
		&m.StaffKind,
		&m.StaffID,
		&m.OriginalAmount,
		&m.Outstanding,
		&m.DebtType,
		&m.Status,
		&m.Reason,
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

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.CompanyDebt) error {
	m := mapping.ToModelCompanyDebt(debt)
	query := `
		INSERT INTO company_debts (debt_id, staff_kind, staff_id, original_amount, outstanding, debt_type, status, reason, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.StaffKind,
		m.StaffID,
		m.OriginalAmount,
		m.Outstanding,
		m.DebtType,
		m.Status,
		m.Reason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt: %w", err)
	}
	return nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.CompanyDebt, error) {
	query := fmt.Sprintf(`SELECT %s FROM company_debts WHERE debt_id = $1;`, debtColumns)
	m, err := scanDebt(r.Pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}
	d := mapping.ToDomainCompanyDebt(*m)
	return &d, nil
}

func (r *PgxDebtRepository) ListDebtsByStaff(ctx context.Context, staff domain.StaffRef) ([]domain.CompanyDebt, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM company_debts
		WHERE staff_kind = $1 AND staff_id = $2
		ORDER BY created_at DESC;
	`, debtColumns)
	rows, err := r.Pool.Query(ctx, query, string(staff.Kind), staff.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for %s: %w", staff.Key(), err)
	}
	defer rows.Close()

	var ms []models.CompanyDebt
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return mapping.ToDomainCompanyDebtSlice(ms), nil
}

func (r *PgxDebtRepository) ListDebtHistory(ctx context.Context, debtID string) ([]domain.DebtHistoryEntry, error) {
	query := `
		SELECT entry_id, debt_id, amount, transaction_type, reason, recorded_at, recorded_by
		FROM debt_history
		WHERE debt_id = $1
		ORDER BY recorded_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debt history for %s: %w", debtID, err)
	}
	defer rows.Close()

	var ms []models.DebtHistoryEntry
	for rows.Next() {
		var m models.DebtHistoryEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.DebtID,
			&m.Amount,
			&m.TransactionType,
			&m.Reason,
			&m.RecordedAt,
			&m.RecordedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan debt history row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt history rows: %w", err)
	}
	return mapping.ToDomainDebtHistoryEntrySlice(ms), nil
}

// AppendEntryAndUpdateDebt inserts the ledger entry and updates the debt's
// original amount, outstanding balance, and status in one transaction. The
// ledger and the derived balance can never drift apart.
func (r *PgxDebtRepository) AppendEntryAndUpdateDebt(ctx context.Context, entry domain.DebtHistoryEntry, newOriginal, newOutstanding decimal.Decimal, newStatus domain.DebtStatus, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDebtHistoryEntry(entry)
	entryQuery := `
		INSERT INTO debt_history (entry_id, debt_id, amount, transaction_type, reason, recorded_at, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.DebtID,
		m.Amount,
		m.TransactionType,
		m.Reason,
		m.RecordedAt,
		m.RecordedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert debt history entry "+m.EntryID, err)
	}

	debtQuery := `
		UPDATE company_debts
		SET original_amount = $2, outstanding = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE debt_id = $1;
	`
	tag, err := tx.Exec(ctx, debtQuery, entry.DebtID, newOriginal, newOutstanding, string(newStatus), time.Now(), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update debt "+entry.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
