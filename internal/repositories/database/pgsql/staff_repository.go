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

// PgxStaffRepository covers staff members and compensation profiles. The
// two live in one repository because every profile operation is keyed by
// the same (staff_kind, staff_id) pair.
type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(db *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffMemberColumns = `staff_member_id, name, phone, position, is_active, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanStaffMember(row pgx.Row) (*models.StaffMember, error) {
	var m models.StaffMember
	err := row.Scan(
		&m.StaffMemberID,
		&m.Name,
		&m.Phone,
		&m.Position,
		&m.IsActive,
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

func (r *PgxStaffRepository) SaveStaffMember(ctx context.Context, member domain.StaffMember) error {
	m := mapping.ToModelStaffMember(member)
	query := `
		INSERT INTO staff_members (staff_member_id, name, phone, position, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StaffMemberID,
		m.Name,
		m.Phone,
		m.Position,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save staff member: %w", err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffMemberByID(ctx context.Context, staffMemberID string) (*domain.StaffMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_members WHERE staff_member_id = $1 AND deleted_at IS NULL;`, staffMemberColumns)
	m, err := scanStaffMember(r.Pool.QueryRow(ctx, query, staffMemberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff member by ID %s: %w", staffMemberID, err)
	}
	d := mapping.ToDomainStaffMember(*m)
	return &d, nil
}

func (r *PgxStaffRepository) ListStaffMembers(ctx context.Context, limit int, offset int) ([]domain.StaffMember, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM staff_members
		WHERE deleted_at IS NULL
		ORDER BY name ASC
		LIMIT $1 OFFSET $2;
	`, staffMemberColumns)
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}
	defer rows.Close()

	var ms []models.StaffMember
	for rows.Next() {
		m, err := scanStaffMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff member rows: %w", err)
	}
	return mapping.ToDomainStaffMemberSlice(ms), nil
}

func (r *PgxStaffRepository) UpdateStaffMember(ctx context.Context, member domain.StaffMember) error {
	m := mapping.ToModelStaffMember(member)
	query := `
		UPDATE staff_members
		SET name = $2, phone = $3, position = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE staff_member_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.StaffMemberID,
		m.Name,
		m.Phone,
		m.Position,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff member %s: %w", member.StaffMemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStaffRepository) MarkStaffMemberDeleted(ctx context.Context, staffMemberID string, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE staff_members
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE staff_member_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, staffMemberID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark staff member %s deleted: %w", staffMemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const profileColumns = `profile_id, staff_kind, staff_id, base_salary, allowances, other_deductions, tax_rate, pension_rate, salary_type, bank_name, bank_account, version, is_current, created_at, created_by, last_updated_at, last_updated_by`

func scanProfile(row pgx.Row) (*models.CompensationProfile, error) {
	var m models.CompensationProfile
	err := row.Scan(
		&m.ProfileID,
		&m.StaffKind,
		&m.StaffID,
		&m.BaseSalary,
		&m.Allowances,
		&m.OtherDeductions,
		&m.TaxRate,
		&m.PensionRate,
		&m.SalaryType,
		&m.BankName,
		&m.BankAccount,
		&m.Version,
		&m.IsCurrent,
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

func (r *PgxStaffRepository) FindCurrentProfile(ctx context.Context, staff domain.StaffRef) (*domain.CompensationProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM compensation_profiles
		WHERE staff_kind = $1 AND staff_id = $2 AND is_current = TRUE;
	`, profileColumns)
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, string(staff.Kind), staff.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find current profile for %s: %w", staff.Key(), err)
	}
	d := mapping.ToDomainCompensationProfile(*m)
	return &d, nil
}

func (r *PgxStaffRepository) ListProfileVersions(ctx context.Context, staff domain.StaffRef) ([]domain.CompensationProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM compensation_profiles
		WHERE staff_kind = $1 AND staff_id = $2
		ORDER BY version DESC;
	`, profileColumns)
	rows, err := r.Pool.Query(ctx, query, string(staff.Kind), staff.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile versions for %s: %w", staff.Key(), err)
	}
	defer rows.Close()

	var ms []models.CompensationProfile
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return mapping.ToDomainCompensationProfileSlice(ms), nil
}

// SupersedeProfile retires the current profile row and inserts the new one
// in a single transaction. Old versions are kept forever.
func (r *PgxStaffRepository) SupersedeProfile(ctx context.Context, profile domain.CompensationProfile) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCompensationProfile(profile)

	retireQuery := `
		UPDATE compensation_profiles
		SET is_current = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE staff_kind = $1 AND staff_id = $2 AND is_current = TRUE;
	`
	if _, err := tx.Exec(ctx, retireQuery, m.StaffKind, m.StaffID, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to retire current compensation profile", err)
	}

	insertQuery := `
		INSERT INTO compensation_profiles (
			profile_id, staff_kind, staff_id, base_salary, allowances, other_deductions,
			tax_rate, pension_rate, salary_type, bank_name, bank_account, version, is_current,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.ProfileID,
		m.StaffKind,
		m.StaffID,
		m.BaseSalary,
		m.Allowances,
		m.OtherDeductions,
		m.TaxRate,
		m.PensionRate,
		m.SalaryType,
		m.BankName,
		m.BankAccount,
		m.Version,
		m.IsCurrent,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert compensation profile "+m.ProfileID, err)
	}

	return r.Commit(ctx, tx)
}
